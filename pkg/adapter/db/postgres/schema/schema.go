// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schema owns the cars table definition. It creates the table
// for a fresh installation and can fill it with a demo data set, both
// through a caller-provided transaction, so the caller decides when
// the operation is committed. The carcat db init command and the
// integration test suites are its users.
package schema

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/pkg/core/model"
	"github.com/pgorczyca/carcat/pkg/core/repo"
)

// Settler creates and fills the cars table. Each instance wraps a
// single transaction of the target database; the caller is
// responsible to commit that transaction in order to finalize the
// initialization results.
type Settler struct {
	tx repo.Tx
}

// New creates a new Settler instance, wrapping the given tx database
// transaction. The settler expects the database itself to exist and
// only manages the cars table inside it.
func New(tx repo.Tx) *Settler {
	return &Settler{
		tx: tx,
	}
}

const createCarsTable = `CREATE TABLE IF NOT EXISTS cars (
	id uuid PRIMARY KEY,
	brand character varying NOT NULL,
	model character varying NOT NULL,
	doors_number integer NOT NULL,
	luggage_capacity integer NOT NULL,
	engine_capacity integer NOT NULL,
	fuel_type smallint NOT NULL,
	body_type smallint NOT NULL,
	production_date timestamp with time zone NOT NULL,
	car_fuel_consumption double precision NOT NULL
)`

// CreateSchema creates the cars table if it does not exist yet.
// Enum columns hold the 0-based wire codes and the id column has no
// database-side default; identifiers are always assigned by the
// server (or provided by the caller) before a row reaches the DBMS,
// with the primary key constraint backing their uniqueness.
func (s *Settler) CreateSchema(ctx context.Context) error {
	if _, err := s.tx.Exec(ctx, createCarsTable); err != nil {
		return fmt.Errorf("creating cars table: %w", err)
	}
	return nil
}

// SeedDemoData inserts the demo car records, assigning a fresh
// identifier to each. It is a no-op when the table already contains
// any row, so re-running the init command does not duplicate records.
func (s *Settler) SeedDemoData(ctx context.Context) error {
	rows, err := s.tx.Query(ctx, `SELECT count(*) FROM cars`)
	if err != nil {
		return fmt.Errorf("counting cars: %w", err)
	}
	var count int64
	for rows.Next() {
		if err := rows.Scan(&count); err != nil {
			rows.Close()
			return fmt.Errorf("scanning cars count: %w", err)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("counting cars: %w", err)
	}
	if count > 0 {
		return nil
	}
	const insertCar = `INSERT INTO cars (
	id, brand, model, doors_number, luggage_capacity, engine_capacity,
	fuel_type, body_type, production_date, car_fuel_consumption
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, car := range DemoCars() {
		n, err := s.tx.Exec(
			ctx, insertCar,
			car.ID, car.Brand, car.Model, car.DoorsNumber,
			car.LuggageCapacity, car.EngineCapacity,
			car.FuelType.Code(), car.BodyType.Code(),
			car.ProductionDate, car.CarFuelConsumption,
		)
		if err != nil {
			return fmt.Errorf("seeding %s %s: %w", car.Brand, car.Model, err)
		}
		if n != 1 {
			return fmt.Errorf("seeding %s %s: %d rows", car.Brand, car.Model, n)
		}
	}
	return nil
}

// DemoCars returns the demo data set with freshly assigned ids.
func DemoCars() []model.Car {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []model.Car{
		{
			ID:                 uuid.New(),
			Brand:              "Volkswagen",
			Model:              "Golf",
			DoorsNumber:        5,
			LuggageCapacity:    380,
			EngineCapacity:     1498,
			FuelType:           model.FuelTypePetrol,
			BodyType:           model.BodyTypeHatchback,
			ProductionDate:     date(2022, time.May, 10),
			CarFuelConsumption: 5.8, // L/100km
		},
		{
			ID:                 uuid.New(),
			Brand:              "Audi",
			Model:              "A4",
			DoorsNumber:        5,
			LuggageCapacity:    495,
			EngineCapacity:     1968,
			FuelType:           model.FuelTypeDiesel,
			BodyType:           model.BodyTypeKombi,
			ProductionDate:     date(2021, time.November, 20),
			CarFuelConsumption: 5.1,
		},
		{
			ID:                 uuid.New(),
			Brand:              "Toyota",
			Model:              "RAV4",
			DoorsNumber:        5,
			LuggageCapacity:    580,
			EngineCapacity:     2487,
			FuelType:           model.FuelTypeHybrid,
			BodyType:           model.BodyTypeSuv,
			ProductionDate:     date(2023, time.January, 15),
			CarFuelConsumption: 4.5,
		},
		{
			ID:                 uuid.New(),
			Brand:              "BMW",
			Model:              "Seria 3",
			DoorsNumber:        4,
			LuggageCapacity:    480,
			EngineCapacity:     1998,
			FuelType:           model.FuelTypePetrol,
			BodyType:           model.BodyTypeSedan,
			ProductionDate:     date(2022, time.August, 30),
			CarFuelConsumption: 7.2,
		},
		{
			ID:                 uuid.New(),
			Brand:              "Mazda",
			Model:              "MX-5",
			DoorsNumber:        2,
			LuggageCapacity:    130,
			EngineCapacity:     1998,
			FuelType:           model.FuelTypePetrol,
			BodyType:           model.BodyTypeRoadster,
			ProductionDate:     date(2020, time.March, 5),
			CarFuelConsumption: 6.9,
		},
		{
			ID:                 uuid.New(),
			Brand:              "Dacia",
			Model:              "Duster",
			DoorsNumber:        5,
			LuggageCapacity:    445,
			EngineCapacity:     999,
			FuelType:           model.FuelTypeLPG,
			BodyType:           model.BodyTypeSuv,
			ProductionDate:     date(2023, time.April, 12),
			CarFuelConsumption: 7.8,
		},
	}
}
