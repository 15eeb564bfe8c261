// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/pkg/core/model"
)

// formDateLayout is the plain date layout of the production date
// input field.
const formDateLayout = "2006-01-02"

// FormValues holds the car form state the way the form renders it,
// with enum fields as their human readable labels and the production
// date as a plain date string. It carries its own validation ruleset
// with tighter bounds than the server-side one, since the form guides
// a user towards plausible values while the server accepts the whole
// range of storable records.
type FormValues struct {
	Brand              string
	Model              string
	ProductionDate     string
	FuelType           string
	BodyType           string
	DoorsNumber        int
	EngineCapacity     int
	LuggageCapacity    int
	CarFuelConsumption float64
}

// FormDefaults returns the initial state of the creation form.
func FormDefaults() FormValues {
	return FormValues{
		DoorsNumber:        5,
		EngineCapacity:     2478,
		LuggageCapacity:    550,
		CarFuelConsumption: 10.2,
	}
}

// FormValuesFromCar pre-fills the form state with the car record
// fields, as the update view does with the fetched original record.
func FormValuesFromCar(car model.Car) FormValues {
	return FormValues{
		Brand:              car.Brand,
		Model:              car.Model,
		ProductionDate:     car.ProductionDate.UTC().Format(formDateLayout),
		FuelType:           car.FuelType.String(),
		BodyType:           car.BodyType.String(),
		DoorsNumber:        car.DoorsNumber,
		EngineCapacity:     car.EngineCapacity,
		LuggageCapacity:    car.LuggageCapacity,
		CarFuelConsumption: car.CarFuelConsumption,
	}
}

// Validate evaluates the form validation ruleset, returning one
// message per violated field in the form field order, or an empty
// slice when the form may be submitted.
func (v FormValues) Validate() []string {
	var msgs []string
	if v.Brand == "" {
		msgs = append(msgs, "Brand is required")
	}
	if v.Model == "" {
		msgs = append(msgs, "Model is required")
	}
	switch {
	case v.DoorsNumber < 2:
		msgs = append(msgs, "Doors number must be at least 2")
	case v.DoorsNumber > 5:
		msgs = append(msgs, "Doors number cannot exceed 5")
	}
	switch {
	case v.LuggageCapacity < 100:
		msgs = append(
			msgs, "Luggage capacity must be at least 100 liters",
		)
	case v.LuggageCapacity > 1000:
		msgs = append(msgs, "Luggage capacity cannot exceed 1000 liters")
	}
	switch {
	case v.EngineCapacity < 500:
		msgs = append(msgs, "Engine capacity must be at least 500 cc")
	case v.EngineCapacity > 8000:
		msgs = append(msgs, "Engine capacity cannot exceed 8000 cc")
	}
	if _, err := model.ParseFuelType(v.FuelType); err != nil {
		msgs = append(msgs, "Fuel type is required")
	}
	if _, err := model.ParseBodyType(v.BodyType); err != nil {
		msgs = append(msgs, "Body type is required")
	}
	if _, err := time.Parse(formDateLayout, v.ProductionDate); err != nil {
		msgs = append(msgs, "Invalid date format")
	}
	switch {
	case v.CarFuelConsumption < 1:
		msgs = append(
			msgs, "Fuel consumption must be at least 1 L/100km",
		)
	case v.CarFuelConsumption > 30:
		msgs = append(msgs, "Fuel consumption cannot exceed 30 L/100km")
	}
	return msgs
}

// Car converts the form state into the submission payload, mapping
// the enum labels to their typed values and the plain date to a UTC
// timestamp. The carID argument identifies the record for an update
// submission and is uuid.Nil for a creation one. The form should be
// validated beforehand; unknown labels map to the invalid enum values
// and an unparseable date to the zero time, which the server rejects.
func (v FormValues) Car(carID uuid.UUID) model.Car {
	car := model.Car{
		ID:                 carID,
		Brand:              v.Brand,
		Model:              v.Model,
		DoorsNumber:        v.DoorsNumber,
		LuggageCapacity:    v.LuggageCapacity,
		EngineCapacity:     v.EngineCapacity,
		CarFuelConsumption: v.CarFuelConsumption,
	}
	car.FuelType, _ = model.ParseFuelType(v.FuelType)
	car.BodyType, _ = model.ParseBodyType(v.BodyType)
	if t, err := time.Parse(formDateLayout, v.ProductionDate); err == nil {
		car.ProductionDate = t.UTC()
	}
	return car
}

// Equal reports whether submitting the form would be a no-op for the
// car record, comparing the production date at day precision since
// the form only edits plain dates. The update view short-circuits an
// unchanged form to a successful no-op instead of issuing a no-diff
// update request.
func (v FormValues) Equal(car model.Car) bool {
	return v.Brand == car.Brand &&
		v.Model == car.Model &&
		v.DoorsNumber == car.DoorsNumber &&
		v.LuggageCapacity == car.LuggageCapacity &&
		v.EngineCapacity == car.EngineCapacity &&
		v.CarFuelConsumption == car.CarFuelConsumption &&
		v.FuelType == car.FuelType.String() &&
		v.BodyType == car.BodyType.String() &&
		v.ProductionDate == car.ProductionDate.UTC().Format(formDateLayout)
}
