// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsuc contains the cars UseCase which orchestrates the five
// catalog operations: Create, ReadOne, ReadAll, Update, and Delete.
// Each operation returns a uniform result envelope; anticipated
// conditions such as validation failures and missing records land in
// the envelope as human-readable messages, while unexpected storage
// errors are returned separately so they can propagate to a
// transport-level server error.
package carsuc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/pkg/core/cerr"
	"github.com/pgorczyca/carcat/pkg/core/model"
	"github.com/pgorczyca/carcat/pkg/core/repo"
	"github.com/pgorczyca/carcat/pkg/core/result"
)

// UseCase represents the cars use case. It holds a database connection
// pool and the cars repository instance (to be guided with the DB
// pool), in addition to the identifier generator which assigns ids to
// cars that are created without one.
type UseCase struct {
	pool   repo.Pool
	carsrp repo.Cars

	newID func() uuid.UUID
}

// New instantiates a cars use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(p repo.Pool, c repo.Cars, opts ...Option) (*UseCase, error) {
	uc := &UseCase{pool: p, carsrp: c}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.newID == nil {
		uc.newID = uuid.New
	}
	return uc, nil
}

// Create use case stores a new car record. When the given car carries
// no identifier, a fresh one is assigned; a caller-provided identifier
// is preserved. The car is validated against the authoritative
// ruleset before any row is written and validation failures are
// reported in a failure envelope with all rule messages aggregated.
func (cars *UseCase) Create(ctx context.Context, car model.Car) (result.Result[model.Car], error) {
	if car.ID == uuid.Nil {
		car.ID = cars.newID()
	}
	if verrs := car.Validate(); len(verrs) > 0 {
		return result.Failure[model.Car](verrs.Error()), nil
	}
	var created *model.Car
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.carsrp.Conn(c)
		var err error
		created, err = q.Insert(ctx, car)
		return err
	})
	if err != nil {
		var ce *cerr.Error
		if errors.As(err, &ce) {
			return result.Failure[model.Car]("Failed to create a new car"), nil
		}
		return result.Result[model.Car]{}, err
	}
	return result.Ok(*created), nil
}

// ReadOne use case looks a car up by its identifier. A missing record
// is an anticipated condition and is reported in a failure envelope,
// never as a transport fault.
func (cars *UseCase) ReadOne(ctx context.Context, carID uuid.UUID) (result.Result[model.Car], error) {
	var car *model.Car
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.carsrp.Conn(c)
		var err error
		car, err = q.GetByID(ctx, carID)
		return err
	})
	if err != nil {
		var ce *cerr.Error
		if errors.As(err, &ce) {
			return result.Failure[model.Car]("Failed to get a car. Car doesn't exist."), nil
		}
		return result.Result[model.Car]{}, err
	}
	return result.Ok(*car), nil
}

// ReadAll use case returns the full collection without any guaranteed
// ordering. It only fails on an underlying storage fault.
func (cars *UseCase) ReadAll(ctx context.Context) (result.Result[[]model.Car], error) {
	var all []model.Car
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.carsrp.Conn(c)
		var err error
		all, err = q.List(ctx)
		return err
	})
	if err != nil {
		var ce *cerr.Error
		if errors.As(err, &ce) {
			return result.Failure[[]model.Car]("Cannot get cars."), nil
		}
		return result.Result[[]model.Car]{}, err
	}
	return result.Ok(all), nil
}

// Update use case merges the given patch over the stored car record.
// Only fields which are present in the patch overwrite their stored
// counterparts; absent fields are left untouched. The merged car must
// pass the full validation ruleset before it is persisted. An empty
// patch is a trivially-accepted no-op returning the stored car.
// The load and write run in one transaction; concurrent updates to
// the same record keep last-write-wins semantics.
func (cars *UseCase) Update(ctx context.Context, carID uuid.UUID, p model.CarPatch) (result.Result[model.Car], error) {
	var updated *model.Car
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := cars.carsrp.Tx(tx)
			existing, err := q.GetByID(ctx, carID)
			if err != nil {
				return err
			}
			if p.IsZero() {
				updated = existing
				return nil
			}
			merged := *existing
			p.Apply(&merged)
			if verrs := merged.Validate(); len(verrs) > 0 {
				return cerr.BadRequest(verrs)
			}
			updated, err = q.Update(ctx, carID, p)
			return err
		})
	})
	if err != nil {
		var ce *cerr.Error
		if errors.As(err, &ce) {
			switch ce.HTTPStatusCode {
			case http.StatusNotFound:
				return result.Failure[model.Car]("Failed to update the car. The car doesn't exist."), nil
			case http.StatusBadRequest:
				return result.Failure[model.Car](ce.Err.Error()), nil
			default:
				return result.Failure[model.Car]("Failed to updated car."), nil
			}
		}
		return result.Result[model.Car]{}, err
	}
	return result.Ok(*updated), nil
}

// Delete use case removes the car record permanently; there is no
// soft-delete or tombstone and the identifier is never reused. The
// existence check and the removal run in one transaction.
func (cars *UseCase) Delete(ctx context.Context, carID uuid.UUID) (result.Result[struct{}], error) {
	var found bool
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := cars.carsrp.Tx(tx)
			if _, err := q.GetByID(ctx, carID); err != nil {
				return err
			}
			found = true
			return q.Delete(ctx, carID)
		})
	})
	if err != nil {
		var ce *cerr.Error
		if errors.As(err, &ce) {
			if !found {
				return result.Failure[struct{}]("Failed to delete car. Specified car doesn't exist."), nil
			}
			return result.Failure[struct{}]("Failed to delete car."), nil
		}
		return result.Result[struct{}]{}, err
	}
	return result.Ok(struct{}{}), nil
}
