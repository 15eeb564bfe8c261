// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/pkg/core/cerr"
	"github.com/pgorczyca/carcat/pkg/core/model"
	"github.com/pgorczyca/carcat/pkg/core/repo"
	"github.com/pgorczyca/carcat/pkg/core/usecase/carsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory reification of the cars persistence
// gateway, reporting the same cerr conditions as the real repository.
// The err field injects an unexpected storage failure into every
// operation.
type memStore struct {
	cars map[uuid.UUID]model.Car
	err  error
}

func newMemStore() *memStore {
	return &memStore{cars: make(map[uuid.UUID]model.Car)}
}

func (s *memStore) Insert(
	_ context.Context, car model.Car,
) (*model.Car, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.cars[car.ID]; ok {
		return nil, cerr.Conflict(errors.New("duplicate car id"))
	}
	s.cars[car.ID] = car
	return &car, nil
}

func (s *memStore) GetByID(
	_ context.Context, carID uuid.UUID,
) (*model.Car, error) {
	if s.err != nil {
		return nil, s.err
	}
	car, ok := s.cars[carID]
	if !ok {
		return nil, cerr.NotFound(errors.New("no such car"))
	}
	return &car, nil
}

func (s *memStore) List(_ context.Context) ([]model.Car, error) {
	if s.err != nil {
		return nil, s.err
	}
	all := make([]model.Car, 0, len(s.cars))
	for _, car := range s.cars {
		all = append(all, car)
	}
	return all, nil
}

func (s *memStore) Update(
	_ context.Context, carID uuid.UUID, p model.CarPatch,
) (*model.Car, error) {
	if s.err != nil {
		return nil, s.err
	}
	car, ok := s.cars[carID]
	if !ok {
		return nil, cerr.Internal(errors.New("no row was updated"))
	}
	p.Apply(&car)
	s.cars[carID] = car
	return &car, nil
}

func (s *memStore) Delete(_ context.Context, carID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.cars[carID]; !ok {
		return cerr.Internal(errors.New("no row was deleted"))
	}
	delete(s.cars, carID)
	return nil
}

type fakePool struct {
	store *memStore
}

func (p *fakePool) Conn(
	ctx context.Context, handler repo.ConnHandler,
) error {
	return handler(ctx, &fakeConn{store: p.store})
}

type fakeConn struct {
	store *memStore
}

func (c *fakeConn) Exec(
	context.Context, string, ...any,
) (int64, error) {
	panic("unexpected raw Exec on fake connection")
}

func (c *fakeConn) Query(
	context.Context, string, ...any,
) (repo.Rows, error) {
	panic("unexpected raw Query on fake connection")
}

func (c *fakeConn) Tx(ctx context.Context, handler repo.TxHandler) error {
	return handler(ctx, &fakeTx{store: c.store})
}

func (c *fakeConn) IsConn() {}

type fakeTx struct {
	store *memStore
}

func (tx *fakeTx) Exec(
	context.Context, string, ...any,
) (int64, error) {
	panic("unexpected raw Exec on fake transaction")
}

func (tx *fakeTx) Query(
	context.Context, string, ...any,
) (repo.Rows, error) {
	panic("unexpected raw Query on fake transaction")
}

func (tx *fakeTx) IsTx() {}

type fakeCars struct{}

func (fakeCars) Conn(c repo.Conn) repo.CarsConnQueryer {
	return c.(*fakeConn).store
}

func (fakeCars) Tx(tx repo.Tx) repo.CarsTxQueryer {
	return tx.(*fakeTx).store
}

func newUseCase(t *testing.T) (*carsuc.UseCase, *memStore) {
	store := newMemStore()
	uc, err := carsuc.New(&fakePool{store: store}, fakeCars{})
	require.NoError(t, err, "cannot instantiate cars use case")
	return uc, store
}

func fakeCar() model.Car {
	ft, _ := model.FuelTypeFromCode(gofakeit.Number(0, 3))
	bt, _ := model.BodyTypeFromCode(gofakeit.Number(0, 4))
	return model.Car{
		ID:              uuid.New(),
		Brand:           gofakeit.CarMaker(),
		Model:           gofakeit.CarModel(),
		DoorsNumber:     gofakeit.Number(2, 10),
		LuggageCapacity: gofakeit.Number(100, 1000),
		EngineCapacity:  gofakeit.Number(500, 8000),
		FuelType:        ft,
		BodyType:        bt,
		ProductionDate: gofakeit.DateRange(
			time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		).UTC().Truncate(time.Second),
		CarFuelConsumption: gofakeit.Float64Range(1, 30),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	t.Run("assigns an id when absent", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		car.ID = uuid.Nil
		res, err := uc.Create(ctx, car)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		assert.NotEqual(t, uuid.Nil, res.Value.ID)
		car.ID = res.Value.ID
		assert.Equal(t, car, res.Value)
		assert.Equal(t, car, store.cars[car.ID])
	})
	t.Run("preserves a caller-provided id", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		res, err := uc.Create(ctx, car)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		assert.Equal(t, car, res.Value)
		assert.Equal(t, car, store.cars[car.ID])
	})
	t.Run("reports all validation failures", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		car.Brand = ""
		car.DoorsNumber = 1
		res, err := uc.Create(ctx, car)
		require.NoError(t, err)
		require.False(t, res.IsSuccess)
		assert.Equal(
			t,
			"Brand is required; "+
				"DoorsNumber is required and must be between 2 and 10",
			res.ErrorMessage(),
		)
		assert.Empty(t, store.cars, "invalid car must not be stored")
	})
	t.Run("reports a duplicate id as a failure", func(t *testing.T) {
		uc, _ := newUseCase(t)
		car := fakeCar()
		res, err := uc.Create(ctx, car)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		res, err = uc.Create(ctx, car)
		require.NoError(t, err)
		require.False(t, res.IsSuccess)
		assert.Equal(
			t, "Failed to create a new car", res.ErrorMessage(),
		)
	})
	t.Run("propagates unexpected errors", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.err = errors.New("connection reset")
		_, err := uc.Create(ctx, fakeCar())
		assert.ErrorIs(t, err, store.err)
	})
}

func TestReadOne(t *testing.T) {
	ctx := context.Background()
	t.Run("returns the stored car", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		store.cars[car.ID] = car
		res, err := uc.ReadOne(ctx, car.ID)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		assert.Equal(t, car, res.Value)
	})
	t.Run("reports a missing car as a failure", func(t *testing.T) {
		uc, _ := newUseCase(t)
		res, err := uc.ReadOne(ctx, uuid.New())
		require.NoError(t, err)
		require.False(t, res.IsSuccess)
		assert.Equal(
			t,
			"Failed to get a car. Car doesn't exist.",
			res.ErrorMessage(),
		)
	})
}

func TestReadAll(t *testing.T) {
	ctx := context.Background()
	t.Run("returns the whole collection", func(t *testing.T) {
		uc, store := newUseCase(t)
		expected := make([]model.Car, 0, 3)
		for i := 0; i < 3; i++ {
			car := fakeCar()
			store.cars[car.ID] = car
			expected = append(expected, car)
		}
		res, err := uc.ReadAll(ctx)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		assert.ElementsMatch(t, expected, res.Value)
	})
	t.Run("empty catalog is a successful envelope", func(t *testing.T) {
		uc, _ := newUseCase(t)
		res, err := uc.ReadAll(ctx)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		assert.Empty(t, res.Value)
	})
	t.Run("reports a storage fault as a failure", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.err = cerr.Internal(errors.New("relation does not exist"))
		res, err := uc.ReadAll(ctx)
		require.NoError(t, err)
		require.False(t, res.IsSuccess)
		assert.Equal(t, "Cannot get cars.", res.ErrorMessage())
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	t.Run("merges a subset patch", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		store.cars[car.ID] = car
		newModel := "Golf GTI"
		newDoors := 3
		res, err := uc.Update(ctx, car.ID, model.CarPatch{
			Model:       &newModel,
			DoorsNumber: &newDoors,
		})
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		car.Model = newModel
		car.DoorsNumber = newDoors
		assert.Equal(t, car, res.Value)
		assert.Equal(t, car, store.cars[car.ID])
	})
	t.Run("empty patch is an accepted no-op", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		store.cars[car.ID] = car
		res, err := uc.Update(ctx, car.ID, model.CarPatch{})
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		assert.Equal(t, car, res.Value)
		assert.Equal(t, car, store.cars[car.ID])
	})
	t.Run("repeated patch is idempotent", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		store.cars[car.ID] = car
		newBrand := "Skoda"
		p := model.CarPatch{Brand: &newBrand}
		res, err := uc.Update(ctx, car.ID, p)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		again, err := uc.Update(ctx, car.ID, p)
		require.NoError(t, err)
		require.True(t, again.IsSuccess)
		assert.Equal(t, res.Value, again.Value)
	})
	t.Run("reports a missing car as a failure", func(t *testing.T) {
		uc, _ := newUseCase(t)
		newBrand := "Skoda"
		res, err := uc.Update(ctx, uuid.New(), model.CarPatch{
			Brand: &newBrand,
		})
		require.NoError(t, err)
		require.False(t, res.IsSuccess)
		assert.Equal(
			t,
			"Failed to update the car. The car doesn't exist.",
			res.ErrorMessage(),
		)
	})
	t.Run("rejects a patch breaking validation", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		store.cars[car.ID] = car
		emptyBrand := ""
		res, err := uc.Update(ctx, car.ID, model.CarPatch{
			Brand: &emptyBrand,
		})
		require.NoError(t, err)
		require.False(t, res.IsSuccess)
		assert.Equal(t, "Brand is required", res.ErrorMessage())
		assert.Equal(t, car, store.cars[car.ID], "car must stay intact")
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	t.Run("removes the stored car", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		store.cars[car.ID] = car
		res, err := uc.Delete(ctx, car.ID)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		assert.NotContains(t, store.cars, car.ID)
	})
	t.Run("second delete reports a missing car", func(t *testing.T) {
		uc, store := newUseCase(t)
		car := fakeCar()
		store.cars[car.ID] = car
		res, err := uc.Delete(ctx, car.ID)
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		res, err = uc.Delete(ctx, car.ID)
		require.NoError(t, err)
		require.False(t, res.IsSuccess)
		assert.Equal(
			t,
			"Failed to delete car. Specified car doesn't exist.",
			res.ErrorMessage(),
		)
	})
}

func TestWithIDGenerator(t *testing.T) {
	ctx := context.Background()
	fixed := uuid.New()
	store := newMemStore()
	uc, err := carsuc.New(
		&fakePool{store: store}, fakeCars{},
		carsuc.WithIDGenerator(func() uuid.UUID { return fixed }),
	)
	require.NoError(t, err)
	car := fakeCar()
	car.ID = uuid.Nil
	res, err := uc.Create(ctx, car)
	require.NoError(t, err)
	require.True(t, res.IsSuccess)
	assert.Equal(t, fixed, res.Value.ID)

	_, err = carsuc.New(
		&fakePool{store: store}, fakeCars{},
		carsuc.WithIDGenerator(nil),
	)
	assert.Error(t, err, "nil generator must be rejected")
}
