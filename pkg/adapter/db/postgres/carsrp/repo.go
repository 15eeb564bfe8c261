// Package carsrp implements the cars repository, mapping model.Car
// records to and from rows of the cars table. It is the sole writer
// of that table; the cars use case is its sole caller.
package carsrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/pkg/adapter/db/postgres"
	"github.com/pgorczyca/carcat/pkg/core/model"
	"github.com/pgorczyca/carcat/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (cars *Repo) Conn(c repo.Conn) repo.CarsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, car model.Car) (*model.Car, error) {
	return Insert(ctx, cq.Conn, car)
}

func (cq connQueryer) GetByID(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return GetByID(ctx, cq.Conn, carID)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Car, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Update(ctx context.Context, carID uuid.UUID, p model.CarPatch) (*model.Car, error) {
	return Update(ctx, cq.Conn, carID, p)
}

func (cq connQueryer) Delete(ctx context.Context, carID uuid.UUID) error {
	return Delete(ctx, cq.Conn, carID)
}

type txQueryer struct {
	*postgres.Tx
}

func (cars *Repo) Tx(tx repo.Tx) repo.CarsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, car model.Car) (*model.Car, error) {
	return Insert(ctx, tq.Tx, car)
}

func (tq txQueryer) GetByID(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return GetByID(ctx, tq.Tx, carID)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Car, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Update(ctx context.Context, carID uuid.UUID, p model.CarPatch) (*model.Car, error) {
	return Update(ctx, tq.Tx, carID, p)
}

func (tq txQueryer) Delete(ctx context.Context, carID uuid.UUID) error {
	return Delete(ctx, tq.Tx, carID)
}
