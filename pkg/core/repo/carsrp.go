package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/pkg/core/model"
)

type CarsConnQueryer interface {
	CarsQueryer
}

type CarsTxQueryer interface {
	CarsQueryer
}

// CarsQueryer is the persistence gateway contract for the cars table.
// It is the sole owner of car rows; the cars use case is its sole
// caller. Lookup operations return cerr.NotFound when no row matches
// the given identifier, Insert returns cerr.Conflict when a
// caller-provided identifier already exists, and writes which affect
// zero rows return cerr.Internal.
type CarsQueryer interface {
	Insert(ctx context.Context, car model.Car) (*model.Car, error)
	GetByID(ctx context.Context, carID uuid.UUID) (*model.Car, error)
	List(ctx context.Context) ([]model.Car, error)
	Update(ctx context.Context, carID uuid.UUID, p model.CarPatch) (*model.Car, error)
	Delete(ctx context.Context, carID uuid.UUID) error
}

type Cars interface {
	Conn(Conn) CarsConnQueryer
	Tx(Tx) CarsTxQueryer
}
