package carsrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pgorczyca/carcat/pkg/adapter/db/postgres"
	"github.com/pgorczyca/carcat/pkg/core/cerr"
	"github.com/pgorczyca/carcat/pkg/core/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLSTATE class 23505 is a unique constraint violation, raised when
// a caller-provided id collides with an existing row.
const uniqueViolation = "23505"

// gCar is the row shape of the cars table. Enum fields are stored as
// their 0-based integer wire codes, not as the in-memory enum values,
// so rows stay readable with plain SQL and match the REST wire format.
type gCar struct {
	ID                 uuid.UUID `gorm:"primaryKey;type:uuid;column:id"`
	Brand              string
	Model              string
	DoorsNumber        int
	LuggageCapacity    int
	EngineCapacity     int
	FuelType           int16
	BodyType           int16
	ProductionDate     time.Time
	CarFuelConsumption float64
}

func (gc *gCar) TableName() string {
	return "cars"
}

// Model converts the row back to the domain model. Stored enum codes
// are always valid because every write passes validation first, but a
// row edited out-of-band could hold garbage, which is reported as an
// error instead of a panic.
func (gc *gCar) toModel() (*model.Car, error) {
	ft, err := model.FuelTypeFromCode(int(gc.FuelType))
	if err != nil {
		return nil, fmt.Errorf("fuel type code (%d): %w", gc.FuelType, err)
	}
	bt, err := model.BodyTypeFromCode(int(gc.BodyType))
	if err != nil {
		return nil, fmt.Errorf("body type code (%d): %w", gc.BodyType, err)
	}
	return &model.Car{
		ID:                 gc.ID,
		Brand:              gc.Brand,
		Model:              gc.Model,
		DoorsNumber:        gc.DoorsNumber,
		LuggageCapacity:    gc.LuggageCapacity,
		EngineCapacity:     gc.EngineCapacity,
		FuelType:           ft,
		BodyType:           bt,
		ProductionDate:     gc.ProductionDate,
		CarFuelConsumption: gc.CarFuelConsumption,
	}, nil
}

func row(car model.Car) *gCar {
	return &gCar{
		ID:                 car.ID,
		Brand:              car.Brand,
		Model:              car.Model,
		DoorsNumber:        car.DoorsNumber,
		LuggageCapacity:    car.LuggageCapacity,
		EngineCapacity:     car.EngineCapacity,
		FuelType:           int16(car.FuelType.Code()),
		BodyType:           int16(car.BodyType.Code()),
		ProductionDate:     car.ProductionDate,
		CarFuelConsumption: car.CarFuelConsumption,
	}
}

// Insert persists a new validated car row. A duplicate identifier is
// reported as cerr.Conflict; all other errors are wrapped as-is.
func Insert[Q postgres.Queryer](ctx context.Context, q Q, car model.Car) (*model.Car, error) {
	gdb := q.GORM(ctx)
	gc := row(car)
	if err := gdb.Create(gc).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolation {
			return nil, cerr.Conflict(
				fmt.Errorf("car id %v already exists", car.ID),
			)
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.toModel()
}

// GetByID fetches one car row by its identifier, reporting a missing
// row as cerr.NotFound.
func GetByID[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) (*model.Car, error) {
	gdb := q.GORM(ctx)
	var gc gCar
	err := gdb.Where("id=?", carID).First(&gc).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, cerr.NotFound(
			fmt.Errorf("no car with id %v", carID),
		)
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	}
	return gc.toModel()
}

// List fetches the entire cars collection with no guaranteed order.
func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Car, error) {
	gdb := q.GORM(ctx)
	var gcs []gCar
	if err := gdb.Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	cars := make([]model.Car, 0, len(gcs))
	for i := range gcs {
		car, err := gcs[i].toModel()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		cars = append(cars, *car)
	}
	return cars, nil
}

// Update overwrites exactly the columns which are present in the
// patch, leaving all other columns untouched, and returns the merged
// row. A write which affects no row is reported as cerr.Internal; the
// caller is expected to have checked existence in the same
// transaction beforehand.
func Update[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID, p model.CarPatch) (*model.Car, error) {
	gdb := q.GORM(ctx)
	var gc []gCar
	gdb.Model(&gc).Clauses(clause.Returning{}).Where(
		"id=?", carID,
	).Updates(patchColumns(p))
	if err := gdb.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gc); n != 1 {
		return nil, cerr.Internal(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gc[0].toModel()
}

// Delete removes one car row permanently. A delete which affects no
// row is reported as cerr.Internal, like Update.
func Delete[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) error {
	gdb := q.GORM(ctx)
	tt := gdb.Where("id=?", carID).Delete(&gCar{})
	if err := tt.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if tt.RowsAffected == 0 {
		return cerr.Internal(
			fmt.Errorf("no row was deleted for car id %v", carID),
		)
	}
	return nil
}

// patchColumns maps the patch onto column name/value pairs for the
// GORM Updates call, encoding enums as their wire codes.
func patchColumns(p model.CarPatch) map[string]any {
	cols := make(map[string]any)
	if p.Brand != nil {
		cols["brand"] = *p.Brand
	}
	if p.Model != nil {
		cols["model"] = *p.Model
	}
	if p.DoorsNumber != nil {
		cols["doors_number"] = *p.DoorsNumber
	}
	if p.LuggageCapacity != nil {
		cols["luggage_capacity"] = *p.LuggageCapacity
	}
	if p.EngineCapacity != nil {
		cols["engine_capacity"] = *p.EngineCapacity
	}
	if p.FuelType != nil {
		cols["fuel_type"] = int16((*p.FuelType).Code())
	}
	if p.BodyType != nil {
		cols["body_type"] = int16((*p.BodyType).Code())
	}
	if p.ProductionDate != nil {
		cols["production_date"] = *p.ProductionDate
	}
	if p.CarFuelConsumption != nil {
		cols["car_fuel_consumption"] = *p.CarFuelConsumption
	}
	return cols
}
