// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// CarPatch carries a partial car for merge updates. Every field is a
// pointer; a nil pointer means the corresponding stored field must be
// left untouched, while a non-nil pointer overwrites it. The record
// identifier is never part of a patch since it is immutable after
// creation.
type CarPatch struct {
	Brand              *string
	Model              *string
	DoorsNumber        *int
	LuggageCapacity    *int
	EngineCapacity     *int
	FuelType           *FuelType
	BodyType           *BodyType
	ProductionDate     *time.Time
	CarFuelConsumption *float64
}

// Apply overwrites the fields of car which are present in the patch,
// implementing the field-by-field coalesce of the merge update
// contract. Absent fields keep their stored values.
func (p CarPatch) Apply(car *Car) {
	if p.Brand != nil {
		car.Brand = *p.Brand
	}
	if p.Model != nil {
		car.Model = *p.Model
	}
	if p.DoorsNumber != nil {
		car.DoorsNumber = *p.DoorsNumber
	}
	if p.LuggageCapacity != nil {
		car.LuggageCapacity = *p.LuggageCapacity
	}
	if p.EngineCapacity != nil {
		car.EngineCapacity = *p.EngineCapacity
	}
	if p.FuelType != nil {
		car.FuelType = *p.FuelType
	}
	if p.BodyType != nil {
		car.BodyType = *p.BodyType
	}
	if p.ProductionDate != nil {
		car.ProductionDate = *p.ProductionDate
	}
	if p.CarFuelConsumption != nil {
		car.CarFuelConsumption = *p.CarFuelConsumption
	}
}

// IsZero reports whether the patch carries no field at all, in which
// case an update is a trivially-accepted no-op.
func (p CarPatch) IsZero() bool {
	return p.Brand == nil &&
		p.Model == nil &&
		p.DoorsNumber == nil &&
		p.LuggageCapacity == nil &&
		p.EngineCapacity == nil &&
		p.FuelType == nil &&
		p.BodyType == nil &&
		p.ProductionDate == nil &&
		p.CarFuelConsumption == nil
}

// PatchFromCar converts a full car into a patch carrying every field,
// so a full replace can reuse the merge update path.
func PatchFromCar(c Car) CarPatch {
	return CarPatch{
		Brand:              &c.Brand,
		Model:              &c.Model,
		DoorsNumber:        &c.DoorsNumber,
		LuggageCapacity:    &c.LuggageCapacity,
		EngineCapacity:     &c.EngineCapacity,
		FuelType:           &c.FuelType,
		BodyType:           &c.BodyType,
		ProductionDate:     &c.ProductionDate,
		CarFuelConsumption: &c.CarFuelConsumption,
	}
}
