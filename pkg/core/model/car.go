// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Car models a catalog record of a single car. It is the sole entity
// of this project. A car is either fully absent or fully present with
// all required fields populated; no partial or draft state is ever
// persisted, which is enforced by running Validate before every write.
// The corresponding database row struct is the unexported gCar struct
// in the pkg/adapter/db/postgres/carsrp/query.go file.
type Car struct {
	ID                 uuid.UUID // server-assigned if absent on create
	Brand              string    // manufacturer name, e.g., Volkswagen
	Model              string    // model name, e.g., Golf
	DoorsNumber        int       // number of doors, 2 to 10
	LuggageCapacity    int       // luggage capacity in liters
	EngineCapacity     int       // engine displacement in cc
	FuelType           FuelType  // fuel type enum
	BodyType           BodyType  // body type enum
	ProductionDate     time.Time // production date of this car
	CarFuelConsumption float64   // fuel consumption in L/100km
}
