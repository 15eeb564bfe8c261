// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// FuelType specifies the closed fuel type enumeration. The numeric
// values are internal; the REST API transmits the 0-based integer
// codes of the Code method while the client-facing forms use the
// string labels of the String method.
type FuelType int

// Valid values for the FuelType enum.
const (
	FuelTypeInvalid FuelType = iota // zero value is invalid

	FuelTypePetrol
	FuelTypeDiesel
	FuelTypeHybrid
	FuelTypeLPG
)

// ErrUnknownFuelType indicates that a given string may not be parsed
// as a valid/known fuel type label.
var ErrUnknownFuelType = errors.New("unknown fuel type")

// FuelTypeError indicates an invalid fuel type, containing the invalid
// value as an integer.
type FuelTypeError int

// Error implements the error interface, returning a string
// representation of the FuelTypeError.
func (e FuelTypeError) Error() string {
	return fmt.Sprintf("invalid fuel type: %d", int(e))
}

// Validate returns nil if FuelType value is valid. For invalid
// values, an instance of the FuelTypeError will be returned.
func (f FuelType) Validate() error {
	switch f {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeHybrid, FuelTypeLPG:
		return nil
	default:
		return FuelTypeError(f)
	}
}

// String converts the FuelType enum to its display label, as shown by
// the web client forms and table badges. Invalid fuel type causes a
// panic.
func (f FuelType) String() string {
	switch f {
	case FuelTypePetrol:
		return "Petrol"
	case FuelTypeDiesel:
		return "Diesel"
	case FuelTypeHybrid:
		return "Hybrid"
	case FuelTypeLPG:
		return "LPG"
	default:
		panic(FuelTypeError(f))
	}
}

// Code returns the 0-based integer code of this fuel type as it is
// transmitted over the REST API and stored in the database
// (Petrol=0, Diesel=1, Hybrid=2, LPG=3).
// Invalid fuel type causes a panic.
func (f FuelType) Code() int {
	if err := f.Validate(); err != nil {
		panic(err)
	}
	return int(f - FuelTypePetrol)
}

// FuelTypeFromCode converts a wire-level integer code back to the
// FuelType enum. For out of range codes, FuelTypeInvalid and
// ErrUnknownFuelType will be returned.
func FuelTypeFromCode(code int) (FuelType, error) {
	f := FuelTypePetrol + FuelType(code)
	if code < 0 || f.Validate() != nil {
		return FuelTypeInvalid, ErrUnknownFuelType
	}
	return f, nil
}

// ParseFuelType parses the given display label and returns a FuelType,
// helping to deserialize client-side form selections. For invalid
// labels, FuelTypeInvalid and ErrUnknownFuelType will be returned.
func ParseFuelType(s string) (FuelType, error) {
	switch s {
	case "Petrol":
		return FuelTypePetrol, nil
	case "Diesel":
		return FuelTypeDiesel, nil
	case "Hybrid":
		return FuelTypeHybrid, nil
	case "LPG":
		return FuelTypeLPG, nil
	default:
		return FuelTypeInvalid, ErrUnknownFuelType
	}
}

// FuelTypeLabels lists the display labels of all valid fuel types in
// their wire code order, as presented by the client form selectors.
func FuelTypeLabels() []string {
	return []string{"Petrol", "Diesel", "Hybrid", "LPG"}
}
