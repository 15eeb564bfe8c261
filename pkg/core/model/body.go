// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// BodyType specifies the closed body type enumeration, following the
// same conventions as the FuelType enum.
type BodyType int

// Valid values for the BodyType enum.
const (
	BodyTypeInvalid BodyType = iota // zero value is invalid

	BodyTypeHatchback
	BodyTypeSedan
	BodyTypeKombi
	BodyTypeSuv
	BodyTypeRoadster
)

// ErrUnknownBodyType indicates that a given string may not be parsed
// as a valid/known body type label.
var ErrUnknownBodyType = errors.New("unknown body type")

// BodyTypeError indicates an invalid body type, containing the invalid
// value as an integer.
type BodyTypeError int

// Error implements the error interface, returning a string
// representation of the BodyTypeError.
func (e BodyTypeError) Error() string {
	return fmt.Sprintf("invalid body type: %d", int(e))
}

// Validate returns nil if BodyType value is valid. For invalid
// values, an instance of the BodyTypeError will be returned.
func (b BodyType) Validate() error {
	switch b {
	case BodyTypeHatchback, BodyTypeSedan, BodyTypeKombi,
		BodyTypeSuv, BodyTypeRoadster:
		return nil
	default:
		return BodyTypeError(b)
	}
}

// String converts the BodyType enum to its display label.
// Invalid body type causes a panic.
func (b BodyType) String() string {
	switch b {
	case BodyTypeHatchback:
		return "Hatchback"
	case BodyTypeSedan:
		return "Sedan"
	case BodyTypeKombi:
		return "Kombi"
	case BodyTypeSuv:
		return "Suv"
	case BodyTypeRoadster:
		return "Roadster"
	default:
		panic(BodyTypeError(b))
	}
}

// Code returns the 0-based integer code of this body type as it is
// transmitted over the REST API and stored in the database
// (Hatchback=0, Sedan=1, Kombi=2, Suv=3, Roadster=4).
// Invalid body type causes a panic.
func (b BodyType) Code() int {
	if err := b.Validate(); err != nil {
		panic(err)
	}
	return int(b - BodyTypeHatchback)
}

// BodyTypeFromCode converts a wire-level integer code back to the
// BodyType enum. For out of range codes, BodyTypeInvalid and
// ErrUnknownBodyType will be returned.
func BodyTypeFromCode(code int) (BodyType, error) {
	b := BodyTypeHatchback + BodyType(code)
	if code < 0 || b.Validate() != nil {
		return BodyTypeInvalid, ErrUnknownBodyType
	}
	return b, nil
}

// ParseBodyType parses the given display label and returns a BodyType.
// For invalid labels, BodyTypeInvalid and ErrUnknownBodyType will be
// returned.
func ParseBodyType(s string) (BodyType, error) {
	switch s {
	case "Hatchback":
		return BodyTypeHatchback, nil
	case "Sedan":
		return BodyTypeSedan, nil
	case "Kombi":
		return BodyTypeKombi, nil
	case "Suv":
		return BodyTypeSuv, nil
	case "Roadster":
		return BodyTypeRoadster, nil
	default:
		return BodyTypeInvalid, ErrUnknownBodyType
	}
}

// BodyTypeLabels lists the display labels of all valid body types in
// their wire code order.
func BodyTypeLabels() []string {
	return []string{"Hatchback", "Sedan", "Kombi", "Suv", "Roadster"}
}
