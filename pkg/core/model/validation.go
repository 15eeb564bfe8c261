// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "strings"

// ErrorKind classifies a single validation rule failure.
type ErrorKind int

// Valid values for the ErrorKind enum.
const (
	RequiredField ErrorKind = iota + 1 // empty or absent field
	OutOfRange                         // numeric value out of range
	InvalidEnum                        // not a member of a closed enum
)

// FieldError reports one validation rule failure on one field.
// The Message is a human-readable text which is surfaced verbatim to
// the API caller.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

// ValidationErrors is the ordered list of rule failures reported by
// the Validate method. An empty list means the car is valid.
type ValidationErrors []FieldError

// Error implements the error interface by joining all field messages,
// producing the aggregated text which is placed in a failure envelope.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the car against the authoritative ruleset. All rules
// are evaluated independently without short-circuiting, so multiple
// errors can be reported together. It is a pure function of the car
// value; an empty result means the car may be persisted.
// The web client re-implements this ruleset with tighter numeric
// bounds as a pre-submission UX filter (see the client package); the
// bounds below are the ones that gate persistence.
func (c Car) Validate() ValidationErrors {
	var errs ValidationErrors
	fail := func(field string, kind ErrorKind, msg string) {
		errs = append(errs, FieldError{Field: field, Kind: kind, Message: msg})
	}
	if strings.TrimSpace(c.Brand) == "" {
		fail("brand", RequiredField, "Brand is required")
	}
	if strings.TrimSpace(c.Model) == "" {
		fail("model", RequiredField, "Model is required")
	}
	const doorsMsg = "DoorsNumber is required and must be between 2 and 10"
	if c.DoorsNumber == 0 {
		fail("doorsNumber", RequiredField, doorsMsg)
	} else if c.DoorsNumber < 2 || c.DoorsNumber > 10 {
		fail("doorsNumber", OutOfRange, doorsMsg)
	}
	if c.LuggageCapacity <= 0 {
		fail("luggageCapacity", RequiredField, "LuggageCapacity is required")
	}
	if c.EngineCapacity == 0 {
		fail("engineCapacity", RequiredField, "EngineCapacity is required")
	} else if c.EngineCapacity < 0 {
		fail("engineCapacity", OutOfRange, "EngineCapacity is required")
	}
	if c.BodyType.Validate() != nil {
		fail("bodyType", InvalidEnum, "BodyType is required")
	}
	if c.ProductionDate.IsZero() {
		fail("productionDate", RequiredField, "ProductionDate is required")
	}
	if c.FuelType.Validate() != nil {
		fail("fuelType", InvalidEnum, "FuelType is required")
	}
	if c.CarFuelConsumption <= 0 {
		fail("carFuelConsumption", OutOfRange, "FuelConsumption is required")
	}
	return errs
}
