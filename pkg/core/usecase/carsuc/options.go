// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc

import (
	"errors"

	"github.com/google/uuid"
)

// Option is a functional option for the cars use case.
type Option func(uc *UseCase) error

// WithIDGenerator option configures a cars UseCase instance to assign
// identifiers with the given generator instead of uuid.New, so tests
// can create records with deterministic ids. This option may be passed
// to the New() function.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(uc *UseCase) error {
		if gen == nil {
			return errors.New("id generator is nil")
		}
		if uc.newID != nil {
			return errors.New("id generator is already configured")
		}
		uc.newID = gen
		return nil
	}
}
