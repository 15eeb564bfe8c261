// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package client

import (
	"strings"

	"github.com/pgorczyca/carcat/pkg/core/model"
)

// FilterCars returns the cars whose brand, model, or identifier
// contains the query string, matched case-insensitively against the
// concatenated "brand model id" text, in reverse catalog order, so
// the most recently inserted record comes first. An empty query keeps
// every car. The cars argument is not modified.
func FilterCars(cars []model.Car, query string) []model.Car {
	query = strings.ToLower(query)
	filtered := make([]model.Car, 0, len(cars))
	for _, car := range cars {
		text := strings.ToLower(
			car.Brand + " " + car.Model + " " + car.ID.String(),
		)
		if strings.Contains(text, query) {
			filtered = append(filtered, car)
		}
	}
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}
	return filtered
}
