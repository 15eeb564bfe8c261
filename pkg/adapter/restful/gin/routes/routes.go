// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes facilitates instantiation and registration of the
// repo, use case, and resource packages. Each use case package is
// named like carsuc, each repository package is named like carsrp,
// and each resource package is named like carsrs.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pgorczyca/carcat/pkg/adapter/db/postgres/carsrp"
	"github.com/pgorczyca/carcat/pkg/adapter/restful/gin/carsrs"
	"github.com/pgorczyca/carcat/pkg/core/repo"
	"github.com/pgorczyca/carcat/pkg/core/usecase/carsuc"
)

// Register instantiates the cars repository and use case, passing the
// p connections pool to the use case so it may acquire connections
// and transactions on demand, and registers the cars resource as
// request handlers under the /api group of the e gin-gonic engine.
func Register(e *gin.Engine, p repo.Pool) error {
	carsRepo := carsrp.New()
	carsUseCase, err := carsuc.New(p, carsRepo)
	if err != nil {
		return fmt.Errorf("creating cars use case: %w", err)
	}
	r := e.Group("/api")
	carsrs.Register(r, carsUseCase)
	return nil
}
