// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, adapting the cars CRUD
// use case with the relevant REST APIs:
//  1. GET /api/cars to list the whole catalog,
//  2. GET /api/cars/:cid to fetch one car,
//  3. POST /api/cars to create a car,
//  4. PUT /api/cars/:cid to merge-update a car,
//  5. DELETE /api/cars/:cid to remove a car.
//
// Successful responses carry the result envelope value (the list
// operation carries the whole envelope); anticipated failures are
// reported as a 400 status with the failure message of the envelope.
package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pgorczyca/carcat/pkg/adapter/restful/gin/serdser"
	"github.com/pgorczyca/carcat/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
}

// Register instantiates a resource adapting the cars use case instance
// with the five catalog REST APIs.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.GET("cars", rs.ListCars)
	r.GET("cars/:cid", rs.GetCar)
	r.POST("cars", rs.CreateCar)
	r.PUT("cars/:cid", rs.UpdateCar)
	r.DELETE("cars/:cid", rs.DeleteCar)
}

func (rs *resource) ListCars(c *gin.Context) {
	res, err := rs.cars.ReadAll(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if !res.IsSuccess {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": res.ErrorMessage(),
		})
		return
	}
	c.JSON(http.StatusOK, rs.SerCars(res))
}

func (rs *resource) GetCar(c *gin.Context) {
	carID, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	res, err := rs.cars.ReadOne(c, carID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if !res.IsSuccess {
		c.JSON(http.StatusBadRequest, res.ErrorMessage())
		return
	}
	c.JSON(http.StatusOK, SerCar(res.Value))
}

func (rs *resource) CreateCar(c *gin.Context) {
	car, ok := rs.DserCreateCarReq(c)
	if !ok {
		return
	}
	res, err := rs.cars.Create(c, *car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if !res.IsSuccess {
		c.JSON(http.StatusBadRequest, res.ErrorMessage())
		return
	}
	c.Header("Location", "/api/cars/"+res.Value.ID.String())
	c.JSON(http.StatusCreated, SerCar(res.Value))
}

func (rs *resource) UpdateCar(c *gin.Context) {
	// the path id always wins; an id in the request body is ignored
	carID, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	patch, ok := rs.DserUpdateCarReq(c)
	if !ok {
		return
	}
	res, err := rs.cars.Update(c, carID, *patch)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if !res.IsSuccess {
		c.JSON(http.StatusBadRequest, res.ErrorMessage())
		return
	}
	c.JSON(http.StatusOK, SerCar(res.Value))
}

func (rs *resource) DeleteCar(c *gin.Context) {
	carID, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	res, err := rs.cars.Delete(c, carID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if !res.IsSuccess {
		c.JSON(http.StatusBadRequest, res.ErrorMessage())
		return
	}
	c.Status(http.StatusOK)
}
