// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package client provides a typed client for the cars catalog REST
// APIs, as consumed by the catalog web frontend. Read operations are
// memoized in a Cache instance and retried once on transport or
// server-side failures, while mutating operations are never retried
// and invalidate the cached cars entries when they succeed.
// It also hosts the view logic of the frontend, namely the catalog
// list filtering and the car form state with its own validation
// ruleset.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/pkg/core/model"
	"github.com/pgorczyca/carcat/pkg/core/result"
)

// Error reports a non-successful response of the server, carrying the
// failure message which was extracted from the response body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf(
		"server responded with status %d: %s", e.StatusCode, e.Message,
	)
}

// Client makes typed calls to the cars catalog REST APIs which are
// served under the /api group of the base URL.
type Client struct {
	baseURL string
	hc      *http.Client
	cache   *Cache
}

// New creates a Client for the catalog server at the base URL,
// like http://localhost:8080 without a trailing slash.
// The opts optional arguments may customize the instance.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: baseURL,
	}
	for i, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("opts[%d]: %w", i, err)
		}
	}
	if c.hc == nil {
		c.hc = &http.Client{Timeout: 30 * time.Second}
	}
	if c.cache == nil {
		c.cache = NewCache()
	}
	return c, nil
}

// carDto is the wire shape of a car record, mirroring what the server
// serializes. Enum fields travel as their 0-based integer codes.
type carDto struct {
	ID                 string  `json:"id,omitempty"`
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	DoorsNumber        int     `json:"doorsNumber"`
	LuggageCapacity    int     `json:"luggageCapacity"`
	EngineCapacity     int     `json:"engineCapacity"`
	FuelType           int     `json:"fuelType"`
	BodyType           int     `json:"bodyType"`
	ProductionDate     string  `json:"productionDate"`
	CarFuelConsumption float64 `json:"carFuelConsumption"`
}

func (d carDto) model() model.Car {
	car := model.Car{
		Brand:              d.Brand,
		Model:              d.Model,
		DoorsNumber:        d.DoorsNumber,
		LuggageCapacity:    d.LuggageCapacity,
		EngineCapacity:     d.EngineCapacity,
		CarFuelConsumption: d.CarFuelConsumption,
	}
	car.ID, _ = uuid.Parse(d.ID)
	car.FuelType, _ = model.FuelTypeFromCode(d.FuelType)
	car.BodyType, _ = model.BodyTypeFromCode(d.BodyType)
	if t, err := time.Parse(time.RFC3339, d.ProductionDate); err == nil {
		car.ProductionDate = t
	}
	return car
}

// enumCode returns the wire code of a valid enum value and an out of
// range code for an invalid one, so an unvalidated form submission
// reaches the server and is rejected by its ruleset instead of
// panicking locally.
func enumCode(validate func() error, code func() int) int {
	if validate() != nil {
		return -1
	}
	return code()
}

func dtoFromCar(car model.Car) carDto {
	d := carDto{
		Brand:           car.Brand,
		Model:           car.Model,
		DoorsNumber:     car.DoorsNumber,
		LuggageCapacity: car.LuggageCapacity,
		EngineCapacity:  car.EngineCapacity,
		FuelType: enumCode(
			car.FuelType.Validate, car.FuelType.Code,
		),
		BodyType: enumCode(
			car.BodyType.Validate, car.BodyType.Code,
		),
		ProductionDate:     car.ProductionDate.UTC().Format(time.RFC3339),
		CarFuelConsumption: car.CarFuelConsumption,
	}
	if car.ID != uuid.Nil {
		d.ID = car.ID.String()
	}
	return d
}

// carPatchDto is the wire shape of a merge-update request. Absent
// fields stay nil and are dropped from the serialized body, leaving
// their stored counterparts untouched.
type carPatchDto struct {
	Brand              *string  `json:"brand,omitempty"`
	Model              *string  `json:"model,omitempty"`
	DoorsNumber        *int     `json:"doorsNumber,omitempty"`
	LuggageCapacity    *int     `json:"luggageCapacity,omitempty"`
	EngineCapacity     *int     `json:"engineCapacity,omitempty"`
	FuelType           *int     `json:"fuelType,omitempty"`
	BodyType           *int     `json:"bodyType,omitempty"`
	ProductionDate     *string  `json:"productionDate,omitempty"`
	CarFuelConsumption *float64 `json:"carFuelConsumption,omitempty"`
}

func dtoFromPatch(p model.CarPatch) carPatchDto {
	d := carPatchDto{
		Brand:              p.Brand,
		Model:              p.Model,
		DoorsNumber:        p.DoorsNumber,
		LuggageCapacity:    p.LuggageCapacity,
		EngineCapacity:     p.EngineCapacity,
		CarFuelConsumption: p.CarFuelConsumption,
	}
	if p.FuelType != nil {
		code := enumCode((*p.FuelType).Validate, (*p.FuelType).Code)
		d.FuelType = &code
	}
	if p.BodyType != nil {
		code := enumCode((*p.BodyType).Validate, (*p.BodyType).Code)
		d.BodyType = &code
	}
	if p.ProductionDate != nil {
		s := p.ProductionDate.UTC().Format(time.RFC3339)
		d.ProductionDate = &s
	}
	return d
}

// GetCars lists the whole catalog, consulting the cache first and
// filling it on success.
func (c *Client) GetCars(ctx context.Context) ([]model.Car, error) {
	if v, ok := c.cache.Get(CarsKey); ok {
		return v.([]model.Car), nil
	}
	env := result.Result[[]carDto]{}
	err := c.call(
		ctx, http.MethodGet, "/api/cars",
		nil, http.StatusOK, &env, true,
	)
	if err != nil {
		return nil, err
	}
	if !env.IsSuccess {
		return nil, &Error{
			StatusCode: http.StatusOK,
			Message:    env.ErrorMessage(),
		}
	}
	cars := make([]model.Car, 0, len(env.Value))
	for _, d := range env.Value {
		cars = append(cars, d.model())
	}
	c.cache.Put(CarsKey, cars)
	return cars, nil
}

// GetCar fetches one car record, consulting the cache first and
// filling it on success.
func (c *Client) GetCar(
	ctx context.Context, carID uuid.UUID,
) (model.Car, error) {
	key := CarDetailKey(carID.String())
	if v, ok := c.cache.Get(key); ok {
		return v.(model.Car), nil
	}
	d := carDto{}
	err := c.call(
		ctx, http.MethodGet, "/api/cars/"+carID.String(),
		nil, http.StatusOK, &d, true,
	)
	if err != nil {
		return model.Car{}, err
	}
	car := d.model()
	c.cache.Put(key, car)
	return car, nil
}

// CreateCar creates a new car record and returns the created record,
// as completed by the server. The cached cars entries are invalidated
// on success.
func (c *Client) CreateCar(
	ctx context.Context, car model.Car,
) (model.Car, error) {
	d := carDto{}
	err := c.call(
		ctx, http.MethodPost, "/api/cars",
		dtoFromCar(car), http.StatusCreated, &d, false,
	)
	if err != nil {
		return model.Car{}, err
	}
	c.cache.Invalidate(CarsKey)
	return d.model(), nil
}

// UpdateCar merge-updates the car record with the carID identifier
// and returns the updated record. The cached cars entries are
// invalidated on success.
func (c *Client) UpdateCar(
	ctx context.Context, carID uuid.UUID, p model.CarPatch,
) (model.Car, error) {
	d := carDto{}
	err := c.call(
		ctx, http.MethodPut, "/api/cars/"+carID.String(),
		dtoFromPatch(p), http.StatusOK, &d, false,
	)
	if err != nil {
		return model.Car{}, err
	}
	c.cache.Invalidate(CarsKey)
	return d.model(), nil
}

// DeleteCar removes the car record with the carID identifier. The
// cached cars entries are invalidated on success.
func (c *Client) DeleteCar(ctx context.Context, carID uuid.UUID) error {
	err := c.call(
		ctx, http.MethodDelete, "/api/cars/"+carID.String(),
		nil, http.StatusOK, nil, false,
	)
	if err != nil {
		return err
	}
	c.cache.Invalidate(CarsKey)
	return nil
}

// call sends one request, retrying exactly once on a transport error
// or a server-side failure status when retry is set, and unmarshals a
// wantStatus response body into respBody (if non-nil). Any other
// status is reported as an *Error with the failure message which was
// found in the response body.
func (c *Client) call(
	ctx context.Context,
	method, path string,
	reqBody any,
	wantStatus int,
	respBody any,
	retry bool,
) error {
	var payload []byte
	if reqBody != nil {
		var err error
		if payload, err = json.Marshal(reqBody); err != nil {
			return fmt.Errorf("marshalling request body: %w", err)
		}
	}
	status, data, err := c.send(ctx, method, path, payload)
	if retry && (err != nil || status >= 500) {
		status, data, err = c.send(ctx, method, path, payload)
	}
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	if status != wantStatus {
		return &Error{
			StatusCode: status,
			Message:    failureMessage(data),
		}
	}
	if respBody == nil {
		return nil
	}
	if err := json.Unmarshal(data, respBody); err != nil {
		return fmt.Errorf("unmarshalling response body: %w", err)
	}
	return nil
}

func (c *Client) send(
	ctx context.Context, method, path string, payload []byte,
) (status int, data []byte, err error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(
		ctx, method, c.baseURL+path, body,
	)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response body: %w", err)
	}
	return resp.StatusCode, data, nil
}

// failureMessage extracts a human readable message from a failure
// response body which may be a bare JSON string, a details object, or
// a map of binding errors.
func failureMessage(data []byte) string {
	var msg string
	if err := json.Unmarshal(data, &msg); err == nil {
		return msg
	}
	details := struct {
		Detail string `json:"detail"`
	}{}
	if err := json.Unmarshal(data, &details); err == nil {
		if details.Detail != "" {
			return details.Detail
		}
	}
	return string(data)
}
