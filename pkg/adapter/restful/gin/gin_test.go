// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/internal/test/dbcontainer"
	"github.com/pgorczyca/carcat/pkg/adapter/db/postgres"
	"github.com/pgorczyca/carcat/pkg/adapter/db/postgres/schema"
	"github.com/pgorczyca/carcat/pkg/adapter/restful/gin"
	"github.com/pgorczyca/carcat/pkg/adapter/restful/gin/routes"
	"github.com/pgorczyca/carcat/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				return schema.New(tx).CreateSchema(ctx)
			})
		},
	)
	igts.Require().NoError(err, "failed to create the cars table")

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	err = routes.Register(igts.Gin, igts.Pool)
	igts.Require().NoError(err, "failed to register Gin routes")
}

// carDto matches the wire shape of one car record.
type carDto struct {
	ID                 string  `json:"id"`
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

type carsEnvelope struct {
	Value     []carDto `json:"value"`
	IsSuccess bool     `json:"isSuccess"`
	Error     *string  `json:"error"`
}

func jsonBody(igts *IntegrationGinTestSuite, v any) io.Reader {
	b, err := json.Marshal(v)
	igts.Require().NoError(err, "cannot marshal request body")
	return bytes.NewReader(b)
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	method, target string, body io.Reader, res any,
) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, target, body)
	igts.Require().NoError(err, "cannot create %s request", method)
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		b := w.Body.Bytes()
		igts.Require().NoError(
			json.Unmarshal(b, res), "body is not json: %s", b,
		)
	}
	return w
}

func (igts *IntegrationGinTestSuite) TestCarLifecycle() {
	newCar := map[string]any{
		"brand":              "Volkswagen",
		"model":              "Golf",
		"doorsNumber":        5,
		"luggageCapacity":    380,
		"engineCapacity":     1498,
		"fuelType":           0,
		"bodyType":           0,
		"productionDate":     "2022-05-10T00:00:00Z",
		"carFuelConsumption": 5.8,
	}
	created := &carDto{}
	w := igts.sendReqRecvResp(
		http.MethodPost, "/api/cars", jsonBody(igts, newCar), created,
	)
	igts.Require().Equal(201, w.Code)
	carID, err := uuid.Parse(created.ID)
	igts.Require().NoError(err, "created car must carry a UUID")
	igts.Equal(
		"/api/cars/"+created.ID, w.Header().Get("Location"),
		"wrong Location header",
	)
	igts.Equal("Volkswagen", created.Brand)
	igts.Equal("Golf", created.Model)

	igts.Run("fetch the created car", func() {
		fetched := &carDto{}
		w := igts.sendReqRecvResp(
			http.MethodGet, "/api/cars/"+carID.String(), nil, fetched,
		)
		igts.Equal(200, w.Code)
		igts.Equal(created, fetched)
	})

	igts.Run("list contains the created car", func() {
		env := &carsEnvelope{}
		w := igts.sendReqRecvResp(http.MethodGet, "/api/cars", nil, env)
		igts.Equal(200, w.Code)
		igts.True(env.IsSuccess)
		igts.Nil(env.Error)
		igts.Contains(env.Value, *created)
	})

	igts.Run("merge-update a subset of fields", func() {
		updated := &carDto{}
		w := igts.sendReqRecvResp(
			http.MethodPut, "/api/cars/"+carID.String(),
			jsonBody(igts, map[string]any{
				"model":       "Golf GTI",
				"doorsNumber": 3,
			}),
			updated,
		)
		igts.Equal(200, w.Code)
		expected := *created
		expected.Model = "Golf GTI"
		expected.DoorsNumber = 3
		igts.Equal(&expected, updated, "untouched fields must survive")
	})

	igts.Run("delete and observe the record is gone", func() {
		w := igts.sendReqRecvResp(
			http.MethodDelete, "/api/cars/"+carID.String(), nil, nil,
		)
		igts.Equal(200, w.Code)
		igts.Empty(w.Body.Bytes(), "delete response has no body")

		var msg string
		w = igts.sendReqRecvResp(
			http.MethodGet, "/api/cars/"+carID.String(), nil, &msg,
		)
		igts.Equal(400, w.Code)
		igts.Equal("Failed to get a car. Car doesn't exist.", msg)
	})
}

func (igts *IntegrationGinTestSuite) TestCreateValidationFailure() {
	var msg string
	w := igts.sendReqRecvResp(
		http.MethodPost, "/api/cars",
		jsonBody(igts, map[string]any{
			"brand":              "",
			"model":              "Golf",
			"doorsNumber":        1,
			"luggageCapacity":    380,
			"engineCapacity":     1498,
			"fuelType":           0,
			"bodyType":           0,
			"productionDate":     "2022-05-10T00:00:00Z",
			"carFuelConsumption": 5.8,
		}),
		&msg,
	)
	igts.Equal(400, w.Code)
	igts.Equal(
		"Brand is required; "+
			"DoorsNumber is required and must be between 2 and 10",
		msg,
	)
}

func (igts *IntegrationGinTestSuite) TestMalformedCarID() {
	for _, method := range []string{
		http.MethodGet, http.MethodPut, http.MethodDelete,
	} {
		igts.Run(method, func() {
			res := &struct {
				Cid []string `json:"cid"`
			}{}
			var body io.Reader
			if method == http.MethodPut {
				body = jsonBody(igts, map[string]any{})
			}
			w := igts.sendReqRecvResp(
				method, "/api/cars/not-a-uuid", body, res,
			)
			igts.Equal(400, w.Code)
			igts.Require().Len(res.Cid, 1)
			igts.Equal("Path param cid is not a UUID.", res.Cid[0])
		})
	}
}

func (igts *IntegrationGinTestSuite) TestMissingCar() {
	missingCarID := uuid.New().String()
	igts.Run("update", func() {
		var msg string
		w := igts.sendReqRecvResp(
			http.MethodPut, "/api/cars/"+missingCarID,
			jsonBody(igts, map[string]any{"model": "Golf GTI"}),
			&msg,
		)
		igts.Equal(400, w.Code)
		igts.Equal(
			"Failed to update the car. The car doesn't exist.", msg,
		)
	})
	igts.Run("delete", func() {
		var msg string
		w := igts.sendReqRecvResp(
			http.MethodDelete, "/api/cars/"+missingCarID, nil, &msg,
		)
		igts.Equal(400, w.Code)
		igts.Equal(
			"Failed to delete car. Specified car doesn't exist.", msg,
		)
	})
}
