// Copyright (c) 2025 Piotr Gorczyca
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/pgorczyca/carcat/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuelTypeCodes(t *testing.T) {
	assert.Equal(t, 0, model.FuelTypePetrol.Code())
	assert.Equal(t, 1, model.FuelTypeDiesel.Code())
	assert.Equal(t, 2, model.FuelTypeHybrid.Code())
	assert.Equal(t, 3, model.FuelTypeLPG.Code())

	for code, label := range model.FuelTypeLabels() {
		f, err := model.FuelTypeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, f.Code())
		assert.Equal(t, label, f.String())
		p, err := model.ParseFuelType(label)
		require.NoError(t, err)
		assert.Equal(t, f, p)
	}
}

func TestFuelTypeInvalidValues(t *testing.T) {
	for _, code := range []int{-1, 4, 42} {
		f, err := model.FuelTypeFromCode(code)
		assert.ErrorIs(t, err, model.ErrUnknownFuelType, "code %d", code)
		assert.Equal(t, model.FuelTypeInvalid, f)
	}
	_, err := model.ParseFuelType("Electric")
	assert.ErrorIs(t, err, model.ErrUnknownFuelType)
	assert.Error(t, model.FuelTypeInvalid.Validate())
	assert.Panics(t, func() { _ = model.FuelTypeInvalid.String() })
	assert.Panics(t, func() { _ = model.FuelType(9).Code() })
}

func TestBodyTypeCodes(t *testing.T) {
	assert.Equal(t, 0, model.BodyTypeHatchback.Code())
	assert.Equal(t, 1, model.BodyTypeSedan.Code())
	assert.Equal(t, 2, model.BodyTypeKombi.Code())
	assert.Equal(t, 3, model.BodyTypeSuv.Code())
	assert.Equal(t, 4, model.BodyTypeRoadster.Code())

	for code, label := range model.BodyTypeLabels() {
		b, err := model.BodyTypeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, b.Code())
		assert.Equal(t, label, b.String())
		p, err := model.ParseBodyType(label)
		require.NoError(t, err)
		assert.Equal(t, b, p)
	}
}

func TestBodyTypeInvalidValues(t *testing.T) {
	for _, code := range []int{-1, 5, 42} {
		b, err := model.BodyTypeFromCode(code)
		assert.ErrorIs(t, err, model.ErrUnknownBodyType, "code %d", code)
		assert.Equal(t, model.BodyTypeInvalid, b)
	}
	_, err := model.ParseBodyType("Coupe")
	assert.ErrorIs(t, err, model.ErrUnknownBodyType)
	assert.Error(t, model.BodyTypeInvalid.Validate())
	assert.Panics(t, func() { _ = model.BodyTypeInvalid.String() })
	assert.Panics(t, func() { _ = model.BodyType(9).Code() })
}
