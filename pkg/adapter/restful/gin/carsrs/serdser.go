package carsrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/pgorczyca/carcat/pkg/adapter/restful/gin/serdser"
	"github.com/pgorczyca/carcat/pkg/core/model"
	"github.com/pgorczyca/carcat/pkg/core/result"
)

// carDto is the wire shape of a car record. Enum fields travel as
// their 0-based integer codes and the production date as an ISO-8601
// string, matching what the web client stores in its forms.
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

// SerCar serializes a car model into its wire shape.
func SerCar(car model.Car) carDto {
	return carDto{
		ID:                 car.ID.String(),
		Brand:              car.Brand,
		Model:              car.Model,
		DoorsNumber:        car.DoorsNumber,
		LuggageCapacity:    car.LuggageCapacity,
		EngineCapacity:     car.EngineCapacity,
		FuelType:           car.FuelType.Code(),
		BodyType:           car.BodyType.Code(),
		ProductionDate:     car.ProductionDate.UTC().Format(time.RFC3339),
		CarFuelConsumption: car.CarFuelConsumption,
	}
}

// SerCars serializes the list operation envelope, keeping the
// envelope itself on the wire (unlike the single-value operations
// which strip it).
func (rs *resource) SerCars(res result.Result[[]model.Car]) result.Result[[]carDto] {
	dtos := make([]carDto, 0, len(res.Value))
	for _, car := range res.Value {
		dtos = append(dtos, SerCar(car))
	}
	return result.Result[[]carDto]{
		Value:     dtos,
		IsSuccess: res.IsSuccess,
		Error:     res.Error,
	}
}

// ParseCarDate parses the wire representation of a production date,
// accepting a full ISO-8601 timestamp or a plain date. Unparseable
// input yields the zero time, which the validation ruleset reports as
// a missing production date.
func ParseCarDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

type rawCarCreateReq struct {
	ID                 string  `json:"id" binding:"omitempty,uuid"`
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

// DserCarID deserializes the :cid path parameter.
func (rs *resource) DserCarID(c *gin.Context) (uuid.UUID, bool) {
	carID, err := uuid.Parse(c.Param("cid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "cid", "Path param cid is not a UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return carID, true
}

// DserCreateCarReq deserializes a create request body into a car
// model. Out of range enum codes are mapped to the invalid enum
// values and an unparseable date to the zero time, so the validation
// ruleset reports them uniformly instead of a binding-level rejection.
func (rs *resource) DserCreateCarReq(c *gin.Context) (*model.Car, bool) {
	req := &rawCarCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil, false
	}
	car := &model.Car{
		Brand:              req.Brand,
		Model:              req.Model,
		DoorsNumber:        req.DoorsNumber,
		LuggageCapacity:    req.LuggageCapacity,
		EngineCapacity:     req.EngineCapacity,
		ProductionDate:     ParseCarDate(req.ProductionDate),
		CarFuelConsumption: req.CarFuelConsumption,
	}
	if req.ID != "" {
		car.ID = uuid.MustParse(req.ID) // the uuid binding tag held
	}
	car.FuelType, _ = model.FuelTypeFromCode(req.FuelType)
	car.BodyType, _ = model.BodyTypeFromCode(req.BodyType)
	return car, true
}

type rawCarUpdateReq struct {
	// An id in the body is accepted and ignored; the path id wins.
	ID                 *string  `json:"id"`
	Brand              *string  `json:"brand"`
	Model              *string  `json:"model"`
	DoorsNumber        *int     `json:"doorsNumber"`
	LuggageCapacity    *int     `json:"luggageCapacity"`
	EngineCapacity     *int     `json:"engineCapacity"`
	FuelType           *int     `json:"fuelType"`
	BodyType           *int     `json:"bodyType"`
	ProductionDate     *string  `json:"productionDate"`
	CarFuelConsumption *float64 `json:"carFuelConsumption"`
}

// DserUpdateCarReq deserializes an update request body into a merge
// patch. Absent fields stay nil and leave their stored counterparts
// untouched.
func (rs *resource) DserUpdateCarReq(c *gin.Context) (*model.CarPatch, bool) {
	req := &rawCarUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil, false
	}
	p := &model.CarPatch{
		Brand:              req.Brand,
		Model:              req.Model,
		DoorsNumber:        req.DoorsNumber,
		LuggageCapacity:    req.LuggageCapacity,
		EngineCapacity:     req.EngineCapacity,
		CarFuelConsumption: req.CarFuelConsumption,
	}
	if req.FuelType != nil {
		ft, _ := model.FuelTypeFromCode(*req.FuelType)
		p.FuelType = &ft
	}
	if req.BodyType != nil {
		bt, _ := model.BodyTypeFromCode(*req.BodyType)
		p.BodyType = &bt
	}
	if req.ProductionDate != nil {
		t := ParseCarDate(*req.ProductionDate)
		p.ProductionDate = &t
	}
	return p, true
}
