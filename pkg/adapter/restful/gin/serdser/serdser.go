// Package serdser provides the shared (de)serialization helpers for
// the per-resource REST packages: request binding with per-field error
// maps and translation of internal errors to HTTP status codes.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pgorczyca/carcat/pkg/core/cerr"
	"github.com/pgorczyca/carcat/pkg/core/log"
)

// Bind binds the current request to req using the b binding and
// reports binding failures to the client as a map from field names to
// their error messages, with the 400 status code. It returns true if
// binding succeeded and the request processing may continue.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	switch err := c.ShouldBindWith(req, b).(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// SerErr serializes an unexpected error as a problem-style response.
// Errors which carry an HTTP status code via cerr keep it; anything
// else is a server fault and is logged before being reported as 500.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	log.Error(c, "unexpected error", log.Err("err", err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}
