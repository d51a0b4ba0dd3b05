// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser provides the shared serialization and
// deserialization helpers of the resource packages: request binding
// with per-field validation errors, categorized error serialization,
// and the generic pt-BR message responses.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/opencarpark/parkapi/pkg/core/cerr"
)

// Bind binds the request into req using the b binding, reporting
// validation failures as a 400 response with per-field messages. It
// returns false when the response is already written.
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

// BindURI is like Bind for the URI path parameters.
func BindURI(c *gin.Context, req any) bool {
	if err := c.ShouldBindUri(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
		return false
	}
	return true
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

// SerErr serializes err as a generic message response, taking the
// status code from the categorized error when there is one and
// falling back to an internal server error otherwise.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, Message(ce.Err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, Message("Erro interno no servidor"))
}

// Message is the generic message response body. The key spelling is
// intentional; deployed clients already parse it.
func Message(msg string) gin.H {
	return gin.H{"menssage": msg}
}

// Deleted writes the generic deletion success response for the named
// entity.
func Deleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, Message(entity+" deletado(a) com sucesso"))
}
