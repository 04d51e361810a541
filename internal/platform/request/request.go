// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lequocan/ladle/internal/platform/apperr"
	"github.com/lequocan/ladle/internal/platform/ctxutil"
	"github.com/lequocan/ladle/internal/platform/sec"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: a VALIDATION_ERROR [apperr.AppError] if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return apperr.ValidationError("Invalid JSON payload")
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as an integer.

Returns:
  - int: The parsed value
  - error: a VALIDATION_ERROR [apperr.AppError] if the parameter is not an integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Parameter '" + name + "' must be an integer")
	}
	return value, nil
}

/*
RequiredChef ensures the request is authenticated and returns the chef identity.

Returns:
  - *sec.Identity: The authenticated chef
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredChef(request *http.Request) (*sec.Identity, error) {

	// Get the resolved identity
	chef := ctxutil.GetChef(request.Context())

	// If the request is anonymous, return an error
	if chef == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return chef, nil
}
