// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/ctxutil"
	"github.com/taibuivan/contacts/internal/platform/sec"
	"github.com/taibuivan/contacts/internal/platform/validate"
)

// unknownFieldPrefix is the prefix encoding/json uses for DisallowUnknownFields failures.
const unknownFieldPrefix = "json: unknown field "

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are rejected. An empty body decodes as an empty object so that
required-field validation, not the decoder, reports what is missing.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: a 400 [apperr.AppError] if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(target)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	// Surface the offending field the same way the validator names fields
	if message := err.Error(); strings.HasPrefix(message, unknownFieldPrefix) {
		field := strings.Trim(strings.TrimPrefix(message, unknownFieldPrefix), `"`)
		return validate.FieldErr(field, "is not allowed")
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) && typeError.Field != "" {
		return validate.FieldErr(typeError.Field, "must be a "+typeError.Type.String())
	}

	return validate.ErrInvalidJSON
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID parses a named URL parameter as a positive integer identifier.

Returns:
  - int64: The identifier
  - error: a 400 [apperr.AppError] when the parameter is not a positive integer
*/
func ID(request *http.Request, name string) (int64, error) {
	validator := &validate.Validator{}
	id := validator.PositiveInt(name, chi.URLParam(request, name))
	if err := validator.Err(); err != nil {
		return 0, err
	}
	return id, nil
}

/*
User extracts the authenticated user from the request context.

Returns nil if the request is not authenticated.
*/
func User(request *http.Request) *sec.AuthUser {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredUser ensures the request is authenticated and returns the resolved user.

Returns:
  - *sec.AuthUser: The authenticated user
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredUser(request *http.Request) (*sec.AuthUser, error) {

	// Get resolved user
	user := ctxutil.GetAuthUser(request.Context())

	// If the user is not authenticated, return an error
	if user == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}

	return user, nil
}
