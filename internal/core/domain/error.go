package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrForbidden                  = errors.New("access denied")

	// * Business errors.
	ErrEmptyOrder         = errors.New("order items are required")
	ErrInvalidLineItem    = errors.New("each item must have a product and a quantity greater than zero")
	ErrProductNotFound    = errors.New("some products were not found")
	ErrInvalidOrderID     = errors.New("order id is not valid")
	ErrInvalidOrderStatus = errors.New("invalid status value")
	ErrOrderNotFound      = errors.New("order not found")
)
