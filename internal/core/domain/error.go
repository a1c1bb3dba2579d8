package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Business errors.
	ErrStaleSelection  = errors.New("selected order is no longer pending")
	ErrInvalidOrderID  = errors.New("invalid order ID")
	ErrInvalidOrder    = errors.New("order is not valid")
	ErrFoodNotFound    = errors.New("food item not found")
	ErrPriceMissing    = errors.New("food price is missing")
	ErrPriceMalformed  = errors.New("food price is not a number")
	ErrInvalidQuantity = errors.New("quantity is not valid")
)
