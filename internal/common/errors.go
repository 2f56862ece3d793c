// Package common defines shared constants and sentinel errors used across
// the exchange server and its client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorValidation      = errors.New("validation error")

	// Auth errors.
	ErrorInvalidPassword = errors.New("invalid password provided")
	ErrorNoToken         = errors.New("no auth token provided")
	ErrorInvalidToken    = errors.New("invalid auth token provided")

	// Trading errors.
	ErrorSelfTrade         = errors.New("you can't buy your own vaccine")
	ErrorInsufficientFunds = errors.New("not enough money to buy")
)
