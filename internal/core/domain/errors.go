package domain

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")
var ErrProductNotFound = errors.New("product not found")
var ErrOrderInFlight = errors.New("order submission already in flight")
