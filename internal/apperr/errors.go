package apperr

import "errors"

// Unauthorized is returned when the backend rejects the bearer token (HTTP 401).
// The session has already been invalidated by the time callers see it.
var Unauthorized = errors.New("unauthorized")

// Validation indicates a request the backend refused with a detail message (4xx).
var Validation = errors.New("validation failed")

// Server indicates a backend/application failure (5xx or other non-2xx).
var Server = errors.New("server error")

// Network indicates that no response reached the client at all.
var Network = errors.New("network error")

// NoData marks a 204 response: the call succeeded but carried no body.
var NoData = errors.New("no data")
