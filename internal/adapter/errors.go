package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServerUnavailable   = errors.New("server unavailable")

	// ErrServerRejected wraps a response with success=false. The server's
	// message follows the sentinel text after ": ".
	ErrServerRejected = errors.New("server rejected the request")

	// ErrTokenIsExpired is returned before sending a request whose bearer
	// token has already expired.
	ErrTokenIsExpired = errors.New("token is expired")

	ErrUnknownSecretType = errors.New("unknown secret type")
	ErrEmptyResponse     = errors.New("empty response")
	ErrGraphQL           = errors.New("graphql error")
)
