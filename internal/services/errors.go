package services

import (
	"errors"
	"fmt"
)

// AuthenticationError is a rejected login. Message is the server's error_msg, verbatim.
type AuthenticationError struct {
	Status  int
	Message string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (%d): %s", e.Status, e.Message)
}

// RequestError covers every other failed call: non-2xx status, transport
// failure or an unreadable body. Status is 0 when no response arrived.
type RequestError struct {
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s request failed (%d): %s", e.Endpoint, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s request failed (%d)", e.Endpoint, e.Status)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
