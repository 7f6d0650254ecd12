package client

import (
	"errors"

	"google.golang.org/grpc/codes"
)

var ErrUnavailable = errors.New("server unavailable")

// RemoteError is a call the server answered with a non-OK status.
type RemoteError struct {
	Code    codes.Code
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}
