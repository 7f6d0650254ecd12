// Package common contains shared constants and sentinel errors used across
// authkeeper components.
package common

const (
	// OriginHeaderName is the gRPC metadata key checked by the server's
	// origin admission interceptor.
	OriginHeaderName = "origin"

	// MinPasswordLength is the shortest password accepted at the API boundary.
	MinPasswordLength = 8

	// MaxPasswordBytes is the longest password, in bytes, that bcrypt can hash.
	MaxPasswordBytes = 72
)
