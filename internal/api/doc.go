// Package api defines the wire contract of the authkeeper gRPC service:
// request and response messages, their validation rules, the JSON codec
// they travel with and the service descriptor shared by server and client.
package api
