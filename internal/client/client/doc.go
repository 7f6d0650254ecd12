// Package client talks to the authkeeper account service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     account lifecycle: CreateAccount, ConfirmAccount, Login, RequestCode,
//     ForgotPassword, ValidateToken, UpdatePassword and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages the
//     connection, stamps the configured origin on every call via an
//     interceptor, and maps gRPC status codes to errors.
//
// # Error Handling
//
// An unreachable server is reported as ErrUnavailable. Rejections carry the
// server's code and message in a *RemoteError, whose Error() is the message
// meant for the end user.
package client
