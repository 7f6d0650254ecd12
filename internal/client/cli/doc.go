// Package cli provides authctl, the command-line client of the account
// service.
//
// A subcommand given on the command line runs once; without one the App
// starts a REPL. Every command prompts for what it needs (e-mail, name,
// token, password) and prints the server's answer.
//
// Commands:
//   - register, confirm, login
//   - request-code, forgot-password
//   - validate-token, reset-password
//   - ping
package cli
