package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives.
type execIface interface {
	execute(ctx context.Context, cmd string) error
}

const helpText = "Available commands: register, confirm, login, request-code, forgot-password, validate-token, reset-password, ping, exit"

// runREPL reads one command per line from reader and dispatches it to a.
// Errors are printed and the loop goes on. It returns on EOF or on
// "exit" / "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("authctl %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			printlnFn(helpText)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			if err := a.execute(ctx, cmd); err != nil {
				printlnFn("Error:", err.Error())
			}
		}
	}
}

// Root runs the REPL on the App's input until the user leaves.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to authctl (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
