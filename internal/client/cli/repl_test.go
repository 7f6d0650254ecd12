package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeExec struct {
	cmds []string
	err  error
}

func (f *fakeExec) execute(_ context.Context, cmd string) error {
	f.cmds = append(f.cmds, cmd)
	return f.err
}

func TestRunREPL_DispatchesUntilQuit(t *testing.T) {
	lines := captureOutput(t)
	exec := &fakeExec{}

	r := bufio.NewReader(strings.NewReader("help\n\nping\nlogin extra\nquit\nping\n"))
	runREPL(context.Background(), exec, func() string { return "" }, r)

	assert.Equal(t, []string{"ping", "login"}, exec.cmds)
	assert.Contains(t, *lines, helpText)
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_PrintsErrorsAndStopsOnEOF(t *testing.T) {
	lines := captureOutput(t)
	exec := &fakeExec{err: errors.New("token not found")}

	r := bufio.NewReader(strings.NewReader("confirm"))
	runREPL(context.Background(), exec, func() string { return "(a@x.com)" }, r)

	assert.Equal(t, []string{"confirm"}, exec.cmds)
	assert.Contains(t, *lines, "Error: token not found")
	assert.Contains(t, *lines, "authctl (a@x.com)> ")
}

func TestRoot_StartsREPL(t *testing.T) {
	lines := captureOutput(t)
	fc := &fakeClient{}
	a, _ := newTestApp(fc, "ping\nexit\n")

	a.Root(context.Background())
	assert.Equal(t, []string{"Ping"}, fc.calls)
	assert.Contains(t, *lines, "Welcome to authctl (type 'help' for commands)")
}
