package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogNotifier_WritesMessageAndKeepsTokenOutOfLog(t *testing.T) {
	r, err := NewRenderer("", 10*time.Minute)
	require.NoError(t, err)

	var out bytes.Buffer
	rec := &recordingLogger{}
	n := NewLogNotifier("no-reply@example.com", r, &out, rec)

	err = n.Notify(context.Background(), Message{
		Address: "ann@example.com",
		Kind:    KindConfirmAccount,
		Payload: Payload{Name: "Ann", Token: "secret-token"},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "secret-token")
	require.Len(t, rec.entries, 1)
	for _, a := range rec.args[0] {
		assert.NotEqual(t, "secret-token", a)
	}
}

func TestLogNotifier_Errors(t *testing.T) {
	r, err := NewRenderer("", 10*time.Minute)
	require.NoError(t, err)

	n := NewLogNotifier("no-reply@example.com", r, failingWriter{}, nopLogger{})
	msg := Message{Address: "ann@example.com", Kind: KindPasswordReset, Payload: Payload{Name: "Ann", Token: "t"}}
	require.ErrorContains(t, n.Notify(context.Background(), msg), "disk full")

	msg.Address = "not an address"
	require.Error(t, n.Notify(context.Background(), msg))

	msg.Kind = Kind(9)
	require.Error(t, n.Notify(context.Background(), msg))
}
