// Package notify delivers account lifecycle messages (confirmation codes and
// password reset codes) to account holders. Delivery is best effort: callers
// hand a Message to a Notifier after the state change it announces has been
// committed.
package notify

import "context"

// Kind selects the message template.
type Kind int

const (
	KindConfirmAccount Kind = iota + 1
	KindPasswordReset
)

func (k Kind) String() string {
	switch k {
	case KindConfirmAccount:
		return "confirm_account"
	case KindPasswordReset:
		return "password_reset"
	default:
		return "unknown"
	}
}

// Payload is the data a template needs.
type Payload struct {
	Name  string
	Token string
}

// Message addresses a Payload to an account holder.
type Message struct {
	Address string
	Kind    Kind
	Payload Payload
}

// Notifier delivers a single message.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}
