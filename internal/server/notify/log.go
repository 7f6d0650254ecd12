package notify

import (
	"context"
	"io"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/google/uuid"
)

// LogNotifier is the development delivery: it writes the composed message to
// w and records the delivery metadata in the structured log. The token only
// ever reaches w, never the log.
type LogNotifier struct {
	from     string
	renderer *Renderer
	w        io.Writer
	logger   logging.Logger
	now      func() time.Time
}

func NewLogNotifier(from string, r *Renderer, w io.Writer, l logging.Logger) *LogNotifier {
	return &LogNotifier{
		from:     from,
		renderer: r,
		w:        w,
		logger:   l.With("module", "log_notifier"),
		now:      time.Now,
	}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	rendered, err := n.renderer.Render(msg)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	raw, err := Compose(n.from, msg.Address, rendered, id, n.now())
	if err != nil {
		return err
	}
	if _, err := n.w.Write(raw); err != nil {
		return err
	}

	n.logger.Info(ctx, "message delivered to log outbox",
		"message_id", id, "kind", msg.Kind.String(), "address", msg.Address, "subject", rendered.Subject)
	return nil
}
