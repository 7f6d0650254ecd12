package notify

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// objectPutter is the part of *s3.Client the mail drop needs.
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// MailDropConfig locates the S3-compatible bucket used as outbox.
type MailDropConfig struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Bucket       string
	From         string
}

// MailDropNotifier stores every message as an .eml object in a bucket for
// pickup by a mail relay.
type MailDropNotifier struct {
	client   objectPutter
	bucket   string
	from     string
	renderer *Renderer
	logger   logging.Logger
	now      func() time.Time
}

func NewMailDropNotifier(ctx context.Context, c MailDropConfig, r *Renderer, l logging.Logger) (*MailDropNotifier, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKey,
			c.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &MailDropNotifier{
		client:   client,
		bucket:   c.Bucket,
		from:     c.From,
		renderer: r,
		logger:   l.With("module", "maildrop_notifier"),
		now:      time.Now,
	}, nil
}

// OutboxKey returns the object key of a message created at t.
func OutboxKey(t time.Time, id string) string {
	return fmt.Sprintf("outbox/%04d/%02d/%02d/%s.eml", t.Year(), t.Month(), t.Day(), id)
}

func (n *MailDropNotifier) Notify(ctx context.Context, msg Message) error {
	rendered, err := n.renderer.Render(msg)
	if err != nil {
		return err
	}

	now := n.now().UTC()
	id := uuid.NewString()
	raw, err := Compose(n.from, msg.Address, rendered, id, now)
	if err != nil {
		return err
	}

	key := OutboxKey(now, id)
	_, err = n.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(n.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(raw),
		ContentLength: aws.Int64(int64(len(raw))),
		ContentType:   aws.String("message/rfc822"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}

	n.logger.Info(ctx, "message dropped to outbox",
		"key", key, "kind", msg.Kind.String(), "address", msg.Address)
	return nil
}
