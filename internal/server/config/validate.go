package config

import (
	"errors"
	"net/mail"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

func mailAddress(value interface{}) error {
	s, _ := value.(string)
	if _, err := mail.ParseAddress(s); err != nil {
		return errors.New("must be a valid mail address")
	}
	return nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var s3Rules []validation.Rule
	if c.Notifier == NotifierS3 {
		s3Rules = append(s3Rules, validation.Required)
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.EndpointAddrGRPC, validation.Required),
		validation.Field(&c.DatabaseDSN, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.TokenValidityDuration, validation.Required, validation.Min(time.Minute)),
		validation.Field(&c.TokenBytes, validation.Required, validation.Min(8)),
		validation.Field(&c.BcryptCost, validation.Required, validation.Min(4), validation.Max(31)),
		validation.Field(&c.CleanupInterval, validation.Min(time.Duration(0))),
		validation.Field(&c.NotifyTimeout, validation.Required),
		validation.Field(&c.Notifier, validation.Required, validation.In(NotifierLog, NotifierS3)),
		validation.Field(&c.MailFrom, validation.Required, validation.By(mailAddress)),
		validation.Field(&c.FrontendURL, is.URL),
		validation.Field(&c.S3Bucket, s3Rules...),
		validation.Field(&c.S3Region, s3Rules...),
	)
}
