package api

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

func stringEquals(other string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != other {
			return errors.New("the passwords are different")
		}
		return nil
	}
}

// maxBytes counts bytes, not runes, because the hash input is the raw bytes.
func maxBytes(limit int, err error) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > limit {
			return err
		}
		return nil
	}
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

var (
	emailRules    = []validation.Rule{validation.Required.Error("e-mail is not valid"), is.Email.Error("e-mail is not valid")}
	passwordRules = []validation.Rule{
		validation.Required,
		validation.Length(common.MinPasswordLength, 0).Error("password is too short, minimum 8 characters"),
		validation.By(maxBytes(common.MaxPasswordBytes, common.ErrPasswordTooLong)),
	}
	tokenRules    = []validation.Rule{validation.Required.Error("token cannot be empty")}
)

func (r CreateAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(notBlank)),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.PasswordConfirmation, validation.By(stringEquals(r.Password))),
		validation.Field(&r.Email, emailRules...),
	)
}

func (r ConfirmAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, tokenRules...),
	)
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Password, validation.Required.Error("password cannot be empty")),
	)
}

func (r RequestCodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
	)
}

func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules...),
	)
}

func (r ValidateTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, tokenRules...),
	)
}

func (r UpdatePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, tokenRules...),
		validation.Field(&r.Password, passwordRules...),
		validation.Field(&r.PasswordConfirmation, validation.By(stringEquals(r.Password))),
	)
}
