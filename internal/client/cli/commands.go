package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errUnknownCommand = errors.New("unknown command")

func (a *App) execute(ctx context.Context, cmd string) error {
	switch cmd {
	case "register":
		return a.Register(ctx)
	case "confirm":
		return a.Confirm(ctx)
	case "login":
		return a.Login(ctx)
	case "request-code":
		return a.RequestCode(ctx)
	case "forgot-password":
		return a.ForgotPassword(ctx)
	case "validate-token":
		return a.ValidateToken(ctx)
	case "reset-password":
		return a.ResetPassword(ctx)
	case "ping":
		return a.Ping(ctx)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

// promptPassword asks for a password twice and returns both answers.
func (a *App) promptPassword(confirm bool) (string, string, error) {
	pw, err := getPassword("Enter password", a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)

	if !confirm {
		return string(pw), "", nil
	}

	again, err := getPassword("Repeat password", a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(again)

	return string(pw), string(again), nil
}

func (a *App) say(msg string) {
	fmt.Fprintln(a.out, msg)
}

// Register prompts for e-mail, name and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	name, err := a.prompt("Enter name")
	if err != nil {
		return err
	}
	pw, again, err := a.promptPassword(true)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.client.CreateAccount(ctx, email, name, pw, again)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

// Confirm redeems the token from a confirmation e-mail.
func (a *App) Confirm(ctx context.Context) error {
	token, err := a.prompt("Enter confirmation token")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.client.ConfirmAccount(ctx, token)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

// Login checks the credentials and remembers the account for the prompt.
func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	pw, _, err := a.promptPassword(false)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.Login(ctx, email, pw)
	if err != nil {
		return err
	}
	a.userName = resp.Email
	a.say(fmt.Sprintf("%s as %s (%s)", resp.Message, resp.Name, resp.AccountID))
	return nil
}

func (a *App) RequestCode(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.client.RequestCode(ctx, email)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

func (a *App) ValidateToken(ctx context.Context) error {
	token, err := a.prompt("Enter reset token")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.client.ValidateToken(ctx, token)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

// ResetPassword redeems a reset token for a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := a.prompt("Enter reset token")
	if err != nil {
		return err
	}
	pw, again, err := a.promptPassword(true)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.client.UpdatePassword(ctx, token, pw, again)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	a.say("Server is up")
	return nil
}
