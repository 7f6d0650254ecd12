package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

// Rendered is a message ready to be put on the wire.
type Rendered struct {
	Subject string
	Text    string
	HTML    string
}

type templateSet struct {
	subject string
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

type templateData struct {
	Name    string
	Token   string
	Link    string
	Minutes int
}

const confirmText = `Hello {{.Name}},

please use this code to confirm your account: {{.Token}}
This code expires in {{.Minutes}} minutes.
{{if .Link}}
Confirm your account at {{.Link}}
{{end}}
Thank you for using AuthKeeper
`

const confirmHTML = `<p>Hello {{.Name}}, please use this code to confirm your account <b>{{.Token}}</b>, this code expires in {{.Minutes}} minutes.</p>
{{if .Link}}<p>Click on this link:</p>
<a href="{{.Link}}">Confirm your account</a>
{{end}}<p>Thank you for using AuthKeeper</p>
`

const resetText = `Hello {{.Name}},

you have requested to reset your password.
{{if .Link}}Open {{.Link}} and type the code: {{.Token}}{{else}}Your code: {{.Token}}{{end}}
This code expires in {{.Minutes}} minutes.
`

const resetHTML = `<p>Hello {{.Name}}, you have requested to reset your password.</p>
{{if .Link}}<p>Click on this link:</p>
<a href="{{.Link}}">Reset password</a>
{{end}}<p>and type the code: <b>{{.Token}}</b></p>
<p>This code expires in {{.Minutes}} minutes.</p>
`

// Renderer turns a Message into subject, plain text and HTML bodies.
type Renderer struct {
	frontendURL string
	minutes     int
	templates   map[Kind]templateSet
}

// NewRenderer parses the built-in templates. frontendURL, when set, is used
// to build the links in the message body; validity is the token lifetime
// quoted to the reader.
func NewRenderer(frontendURL string, validity time.Duration) (*Renderer, error) {
	r := &Renderer{
		frontendURL: strings.TrimRight(frontendURL, "/"),
		minutes:     int(validity.Round(time.Minute) / time.Minute),
		templates:   make(map[Kind]templateSet),
	}
	if r.minutes < 1 {
		r.minutes = 1
	}

	sets := []struct {
		kind    Kind
		subject string
		text    string
		html    string
	}{
		{KindConfirmAccount, "Account confirmation", confirmText, confirmHTML},
		{KindPasswordReset, "Reset your password", resetText, resetHTML},
	}
	for _, s := range sets {
		tt, err := texttemplate.New(s.kind.String()).Parse(s.text)
		if err != nil {
			return nil, fmt.Errorf("parse %s text template: %w", s.kind, err)
		}
		ht, err := htmltemplate.New(s.kind.String()).Parse(s.html)
		if err != nil {
			return nil, fmt.Errorf("parse %s html template: %w", s.kind, err)
		}
		r.templates[s.kind] = templateSet{subject: s.subject, text: tt, html: ht}
	}
	return r, nil
}

func (r *Renderer) link(k Kind) string {
	if r.frontendURL == "" {
		return ""
	}
	switch k {
	case KindConfirmAccount:
		return r.frontendURL + "/auth/confirm-account"
	case KindPasswordReset:
		return r.frontendURL + "/auth/new-password"
	}
	return ""
}

func (r *Renderer) Render(msg Message) (*Rendered, error) {
	set, ok := r.templates[msg.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownTemplate, msg.Kind)
	}

	data := templateData{
		Name:    msg.Payload.Name,
		Token:   msg.Payload.Token,
		Link:    r.link(msg.Kind),
		Minutes: r.minutes,
	}

	var text, html bytes.Buffer
	if err := set.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	if err := set.html.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	return &Rendered{Subject: set.subject, Text: text.String(), HTML: html.String()}, nil
}
