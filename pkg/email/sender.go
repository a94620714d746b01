package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"sync"
)

var (
	ErrEmptyRecipient   = errors.New("empty recipient")
	ErrEmptyContent     = errors.New("empty subject or body")
	ErrInvalidRecipient = errors.New("invalid recipient email")
)

type SendEmailInput struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(input SendEmailInput) error
}

// Templates parses HTML templates from dir on first use and keeps them.
type Templates struct {
	dir string

	mu     sync.RWMutex
	parsed map[string]*template.Template
}

func NewTemplates(dir string) *Templates {
	return &Templates{dir: dir, parsed: make(map[string]*template.Template)}
}

func (t *Templates) get(name string) (*template.Template, error) {
	t.mu.RLock()
	tmpl, ok := t.parsed[name]
	t.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := template.ParseFiles(filepath.Join(t.dir, name))
	if err != nil {
		return nil, fmt.Errorf("parse template %s failed: %w", name, err)
	}

	t.mu.Lock()
	t.parsed[name] = tmpl
	t.mu.Unlock()

	return tmpl, nil
}

// Render fills Body from the named template.
func (e *SendEmailInput) Render(templates *Templates, name string, data interface{}) error {
	tmpl, err := templates.get(name)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err = tmpl.Execute(buf, data); err != nil {
		return fmt.Errorf("email data injection failed: %w", err)
	}

	e.Body = buf.String()

	return nil
}

func (e *SendEmailInput) Validate() error {
	switch {
	case e.To == "":
		return ErrEmptyRecipient
	case e.Subject == "" || e.Body == "":
		return ErrEmptyContent
	case !IsEmailValid(e.To):
		return ErrInvalidRecipient
	}
	return nil
}
