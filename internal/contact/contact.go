// Package contact holds the contact-form rules shared by the page behaviors
// and the site server.
package contact

import (
	"regexp"
	"strings"
)

// Message is a contact-form snapshot.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Field identifies a form control.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

var fieldNames = [...]string{"name", "email", "message"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Problem is the user-facing text shown when the field fails validation.
func (f Field) Problem() string {
	switch f {
	case FieldName:
		return "Please enter your name"
	case FieldEmail:
		return "Please enter a valid email"
	case FieldMessage:
		return "Please enter your message"
	}
	return ""
}

// Fields lists every field in form order.
func Fields() []Field { return []Field{FieldName, FieldEmail, FieldMessage} }

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an address. s is matched as
// given, so surrounding whitespace makes it invalid.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// FieldErrors is the set of fields that failed validation, in form order.
type FieldErrors []Field

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, f := range fe {
		msgs = append(msgs, f.String()+": "+f.Problem())
	}
	return "invalid contact message: " + strings.Join(msgs, "; ")
}

// Has reports whether f failed.
func (fe FieldErrors) Has(f Field) bool {
	for _, v := range fe {
		if v == f {
			return true
		}
	}
	return false
}

// Validate checks every field independently and returns all failures, or nil.
func Validate(m Message) FieldErrors {
	var fe FieldErrors
	if strings.TrimSpace(m.Name) == "" {
		fe = append(fe, FieldName)
	}
	if strings.TrimSpace(m.Email) == "" || !IsValidEmail(m.Email) {
		fe = append(fe, FieldEmail)
	}
	if strings.TrimSpace(m.Message) == "" {
		fe = append(fe, FieldMessage)
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}
