package ui

import (
	"log/slog"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/dom"
)

const (
	errorColor   = "#ef4444"
	successColor = "#10b981"

	sendingLabel   = "Sending..."
	successMessage = "Message sent successfully!"
	failureMessage = "Sorry, there was an error sending your message. Please try again later."
)

// ContactForm validates the contact form in place and hands valid messages
// to a contact.Submitter.
type ContactForm struct {
	doc    dom.Document
	sched  dom.Scheduler
	sender contact.Submitter
	ttl    time.Duration
	log    *slog.Logger

	form    dom.Element
	inputs  map[contact.Field]dom.Element
	button  dom.Element
	sending bool

	bannerTimer dom.Timer
}

func NewContactForm(env dom.Env, cfg Config, sender contact.Submitter) *ContactForm {
	f := &ContactForm{
		doc:    env.Document,
		sched:  env.Scheduler,
		sender: sender,
		ttl:    cfg.BannerTTL,
		log:    cfg.Logger,
		form:   env.Document.QuerySelector(".contact-form"),
	}
	if f.form == nil {
		f.log.Debug("contact form missing")
		return f
	}
	f.inputs = map[contact.Field]dom.Element{
		contact.FieldName:    f.form.QuerySelector("input[type=text]"),
		contact.FieldEmail:   f.form.QuerySelector("input[type=email]"),
		contact.FieldMessage: f.form.QuerySelector("textarea"),
	}
	f.button = f.form.QuerySelector("button[type=submit]")
	f.form.On("submit", f.onSubmit)
	return f
}

func (f *ContactForm) onSubmit(e dom.Event) {
	e.PreventDefault()
	if f.sending {
		return
	}

	f.clearErrors()
	msg := f.snapshot()
	if errs := contact.Validate(msg); errs != nil {
		for _, field := range errs {
			f.showError(field)
		}
		f.log.Debug("contact form rejected", "fields", len(errs))
		return
	}
	f.send(msg)
}

func (f *ContactForm) snapshot() contact.Message {
	value := func(field contact.Field) string {
		if el := f.inputs[field]; el != nil {
			return el.Value()
		}
		return ""
	}
	return contact.Message{
		Name:    value(contact.FieldName),
		Email:   value(contact.FieldEmail),
		Message: value(contact.FieldMessage),
	}
}

// clearErrors drops the error nodes and highlights left by the last attempt.
func (f *ContactForm) clearErrors() {
	for _, el := range f.form.QuerySelectorAll(".error") {
		el.Remove()
	}
	for _, input := range f.inputs {
		if input != nil {
			input.SetStyle("border-color", "")
		}
	}
}

// clearFields empties every control. Reset alone restores the markup
// defaults, which hold the last post when the page was rendered server-side.
func (f *ContactForm) clearFields() {
	f.form.Reset()
	for _, field := range contact.Fields() {
		if el := f.inputs[field]; el != nil {
			el.SetValue("")
		}
	}
}

func (f *ContactForm) showError(field contact.Field) {
	input := f.inputs[field]
	if input == nil {
		return
	}
	div := f.doc.CreateElement("div")
	div.AddClass("error")
	div.SetStyle("color", errorColor)
	div.SetStyle("font-size", "0.9rem")
	div.SetStyle("margin-top", "0.5rem")
	div.SetText(field.Problem())

	parent := input.Parent()
	if parent == nil {
		parent = f.form
	}
	parent.AppendChild(div)
	input.SetStyle("border-color", errorColor)
}

func (f *ContactForm) send(msg contact.Message) {
	f.sending = true
	var label string
	if f.button != nil {
		label = f.button.Text()
		f.button.SetText(sendingLabel)
		f.button.SetDisabled(true)
	}

	f.sender.Submit(msg, func(err error) {
		f.sending = false
		if err != nil {
			f.log.Warn("contact message not sent", "err", err)
			f.showBanner("failure-message", failureMessage, errorColor)
		} else {
			f.showBanner("success-message", successMessage, successColor)
			f.clearFields()
		}
		if f.button != nil {
			f.button.SetText(label)
			f.button.SetDisabled(false)
		}
	})
}

// showBanner replaces any banner still on screen and removes the new one
// after the configured TTL.
func (f *ContactForm) showBanner(class, text, background string) {
	if f.bannerTimer != nil {
		f.bannerTimer.Stop()
	}
	for _, el := range f.form.QuerySelectorAll(".success-message, .failure-message") {
		el.Remove()
	}

	div := f.doc.CreateElement("div")
	div.AddClass(class)
	div.SetStyle("background", background)
	div.SetStyle("color", "white")
	div.SetStyle("padding", "1rem")
	div.SetStyle("border-radius", "8px")
	div.SetStyle("margin-top", "1rem")
	div.SetStyle("text-align", "center")
	div.SetStyle("animation", "fadeInUp 0.5s ease")
	div.SetText(text)
	f.form.AppendChild(div)

	f.bannerTimer = f.sched.AfterFunc(f.ttl, div.Remove)
}
