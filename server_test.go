package main

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/dom/htmldom"
	"github.com/Zachkp/portfolio/internal/ui"
)

type fakeMailer struct {
	sent []contact.Message
	err  error
}

func (f *fakeMailer) Send(m contact.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func testRouter(t *testing.T, mailer Mailer) http.Handler {
	t.Helper()
	cfg := DefaultConfig()
	cfg.GinMode = "test"
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newRouter(cfg, log, mailer)
}

func postContact(h http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func getPage(t *testing.T, h http.Handler) *htmldom.Document {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /: status %d", w.Code)
	}
	doc, err := htmldom.Parse(w.Body)
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	return doc
}

func TestHealthz(t *testing.T) {
	h := testRouter(t, &fakeMailer{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestHomeSatisfiesPageContract(t *testing.T) {
	doc := getPage(t, testRouter(t, &fakeMailer{}))

	for _, sel := range []string{
		".header", ".navbar", ".nav-menu", ".hamburger .bar", ".typing-text",
		"#about", ".contact-form", ".contact-form input[type=text]",
		".contact-form input[type=email]", ".contact-form textarea",
		".contact-form button[type=submit]",
	} {
		if doc.QuerySelector(sel) == nil {
			t.Errorf("page lacks %s", sel)
		}
	}
	bars := doc.FindAll(".skill-progress")
	if len(bars) != len(Skills) {
		t.Fatalf("skill bars: got %d, want %d", len(bars), len(Skills))
	}
	for i, b := range bars {
		if b.Attr("data-width") != Skills[i].Width {
			t.Errorf("bar %d data-width: %q", i, b.Attr("data-width"))
		}
	}
	for _, link := range doc.FindAll(".nav-link") {
		id := strings.TrimPrefix(link.Attr("href"), "#")
		if doc.GetElementByID(id) == nil {
			t.Errorf("nav link %q has no target section", link.Attr("href"))
		}
	}
}

func TestRenderedPageBehaviors(t *testing.T) {
	doc := getPage(t, testRouter(t, &fakeMailer{}))
	cfg := ui.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	ui.Init(doc.Env(), cfg, nil)

	if err := doc.SetOffsetTop("#projects", 1200); err != nil {
		t.Fatal(err)
	}
	doc.Click(doc.Find(`a[href="#projects"]`))
	scrolls := doc.Window().Scrolls()
	if len(scrolls) != 1 || scrolls[0].Top != 1120 {
		t.Errorf("scrolls: %+v", scrolls)
	}

	doc.Submit(doc.Find(".contact-form"))
	if n := len(doc.FindAll(".contact-form .error")); n != 3 {
		t.Errorf("errors on empty submit: got %d, want 3", n)
	}
}

func TestContactValidationFallback(t *testing.T) {
	mailer := &fakeMailer{}
	h := testRouter(t, mailer)

	w := postContact(h, url.Values{"name": {"Ada"}, "email": {"ada@example"}, "message": {""}})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	doc, err := htmldom.Parse(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	for _, el := range doc.FindAll(".contact-form .error") {
		texts = append(texts, el.Text())
	}
	if len(texts) != 2 || texts[0] != "Please enter a valid email" || texts[1] != "Please enter your message" {
		t.Errorf("errors: %v", texts)
	}
	if v := doc.Find("input[type=text]").Value(); v != "Ada" {
		t.Errorf("name not kept: %q", v)
	}
	if len(mailer.sent) != 0 {
		t.Error("invalid message was mailed")
	}
}

func TestRejectedPostThenSendClearsFields(t *testing.T) {
	h := testRouter(t, &fakeMailer{})
	w := postContact(h, url.Values{"name": {"Ada"}, "email": {"bad"}, "message": {"Hi"}})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	doc, err := htmldom.Parse(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	cfg := ui.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	ui.Init(doc.Env(), cfg, nil)

	name, email, message := doc.Find("input[type=text]"), doc.Find("input[type=email]"), doc.Find("textarea")
	name.SetValue("Bob")
	email.SetValue("bob@example.com")
	message.SetValue("Hello")
	doc.Submit(doc.Find(".contact-form"))
	doc.Clock().Advance(contact.DefaultSendDelay)

	if doc.Find(".success-message") == nil {
		t.Fatal("success banner missing")
	}
	if name.Value() != "" || email.Value() != "" || message.Value() != "" {
		t.Errorf("fields after send: name=%q email=%q message=%q", name.Value(), email.Value(), message.Value())
	}
}

func TestContactSendsMail(t *testing.T) {
	mailer := &fakeMailer{}
	h := testRouter(t, mailer)

	w := postContact(h, url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].Email != "ada@example.com" {
		t.Fatalf("sent: %+v", mailer.sent)
	}
	doc, err := htmldom.Parse(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if el := doc.Find(".success-message"); el == nil || el.Text() != mailSentMessage {
		t.Error("success banner missing")
	}
	if v := doc.Find("input[type=email]").Value(); v != "" {
		t.Errorf("form not cleared: %q", v)
	}
}

func TestContactMailFailure(t *testing.T) {
	h := testRouter(t, &fakeMailer{err: errors.New("relay down")})

	w := postContact(h, url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}})

	doc, err := htmldom.Parse(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if el := doc.Find(".failure-message"); el == nil || el.Text() != mailFailedMessage {
		t.Error("failure banner missing")
	}
	if v := doc.Find("textarea").Value(); v != "Hello" {
		t.Errorf("message not kept: %q", v)
	}
}
