package ui

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/dom/htmldom"
)

func loadPage(t *testing.T) *htmldom.Document {
	t.Helper()
	f, err := os.Open("testdata/page.html")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()
	doc, err := htmldom.Parse(f)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func setup(t *testing.T, cfg Config, sub contact.Submitter) (*htmldom.Document, *Page) {
	t.Helper()
	doc := loadPage(t)
	return doc, Init(doc.Env(), cfg, sub)
}

func TestNavigationScrollsBelowHeader(t *testing.T) {
	doc, _ := setup(t, quietConfig(), nil)
	if err := doc.SetOffsetTop("#about", 600); err != nil {
		t.Fatal(err)
	}
	doc.Click(doc.Find(".hamburger"))
	if !doc.Find(".nav-menu").HasClass("active") {
		t.Fatal("menu did not open")
	}

	ev := doc.Click(doc.Find(`a[href="#about"]`))

	if !ev.DefaultPrevented() {
		t.Error("default navigation not prevented")
	}
	scrolls := doc.Window().Scrolls()
	if len(scrolls) != 1 {
		t.Fatalf("scrolls: got %d, want 1", len(scrolls))
	}
	if scrolls[0].Top != 520 || !scrolls[0].Smooth {
		t.Errorf("scroll: got %+v, want smooth to 520", scrolls[0])
	}
	if doc.Find(".nav-menu").HasClass("active") || doc.Find(".hamburger").HasClass("active") {
		t.Error("menu left open after navigating")
	}
}

func TestNavigationWithoutHeaderOffset(t *testing.T) {
	cfg := quietConfig()
	cfg.HeaderOffset = 0
	doc, _ := setup(t, cfg, nil)
	if err := doc.SetOffsetTop("#about", 600); err != nil {
		t.Fatal(err)
	}

	doc.Click(doc.Find(`a[href="#about"]`))

	scrolls := doc.Window().Scrolls()
	if len(scrolls) != 1 || scrolls[0].Top != 600 {
		t.Errorf("scrolls: got %+v, want one to 600", scrolls)
	}
}

func TestNavigationMissingTarget(t *testing.T) {
	doc, p := setup(t, quietConfig(), nil)

	ev := doc.Click(doc.Find(`a[href="#missing"]`))

	if !ev.DefaultPrevented() {
		t.Error("default navigation not prevented")
	}
	if n := len(doc.Window().Scrolls()); n != 0 {
		t.Errorf("scrolls: got %d, want 0", n)
	}
	if p.Nav.ScrollTo("missing") {
		t.Error("ScrollTo reported success for a missing section")
	}
}

func TestNavigationLeavesExternalLinks(t *testing.T) {
	doc, _ := setup(t, quietConfig(), nil)
	ev := doc.Click(doc.Find(`a[href="/resume.pdf"]`))
	if ev.DefaultPrevented() {
		t.Error("external link was intercepted")
	}
}

func TestTypingStopsAfterDelay(t *testing.T) {
	doc, _ := setup(t, quietConfig(), nil)
	el := doc.Find(".typing-text")

	doc.Clock().Advance(3499 * time.Millisecond)
	if el.Style("animation") != "" {
		t.Fatal("animation cleared too early")
	}
	doc.Clock().Advance(time.Millisecond)
	if el.Style("animation") != "none" || el.Style("border-right") != "none" {
		t.Errorf("styles after delay: animation=%q border-right=%q", el.Style("animation"), el.Style("border-right"))
	}
}

func TestInitWithoutElements(t *testing.T) {
	doc, err := htmldom.ParseString("<html><head></head><body><p>empty</p></body></html>")
	if err != nil {
		t.Fatal(err)
	}
	p := Init(doc.Env(), quietConfig(), nil)

	doc.Window().Scroll(500)
	doc.Click(doc.Find("p"))
	doc.Clock().Advance(10 * time.Second)
	p.Skills.Animate()
	p.Menu.Toggle()
	p.Menu.Close()
	p.Header.Update()

	if doc.Clock().Pending() != 0 {
		t.Errorf("pending timers: %d", doc.Clock().Pending())
	}
}

func TestInjectStylesOnce(t *testing.T) {
	doc, _ := setup(t, quietConfig(), nil)
	InjectStyles(doc)

	styles := doc.FindAll("head style")
	if len(styles) != 1 {
		t.Fatalf("style blocks: got %d, want 1", len(styles))
	}
	if styles[0].ID() != injectedStyleID {
		t.Errorf("style id: %q", styles[0].ID())
	}
}

func TestBodyMarkedLoaded(t *testing.T) {
	doc, _ := setup(t, quietConfig(), nil)
	if doc.Find("body").HasClass("loaded") {
		t.Fatal("loaded before the load event")
	}
	doc.Window().Load()
	if !doc.Find("body").HasClass("loaded") {
		t.Fatal("body not marked loaded")
	}
}

func TestDebounce(t *testing.T) {
	clock := htmldom.NewClock()
	calls := 0
	fn := Debounce(clock, 100*time.Millisecond, func() { calls++ })

	fn()
	clock.Advance(50 * time.Millisecond)
	fn()
	clock.Advance(50 * time.Millisecond)
	fn()
	if calls != 0 {
		t.Fatalf("fired during burst: %d", calls)
	}
	clock.Advance(100 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("calls: got %d, want 1", calls)
	}
}
