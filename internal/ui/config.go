package ui

import (
	"log/slog"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
)

// Config tunes the page behaviors. Start from DefaultConfig. Init fills zero
// durations, the reveal options and the logger with defaults; the offsets
// are used as given, so zero is a valid setting for each of them.
type Config struct {
	// HeaderOffset is subtracted from a section's offset when scrolling to it.
	HeaderOffset float64
	// TypingDelay is how long the hero caret animation runs.
	TypingDelay time.Duration

	RevealThreshold  float64
	RevealRootMargin string

	// HideHeaderAfter is the offset below which the header always shows.
	HideHeaderAfter float64
	// ShadowAfter is the offset past which the header casts a shadow.
	ShadowAfter float64
	// ScrollDebounce delays header updates until scrolling pauses.
	ScrollDebounce time.Duration

	SubmitDelay time.Duration
	BannerTTL   time.Duration

	Logger *slog.Logger
}

// DefaultConfig returns the stock page tuning.
func DefaultConfig() Config {
	return Config{
		HeaderOffset:     80,
		TypingDelay:      3500 * time.Millisecond,
		RevealThreshold:  0.1,
		RevealRootMargin: "0px 0px -50px 0px",
		HideHeaderAfter:  100,
		ShadowAfter:      50,
		SubmitDelay:      contact.DefaultSendDelay,
		BannerTTL:        5000 * time.Millisecond,
		Logger:           slog.Default(),
	}
}

func (c *Config) defaults() {
	d := DefaultConfig()
	if c.TypingDelay <= 0 {
		c.TypingDelay = d.TypingDelay
	}
	if c.RevealThreshold <= 0 {
		c.RevealThreshold = d.RevealThreshold
	}
	if c.RevealRootMargin == "" {
		c.RevealRootMargin = d.RevealRootMargin
	}
	if c.SubmitDelay <= 0 {
		c.SubmitDelay = d.SubmitDelay
	}
	if c.BannerTTL <= 0 {
		c.BannerTTL = d.BannerTTL
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
}
