package facturo

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/xraph/facturo/hook"
)

// Option configures a Ledger at construction time.
type Option func(*Ledger)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithClock overrides the time source used for timestamps and for the year
// component of document numbers. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithHook registers an observer. Hooks fire synchronously after each
// committed mutation; a failing hook is logged, never propagated.
func WithHook(h hook.Hook) Option {
	return func(l *Ledger) {
		l.pendingHooks = append(l.pendingHooks, h)
	}
}

// WithLocale sets the display locale for monetary formatting.
// Defaults to French-style grouping.
func WithLocale(tag language.Tag) Option {
	return func(l *Ledger) {
		l.locale = tag
	}
}

// WithCurrency sets the currency label appended to monetary amounts.
// Defaults to "DA".
func WithCurrency(label string) Option {
	return func(l *Ledger) {
		l.currency = label
	}
}
