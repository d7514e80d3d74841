// Package logging assembles the structured slog loggers used across moodpick.
//
// It owns level and format plumbing, exposes attr helpers so call sites stay
// uniform, and provides a no-op logger for tests and wiring code that cannot
// fail. Prefer these constructors over hand-rolled slog setup so every
// component emits data with the same shape.
package logging
