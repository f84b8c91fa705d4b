package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelOverride replaces the level check of a wrapped core.
// Entries still reach the wrapped core's writer, so the override can raise or lower verbosity.
type levelOverride struct {
	zapcore.Core

	enabler zapcore.LevelEnabler
}

// Enabled consults the override instead of the wrapped core.
func (o *levelOverride) Enabled(l zapcore.Level) bool {
	return o.enabler.Enabled(l)
}

// Level makes zapcore.LevelOf, and so Logger.Level, report the override.
func (o *levelOverride) Level() zapcore.Level {
	return zapcore.LevelOf(o.enabler)
}

//nolint:gocritic // CheckedEntry.AddCore takes the entry by value.
func (o *levelOverride) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !o.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, o)
}

//nolint:ireturn,nolintlint // zapcore.Core is the interface zap expects back.
func (o *levelOverride) With(fields []zapcore.Field) zapcore.Core {
	return &levelOverride{Core: o.Core.With(fields), enabler: o.enabler}
}

// WithLevel pins a derived logger to enabler without touching the shared default level.
// Passing a zap.AtomicLevel keeps the override adjustable at runtime.
//
//nolint:ireturn,nolintlint // zap.Option is the interface zap expects back.
func WithLevel(enabler zapcore.LevelEnabler) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &levelOverride{Core: core, enabler: enabler}
	})
}
