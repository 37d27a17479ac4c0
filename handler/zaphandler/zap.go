package zaphandler

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/flatlog/core"
	"github.com/philipp01105/flatlog/logger"
)

// Core implements zapcore.Core on top of a flatlog Logger, letting a
// *zap.Logger print flat console and file lines.
type Core struct {
	logger   *logger.Logger
	category string
	fields   []zapcore.Field
}

// NewCore creates a zapcore.Core writing through l. category is used
// for entries from an unnamed zap logger; named loggers use their name.
func NewCore(l *logger.Logger, category string) *Core {
	return &Core{
		logger:   l,
		category: category,
	}
}

// Enabled reports whether the logger's threshold admits lvl.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.logger.Level().Enabled(zapLevelToCore(lvl))
}

// With returns a Core that adds fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &Core{
		logger:   c.logger,
		category: c.category,
		fields:   merged,
	}
}

// Check adds c to ce when the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write emits ent through the logger. Fields become key=value pairs
// after the message, except the first error field, which is rendered as
// the line's exception.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var err error
	out := make([]core.Field, 0, len(c.fields)+len(fields))

	for _, group := range [2][]zapcore.Field{c.fields, fields} {
		for _, f := range group {
			if f.Type == zapcore.ErrorType && err == nil {
				if e, ok := f.Interface.(error); ok {
					err = e
					continue
				}
			}
			if cf, ok := zapFieldToCore(f); ok {
				out = append(out, cf)
			}
		}
	}

	category := c.category
	if ent.LoggerName != "" {
		category = ent.LoggerName
	}

	level := zapLevelToCore(ent.Level)
	c.logger.Log(level, level.String(), category, core.AppendFields(ent.Message, out), err, false)
	return nil
}

// Sync is a no-op; the logger flushes after every line.
func (c *Core) Sync() error {
	return nil
}

// zapFieldToCore encodes f on its own so field order is preserved.
func zapFieldToCore(f zapcore.Field) (core.Field, bool) {
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)

	v, ok := enc.Fields[f.Key]
	if !ok {
		return core.Field{}, false
	}
	if s, isString := v.(string); isString {
		return core.Field{Key: f.Key, Type: core.StringType, Str: s}, true
	}
	return core.Field{Key: f.Key, Type: core.AnyType, Any: v}, true
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.DPanicLevel:
		return core.SevereLevel
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl >= zapcore.WarnLevel:
		return core.WarnLevel
	case lvl >= zapcore.InfoLevel:
		return core.InfoLevel
	case lvl >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.FineLevel
	}
}
