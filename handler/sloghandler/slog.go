package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/flatlog/core"
	"github.com/philipp01105/flatlog/logger"
)

// CategoryKey is the attribute key that, when present, becomes the
// category of the emitted line instead of a key=value pair.
const CategoryKey = "category"

// SlogHandler is an adapter that implements slog.Handler on top of a
// flatlog Logger. Attributes are appended to the message as key=value
// pairs; an attribute holding an error becomes the line's exception.
type SlogHandler struct {
	logger   *logger.Logger
	category string
	attrs    []core.Field
	err      error
	group    string
}

// NewSlogHandler creates a new slog.Handler adapter writing through l.
// category is used for records that carry no CategoryKey attribute.
func NewSlogHandler(l *logger.Logger, category string) *SlogHandler {
	return &SlogHandler{
		logger:   l,
		category: category,
	}
}

// Enabled reports whether the logger's threshold admits the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Level().Enabled(slogLevelToCore(level))
}

// Handle emits record through the logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	category := s.category
	err := s.err

	fields := make([]core.Field, len(s.attrs), len(s.attrs)+record.NumAttrs())
	copy(fields, s.attrs)

	record.Attrs(func(a slog.Attr) bool {
		fields = s.collect(fields, s.group, a, &category, &err)
		return true
	})

	level := slogLevelToCore(record.Level)
	s.logger.Log(level, level.String(), category, core.AppendFields(record.Message, fields), err, false)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := s.clone()
	for _, a := range attrs {
		clone.attrs = clone.collect(clone.attrs, clone.group, a, &clone.category, &clone.err)
	}
	return clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := s.clone()
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return clone
}

func (s *SlogHandler) clone() *SlogHandler {
	attrs := make([]core.Field, len(s.attrs))
	copy(attrs, s.attrs)
	return &SlogHandler{
		logger:   s.logger,
		category: s.category,
		attrs:    attrs,
		err:      s.err,
		group:    s.group,
	}
}

// collect flattens a into fields, lifting the category and the first
// error value out of the attribute list.
func (s *SlogHandler) collect(fields []core.Field, group string, a slog.Attr, category *string, err *error) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			// Inline groups (empty key) keep the enclosing prefix.
			prefix := key
			if a.Key == "" {
				prefix = group
			}
			fields = s.collect(fields, prefix, ga, category, err)
		}
		return fields
	case slog.KindString:
		if group == "" && a.Key == CategoryKey {
			*category = a.Value.String()
			return fields
		}
	case slog.KindAny:
		if e, ok := a.Value.Any().(error); ok && *err == nil {
			*err = e
			return fields
		}
	}

	return append(fields, slogAttrToField(key, a.Value))
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.SevereLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.FineLevel
	}
}

// slogAttrToField converts a resolved slog.Value to a core.Field.
func slogAttrToField(key string, v slog.Value) core.Field {
	switch v.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Type: core.StringType, Str: v.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: v.Int64()}
	case slog.KindUint64:
		return core.Field{Key: key, Type: core.Uint64Type, Int64: int64(v.Uint64())}
	case slog.KindFloat64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: v.Float64()}
	case slog.KindBool:
		val := int64(0)
		if v.Bool() {
			val = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: val}
	case slog.KindTime:
		return core.Field{Key: key, Type: core.TimeType, Int64: v.Time().UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(v.Duration())}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: v.Any()}
	}
}
