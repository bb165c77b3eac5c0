package seq

import (
	"context"
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/go-softwarelab/common/pkg/to"
)

// TraceOption configures Trace.
type TraceOption = func(*traceOptions)

type traceOptions struct {
	level  slog.Level
	values bool
}

// WithTraceLevel sets the level trace records are logged at. The default is
// slog.LevelDebug.
func WithTraceLevel(level slog.Level) TraceOption {
	return func(o *traceOptions) {
		o.level = level
	}
}

// WithoutValues keeps element values out of trace records, logging only their
// index.
func WithoutValues() TraceOption {
	return func(o *traceOptions) {
		o.values = false
	}
}

// Trace returns s unchanged except that every element is logged when it is
// first forced, and the end of the sequence is logged once it is reached.
// Because sequences memoize, walking the result again logs nothing new. A nil
// logger logs through slog.Default().
//
// Example:
//
//	traced := seq.Trace(seq.RangeTo(3), logger, "numbers")
//	seq.ForEach(traced, func(int) {})
func Trace[T any](s Seq[T], logger *slog.Logger, label string, opts ...TraceOption) Seq[T] {
	options := to.OptionsWithDefault(traceOptions{
		level:  slog.LevelDebug,
		values: true,
	}, opts...)
	log := slogx.ChildForComponent(logger, "seq").With(slogx.String("trace", label))
	return trace(s, log, options, 0)
}

func trace[T any](s Seq[T], log *slog.Logger, options traceOptions, index int) Seq[T] {
	return Lazy(func() Seq[T] {
		ctx := context.Background()
		if s.Empty() {
			log.LogAttrs(ctx, options.level, "sequence exhausted", slogx.Number("count", index))
			return empty[T]{}
		}
		v := s.First()
		attrs := []slog.Attr{slogx.Number("index", index)}
		if options.values {
			attrs = append(attrs, slog.Any("value", v))
		}
		log.LogAttrs(ctx, options.level, "element forced", attrs...)
		return Cons(v, trace(s.Rest(), log, options, index+1))
	})
}
