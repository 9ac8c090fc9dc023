package solution

import (
	"context"
	"log/slog"
)

// EventKind classifies a diagnostics Event.
type EventKind string

const (
	EventRegimeSelected    EventKind = "regime_selected"
	EventUnitConversion    EventKind = "unit_conversion"
	EventOutOfRange        EventKind = "out_of_range"
	EventMissingParameters EventKind = "missing_correlation_parameters"
	EventInvalidCharge     EventKind = "invalid_charge"
	EventMixing            EventKind = "mixing"
	EventVolume            EventKind = "volume"
)

// Event is a single diagnostic emitted while computing solution properties.
// Warning-level events mark results of degraded accuracy.
type Event struct {
	Kind          EventKind
	Level         slog.Level
	Solute        string
	Regime        Regime
	IonicStrength float64
	Message       string
	Err           error
}

// Sink receives diagnostics events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) {
	f(e)
}

type nopSink struct{}

func (nopSink) Emit(Event) {}

// NopSink discards every event. It is the default sink of a Solution.
var NopSink Sink = nopSink{}

// MultiSink fans an event out to each of its sinks in order.
type MultiSink []Sink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}

// LogSink writes events to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink returns a Sink that logs each event at its own level.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (l *LogSink) Emit(e Event) {
	attrs := []slog.Attr{slog.String("kind", string(e.Kind))}
	if e.Solute != "" {
		attrs = append(attrs, slog.String("solute", e.Solute))
	}
	if e.Kind == EventRegimeSelected || e.Kind == EventMissingParameters {
		attrs = append(attrs,
			slog.String("regime", e.Regime.String()),
			slog.Float64("ionic_strength", e.IonicStrength),
		)
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("err", e.Err))
	}
	l.logger.LogAttrs(context.Background(), e.Level, e.Message, attrs...)
}
