package metrics

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"solution_calc/solution"
)

// Metrics counts activity correlation choices and degraded-accuracy warnings.
// It implements solution.Sink.
type Metrics struct {
	RegimeSelected *prometheus.CounterVec
	Warnings       *prometheus.CounterVec
	IonicStrength  prometheus.Histogram
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegimeSelected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "solution_calc_activity_regime_total",
			Help: "Activity coefficients computed, by correlation regime",
		}, []string{"regime"}),
		Warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "solution_calc_warnings_total",
			Help: "Diagnostics at warning level or above, by event kind",
		}, []string{"kind"}),
		IonicStrength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "solution_calc_ionic_strength",
			Help:    "Ionic strength in mol/L at which activity coefficients were evaluated",
			Buckets: []float64{0.005, 0.1, 0.5, 1, 2, 4, 6},
		}),
	}
}

// Emit records a diagnostics event.
func (m *Metrics) Emit(e solution.Event) {
	switch e.Kind {
	case solution.EventRegimeSelected:
		m.RegimeSelected.WithLabelValues(e.Regime.String()).Inc()
		m.IonicStrength.Observe(e.IonicStrength)
	case solution.EventMissingParameters:
		if e.Regime == solution.RegimeIdealFallback {
			m.RegimeSelected.WithLabelValues(e.Regime.String()).Inc()
		}
	}
	if e.Level >= slog.LevelWarn {
		m.Warnings.WithLabelValues(string(e.Kind)).Inc()
	}
}
