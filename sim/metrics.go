package sim

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records worker progress. A nil *Metrics records nothing.
type Metrics struct {
	generations  prometheus.Counter
	population   prometheus.Gauge
	stepDuration prometheus.Histogram
}

// NewMetrics registers the worker metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		generations: factory.NewCounter(prometheus.CounterOpts{
			Name: "life_generations_total",
			Help: "Generations committed by the simulation worker",
		}),
		population: factory.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Living cells after the latest generation",
		}),
		stepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "life_step_duration_seconds",
			Help:    "Time spent computing and committing one generation",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
	}
}

func (m *Metrics) observe(population int, took time.Duration) {
	if m == nil {
		return
	}
	m.generations.Inc()
	m.population.Set(float64(population))
	m.stepDuration.Observe(took.Seconds())
}
