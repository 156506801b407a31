package publishers

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anggasct/junction"
)

// MetricsPublisher counts accepted changes in a Prometheus counter vector
// labeled by direction and color
type MetricsPublisher struct {
	changes *prometheus.CounterVec
}

// NewMetricsPublisher creates a metrics publisher and registers its
// collector with the given registerer. A nil registerer skips registration,
// which is useful in tests.
func NewMetricsPublisher(reg prometheus.Registerer) (*MetricsPublisher, error) {
	changes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "junction",
		Name:      "light_changes_total",
		Help:      "Accepted light changes by direction and color.",
	}, []string{"direction", "color"})

	if reg != nil {
		if err := reg.Register(changes); err != nil {
			return nil, err
		}
	}

	return &MetricsPublisher{changes: changes}, nil
}

// Publish implements junction.EventPublisher
func (p *MetricsPublisher) Publish(change junction.StateChange) {
	p.changes.WithLabelValues(change.Direction.String(), change.Color.String()).Inc()
}
