package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hellofresh/streamstore"
)

const namespace = "streamstore"

// Ensure that we satisfy the streamstore.Metrics interface
var _ streamstore.Metrics = &Metrics{}

// Metrics is an object for exposing prometheus metrics
type Metrics struct {
	messagesWritten      *prometheus.CounterVec
	writeConflicts       *prometheus.CounterVec
	readMessages         *prometheus.HistogramVec
	categoryReadMessages prometheus.Histogram
}

// NewMetrics instantiate and return an object of Metrics
func NewMetrics() *Metrics {
	return &Metrics{
		// messagesWritten is used to expose 'messages_written_total' metric
		messagesWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_written_total",
				Help:      "counter for number of messages appended to streams",
			},
			[]string{"category"},
		),
		// writeConflicts is used to expose 'write_conflicts_total' metric
		writeConflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "write_conflicts_total",
				Help:      "counter for number of writes rejected due to a wrong expected version",
			},
			[]string{"category"},
		),
		// readMessages is used to expose 'read_messages' metric
		readMessages: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "read_messages",
				Help:      "histogram of the number of messages returned by a stream read",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"direction"},
		),
		// categoryReadMessages is used to expose 'category_read_messages' metric
		categoryReadMessages: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "category_read_messages",
				Help:      "histogram of the number of messages returned by a category read",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

// RegisterMetrics registers the metrics with the given registry
func (m *Metrics) RegisterMetrics(registry *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		m.messagesWritten,
		m.writeConflicts,
		m.readMessages,
		m.categoryReadMessages,
	}

	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return err
		}
	}

	return nil
}

// StreamWritten counts the messages appended to a stream
func (m *Metrics) StreamWritten(streamID string, messages int) {
	labels := prometheus.Labels{"category": streamstore.Category(streamID)}
	m.messagesWritten.With(labels).Add(float64(messages))
}

// StreamWriteConflicted counts rejected writes
func (m *Metrics) StreamWriteConflicted(streamID string) {
	labels := prometheus.Labels{"category": streamstore.Category(streamID)}
	m.writeConflicts.With(labels).Inc()
}

// StreamRead observes the number of messages returned by a stream read
func (m *Metrics) StreamRead(direction streamstore.ReadDirection, messages int) {
	labels := prometheus.Labels{"direction": direction.String()}
	m.readMessages.With(labels).Observe(float64(messages))
}

// CategoryRead observes the number of messages returned by a category read
func (m *Metrics) CategoryRead(messages int) {
	m.categoryReadMessages.Observe(float64(messages))
}
