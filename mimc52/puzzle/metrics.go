package puzzle

import "github.com/prometheus/client_golang/prometheus"

const metricNamespace = "mimc52"

// Check and pass results used as label values.
const (
	ResultOK       = "ok"
	ResultForged   = "forged"
	ResultExpired  = "expired"
	ResultTooEasy  = "too_easy"
	ResultBadProof = "bad_proof"
	ResultReplayed = "replayed"
	ResultError    = "error"

	PassIssued   = "issued"
	PassAccepted = "accepted"
	PassInvalid  = "invalid"
	PassExpired  = "expired"
)

// Metrics counts puzzle traffic. A nil *Metrics records nothing.
type Metrics struct {
	issued prometheus.Counter
	checks *prometheus.CounterVec
	passes *prometheus.CounterVec
}

// NewMetrics creates the puzzle counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		issued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "puzzles_issued_total",
			Help:      "Puzzles handed out to connecting peers.",
		}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "puzzle_checks_total",
			Help:      "Puzzle solutions checked, by result.",
		}, []string{"result"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "passes_total",
			Help:      "Reconnect passes issued and presented, by result.",
		}, []string{"result"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.issued, m.checks, m.passes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) puzzleIssued() {
	if m == nil {
		return
	}
	m.issued.Inc()
}

func (m *Metrics) checked(result string) {
	if m == nil {
		return
	}
	m.checks.WithLabelValues(result).Inc()
}

func (m *Metrics) pass(result string) {
	if m == nil {
		return
	}
	m.passes.WithLabelValues(result).Inc()
}
