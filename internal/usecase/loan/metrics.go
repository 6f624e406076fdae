package loan

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts workflow events. A nil *Metrics records nothing.
type Metrics struct {
	created     prometheus.Counter
	transitions *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "agrifin_loans_created_total",
			Help: "Loan applications accepted.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agrifin_loan_transitions_total",
			Help: "Loan status changes by target status.",
		}, []string{"status"}),
	}
	reg.MustRegister(m.created, m.transitions)
	return m
}

func (m *Metrics) loanCreated() {
	if m != nil {
		m.created.Inc()
	}
}

func (m *Metrics) transitioned(status string) {
	if m != nil {
		m.transitions.WithLabelValues(status).Inc()
	}
}
