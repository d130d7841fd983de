package metrics

import "github.com/prometheus/client_golang/prometheus"

// FormMetrics exposes counters/histograms for the contact form.
type FormMetrics struct {
	submissionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	dismissalsTotal    *prometheus.CounterVec
	submitLatency      prometheus.Histogram
}

func NewFormMetrics(reg prometheus.Registerer) *FormMetrics {
	m := &FormMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studyitaly",
			Subsystem: "contact_form",
			Name:      "submissions_total",
			Help:      "Contact form submit attempts by outcome",
		}, []string{"outcome"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studyitaly",
			Subsystem: "contact_form",
			Name:      "validation_failures_total",
			Help:      "Fields that failed validation on submit",
		}, []string{"field"}),
		dismissalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "studyitaly",
			Subsystem: "contact_form",
			Name:      "success_dismissals_total",
			Help:      "Success notices dismissed, by reason",
		}, []string{"reason"}),
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "studyitaly",
			Subsystem: "contact_form",
			Name:      "submit_latency_seconds",
			Help:      "Time spent delivering an accepted lead",
			Buckets:   []float64{0.5, 1, 2, 2.5, 5},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.validationFailures, m.dismissalsTotal, m.submitLatency)
	return m
}

func (m *FormMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *FormMetrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

func (m *FormMetrics) ObserveDismissal(reason string) {
	if m == nil {
		return
	}
	m.dismissalsTotal.WithLabelValues(reason).Inc()
}

func (m *FormMetrics) ObserveSubmitLatency(seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.Observe(seconds)
}
