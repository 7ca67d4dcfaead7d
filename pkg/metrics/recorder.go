package metrics

// Recorder бизнес-метрики планировщика.
// Методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Recorder struct {
	m *Metrics
}

// NewRecorder оборачивает Metrics; m может быть nil
func NewRecorder(m *Metrics) *Recorder {
	return &Recorder{m: m}
}

func (r *Recorder) SlotsOffered(purpose string, count int) {
	if r == nil || r.m == nil {
		return
	}
	r.m.SlotsOffered.WithLabelValues(purpose).Observe(float64(count))
}

func (r *Recorder) BookingsCreated(serviceID string, count int) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookingsCreated.WithLabelValues(serviceID).Add(float64(count))
}

func (r *Recorder) SeriesFailed(serviceID string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.SeriesFailures.WithLabelValues(serviceID).Inc()
}

func (r *Recorder) EvaluationCreated(evaluationType string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.EvaluationsCreated.WithLabelValues(evaluationType).Inc()
}

func (r *Recorder) SubmissionRejected(reason string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.SubmissionRejected.WithLabelValues(reason).Inc()
}
