package usecase

// ActivityRecorder receives domain counters. The metrics package provides the
// Prometheus implementation; NopRecorder is used when metrics are off.
type ActivityRecorder interface {
	RequestCreated()
	QuotationSubmitted()
	QuotationTransition(to string)
	NotificationFailed()
}

type NopRecorder struct{}

var _ ActivityRecorder = NopRecorder{}

func (NopRecorder) RequestCreated() {}
func (NopRecorder) QuotationSubmitted() {}
func (NopRecorder) QuotationTransition(string) {}
func (NopRecorder) NotificationFailed() {}
