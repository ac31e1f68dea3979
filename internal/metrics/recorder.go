package metrics

// SplitRecorder records split outcomes on the package collectors.
type SplitRecorder struct{}

// NewSplitRecorder creates a new split recorder
func NewSplitRecorder() *SplitRecorder {
	return &SplitRecorder{}
}

// RecordSplit counts a computed split and the remainder units it handed out.
func (r *SplitRecorder) RecordSplit(recipients, remainder int) {
	division := DivisionExact
	if remainder != 0 {
		division = DivisionInexact
	}
	SplitsTotal.WithLabelValues(division).Inc()
	RecipientsPerSplit.Observe(float64(recipients))

	// Negative totals leave a non-positive remainder and nobody gets an extra unit
	if remainder > 0 {
		RemainderUnitsDistributed.Add(float64(remainder))
	}
}

// RecordRejected counts a split refused for reason.
func (r *SplitRecorder) RecordRejected(reason string) {
	SplitsRejected.WithLabelValues(reason).Inc()
}
