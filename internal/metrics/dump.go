package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// splitFamilies are the metric families Dump writes
var splitFamilies = map[string]bool{
	MetricNameSplitsTotal:               true,
	MetricNameSplitsRejected:            true,
	MetricNameRemainderUnitsDistributed: true,
	MetricNameRecipientsPerSplit:        true,
}

// Dump gathers from g and writes the split metric families to w in
// Prometheus text format. Families with no samples yet are skipped.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if !splitFamilies[mf.GetName()] || len(mf.GetMetric()) == 0 {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
