package metrics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump_WritesSplitFamilies(t *testing.T) {
	r := NewSplitRecorder()
	r.RecordSplit(6, 5)
	r.RecordRejected("empty_input")

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, prometheus.DefaultGatherer))

	out := buf.String()
	assert.Contains(t, out, "# TYPE splits_total counter")
	assert.Contains(t, out, `splits_total{division="inexact"}`)
	assert.Contains(t, out, `splits_rejected_total{reason="empty_input"}`)
	assert.Contains(t, out, "remainder_units_distributed_total")
	assert.Contains(t, out, "recipients_per_split_bucket")
	assert.NotContains(t, out, "go_goroutines", "runtime collectors are left out")
}

func TestDump_GatherError(t *testing.T) {
	failing := prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
		return nil, errors.New("boom")
	})

	err := Dump(&bytes.Buffer{}, failing)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
