package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Split metric names
const (
	MetricNameSplitsTotal               = "splits_total"
	MetricNameSplitsRejected            = "splits_rejected_total"
	MetricNameRemainderUnitsDistributed = "remainder_units_distributed_total"
	MetricNameRecipientsPerSplit        = "recipients_per_split"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Split metric help text
const (
	HelpTextSplitsTotal               = "Total number of splits computed, by whether the total divided exactly"
	HelpTextSplitsRejected            = "Total number of splits refused, by reason"
	HelpTextRemainderUnitsDistributed = "Total remainder units handed out one per recipient"
	HelpTextRecipientsPerSplit        = "Number of recipients a total was divided among"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelDivision = "division"
	LabelReason   = "reason"
)

// Division label values
const (
	DivisionExact   = "exact"
	DivisionInexact = "inexact"
)

// RecipientBuckets covers groups from a couple of people up to large events
var RecipientBuckets = []float64{1, 2, 3, 5, 10, 25, 50, 100, 500}
