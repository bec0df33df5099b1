package model

type Priority string

const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	highPriorityThreads   = 10
	mediumPriorityThreads = 5
	lowPriorityThreads    = 1
)

// PriorityForCount buckets a thread count. Negative counts are treated as zero.
func PriorityForCount(threads int64) Priority {
	switch {
	case threads >= highPriorityThreads:
		return PriorityHigh
	case threads >= mediumPriorityThreads:
		return PriorityMedium
	case threads >= lowPriorityThreads:
		return PriorityLow
	default:
		return PriorityNone
	}
}

// PriorityInfo is the derived priority of a dashboard or chart. It is never stored.
type PriorityInfo struct {
	Priority    Priority `json:"priority"`
	ThreadCount int64    `json:"thread_count"`
}
