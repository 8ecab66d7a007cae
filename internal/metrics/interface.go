package metrics

// Metrics defines the instrumentation points the tracker components use.
type Metrics interface {
	IncPlaysRecorded()
	IncValidationFailures()
	IncMatchesStarted()
	IncStoreWriteFailures()
	SetStartupTime(duration float64)
}
