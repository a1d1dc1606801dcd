package service

// Progress is a snapshot of a long-running sync step.
type Progress struct {
	Step      string
	Processed int
	Total     int
	Succeeded int
	Failed    int
}

// ProgressReporter receives running counts from sync loops.
type ProgressReporter interface {
	Report(p Progress)
	Done(p Progress)
}
