package batch

import "errors"

var (
	// ErrNoFiles is returned when the input tree holds no file with the source extension.
	ErrNoFiles = errors.New("no matching files found")
	// ErrInputNotFound is returned when the input root does not exist.
	ErrInputNotFound = errors.New("input directory does not exist")
)

// Outcome is the result of one job.
type Outcome int

const (
	Skipped Outcome = iota
	Succeeded
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "skipped"
}

// Job is one discovered file and where it goes.
type Job struct {
	Source      string
	Destination string
	Outcome     Outcome
	Entries     int
	Err         error
}

// Summary aggregates a batch run.
type Summary struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Jobs      []Job
}

// OK reports whether files were found and every one of them converted.
func (s Summary) OK() bool {
	return s.Total > 0 && s.Succeeded == s.Total
}

func (s *Summary) add(job Job) {
	s.Jobs = append(s.Jobs, job)
	switch job.Outcome {
	case Succeeded:
		s.Succeeded++
	case Failed:
		s.Failed++
	}
}
