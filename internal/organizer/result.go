package organizer

import "time"

// Status is the outcome of one directory entry.
type Status string

const (
	StatusMoved   Status = "moved"
	StatusPlanned Status = "planned"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Skip reasons recorded on skipped results.
const (
	SkipDirectory = "directory"
	SkipExcluded  = "excluded"
	SkipSelf      = "self"
	SkipIrregular = "not a regular file"
)

// Result records what happened to one top-level entry.
type Result struct {
	Name     string
	Category string
	// Destination is the final path, empty for skipped entries.
	Destination string
	Renamed     bool
	Copied      bool
	Size        int64
	Status      Status
	Reason      string
	Err         error
}

// CategoryStats aggregates moved (or planned) files per category.
type CategoryStats struct {
	Name  string
	Files int
	Bytes int64
}

// Summary describes a finished pass.
type Summary struct {
	RunID      string
	Directory  string
	DryRun     bool
	StartedAt  time.Time
	Elapsed    time.Duration
	Results    []Result
	Moved      int
	Planned    int
	Skipped    int
	Failed     int
	Bytes      int64
	ByCategory []CategoryStats
}

func (s *Summary) record(res Result) {
	s.Results = append(s.Results, res)
	switch res.Status {
	case StatusMoved:
		s.Moved++
	case StatusPlanned:
		s.Planned++
	case StatusSkipped:
		s.Skipped++
		return
	case StatusFailed:
		s.Failed++
		return
	}
	s.Bytes += res.Size
	for i := range s.ByCategory {
		if s.ByCategory[i].Name == res.Category {
			s.ByCategory[i].Files++
			s.ByCategory[i].Bytes += res.Size
			return
		}
	}
}

// Failures returns the failed results in scan order.
func (s *Summary) Failures() []Result {
	var out []Result
	for _, res := range s.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}
