package model

// ChangeSetReport is the serialisable outcome of detection on one change-set.
type ChangeSetReport struct {
	ID        string              `json:"id" yaml:"id" msgpack:"id"`
	File      Path                `json:"file" yaml:"file" msgpack:"file"`
	Source    Path                `json:"source" yaml:"source" msgpack:"source"`
	Counters  map[PatternName]int `json:"counters" yaml:"counters" msgpack:"counters"`
	Instances []PatternInstance   `json:"instances" yaml:"instances" msgpack:"instances"`
}

// NewChangeSetReport snapshots an aggregate for script.
func NewChangeSetReport(script *EditScript, source Path, patterns *RepairPatterns) ChangeSetReport {
	report := ChangeSetReport{
		Source:    source,
		Counters:  patterns.Counters(),
		Instances: patterns.AllInstances(),
	}

	if script != nil {
		report.ID = script.ID
		report.File = script.File
	}

	return report
}

// Matched reports whether any pattern was found.
func (r ChangeSetReport) Matched() bool {
	for _, count := range r.Counters {
		if count > 0 {
			return true
		}
	}

	return false
}

// Summary aggregates the reports of one run.
type Summary struct {
	RunID          string              `json:"run_id" yaml:"run_id"`
	ChangeSets     int                 `json:"change_sets" yaml:"change_sets"`
	Skipped        int                 `json:"skipped" yaml:"skipped"`
	Counters       map[PatternName]int `json:"counters" yaml:"counters"`
	ChangeSetsWith map[PatternName]int `json:"change_sets_with" yaml:"change_sets_with"`
}

// NewSummary returns an empty summary with every known pattern at zero.
func NewSummary(runID string) Summary {
	s := Summary{
		RunID:          runID,
		Counters:       make(map[PatternName]int),
		ChangeSetsWith: make(map[PatternName]int),
	}

	for _, name := range PatternNames() {
		s.Counters[name] = 0
		s.ChangeSetsWith[name] = 0
	}

	return s
}

// Add folds one change-set report into the summary.
func (s *Summary) Add(report ChangeSetReport) {
	s.ChangeSets++

	for name, count := range report.Counters {
		s.Counters[name] += count
		if count > 0 {
			s.ChangeSetsWith[name]++
		}
	}
}
