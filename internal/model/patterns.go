package model

import (
	"sort"
	"sync"
)

// PatternName identifies a repair pattern.
type PatternName string

const (
	PatternConstChange PatternName = "constChange"

	PatternWrapsIf         PatternName = "wrapsIf"
	PatternWrapsIfElse     PatternName = "wrapsIfElse"
	PatternWrapsElse       PatternName = "wrapsElse"
	PatternWrapsTryCatch   PatternName = "wrapsTryCatch"
	PatternWrapsMethod     PatternName = "wrapsMethod"
	PatternWrapsLoop       PatternName = "wrapsLoop"
	PatternUnwrapIfElse    PatternName = "unwrapIfElse"
	PatternUnwrapTryCatch  PatternName = "unwrapTryCatch"
	PatternUnwrapMethod    PatternName = "unwrapMethod"
	PatternWrongVarRef     PatternName = "wrongVarRef"
	PatternWrongMethodRef  PatternName = "wrongMethodRef"
	PatternCopyPaste       PatternName = "copyPaste"
	PatternMissNullCheckP  PatternName = "missNullCheckP"
	PatternMissNullCheckN  PatternName = "missNullCheckN"
	PatternSingleLine      PatternName = "singleLine"
	PatternCondBlockRetAdd PatternName = "condBlockRetAdd"
	PatternCondBlockExcAdd PatternName = "condBlockExcAdd"
	PatternCondBlockOthers PatternName = "condBlockOthersAdd"
	PatternCondBlockRem    PatternName = "condBlockRem"
	PatternExpLogicExpand  PatternName = "expLogicExpand"
	PatternExpLogicReduce  PatternName = "expLogicReduce"
	PatternExpLogicMod     PatternName = "expLogicMod"
	PatternExpArithMod     PatternName = "expArithMod"
	PatternCodeMove        PatternName = "codeMove"
)

// Family groups the patterns reported by one detector.
type Family string

const (
	FamilyConstChange    Family = "constChange"
	FamilyWrapsWith      Family = "wrapsWith"
	FamilyWrongReference Family = "wrongReference"
	FamilyCopyPaste      Family = "copyPaste"
	FamilyMissNullCheck  Family = "missNullCheck"
	FamilySingleLine     Family = "singleLine"
	FamilyCondBlock      Family = "condBlock"
	FamilyExpression     Family = "expression"
	FamilyCodeMove       Family = "codeMove"
)

// FamilyPatterns maps each family to the pattern names only it may report.
var FamilyPatterns = map[Family][]PatternName{
	FamilyConstChange: {PatternConstChange},
	FamilyWrapsWith: {
		PatternWrapsIf, PatternWrapsIfElse, PatternWrapsElse, PatternWrapsTryCatch,
		PatternWrapsMethod, PatternWrapsLoop,
		PatternUnwrapIfElse, PatternUnwrapTryCatch, PatternUnwrapMethod,
	},
	FamilyWrongReference: {PatternWrongVarRef, PatternWrongMethodRef},
	FamilyCopyPaste:      {PatternCopyPaste},
	FamilyMissNullCheck:  {PatternMissNullCheckP, PatternMissNullCheckN},
	FamilySingleLine:     {PatternSingleLine},
	FamilyCondBlock: {
		PatternCondBlockRetAdd, PatternCondBlockExcAdd, PatternCondBlockOthers, PatternCondBlockRem,
	},
	FamilyExpression: {
		PatternExpLogicExpand, PatternExpLogicReduce, PatternExpLogicMod, PatternExpArithMod,
	},
	FamilyCodeMove: {PatternCodeMove},
}

// Families returns every family in a stable order.
func Families() []Family {
	families := make([]Family, 0, len(FamilyPatterns))
	for f := range FamilyPatterns {
		families = append(families, f)
	}

	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })

	return families
}

// PatternNames returns every known pattern name, sorted.
func PatternNames() []PatternName {
	var names []PatternName
	for _, patterns := range FamilyPatterns {
		names = append(names, patterns...)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// Evidence is what a detector knows about the pre-existing code a pattern touched.
type Evidence struct {
	Faulty    []NodeID
	Statement NodeID
	Line      Span
}

// PatternInstance is one evidenced occurrence of a pattern. Immutable once recorded.
type PatternInstance struct {
	Pattern   PatternName `json:"pattern" yaml:"pattern" msgpack:"pattern"`
	Operation Operation   `json:"operation" yaml:"operation" msgpack:"operation"`
	Faulty    []NodeID    `json:"faulty,omitempty" yaml:"faulty,omitempty" msgpack:"faulty,omitempty"`
	Statement NodeID      `json:"statement" yaml:"statement" msgpack:"statement"`
	Line      Span        `json:"line" yaml:"line" msgpack:"line"`
}

// RepairPatterns aggregates detector output for one change-set.
// It is safe for concurrent use by detectors sharing it.
type RepairPatterns struct {
	mu        sync.Mutex
	counters  map[PatternName]int
	instances map[PatternName][]PatternInstance
}

// NewRepairPatterns returns an aggregate with every known pattern at zero.
func NewRepairPatterns() *RepairPatterns {
	rp := &RepairPatterns{
		counters:  make(map[PatternName]int),
		instances: make(map[PatternName][]PatternInstance),
	}

	for _, name := range PatternNames() {
		rp.counters[name] = 0
	}

	return rp
}

// IncrementFeatureCounter records one occurrence of name triggered by op.
func (rp *RepairPatterns) IncrementFeatureCounter(name PatternName, op Operation, evidence Evidence) {
	faulty := append([]NodeID(nil), evidence.Faulty...)

	rp.mu.Lock()
	defer rp.mu.Unlock()

	rp.counters[name]++
	rp.instances[name] = append(rp.instances[name], PatternInstance{
		Pattern:   name,
		Operation: op,
		Faulty:    faulty,
		Statement: evidence.Statement,
		Line:      evidence.Line,
	})
}

// FeatureCounter returns how often name was recorded.
func (rp *RepairPatterns) FeatureCounter(name PatternName) int {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	return rp.counters[name]
}

// Instances returns a copy of the instances recorded for name, in recording order.
func (rp *RepairPatterns) Instances(name PatternName) []PatternInstance {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	return append([]PatternInstance(nil), rp.instances[name]...)
}

// Counters returns a copy of all counters, zeros included.
func (rp *RepairPatterns) Counters() map[PatternName]int {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	out := make(map[PatternName]int, len(rp.counters))
	for k, v := range rp.counters {
		out[k] = v
	}

	return out
}

// Names returns the names with at least one occurrence, sorted.
func (rp *RepairPatterns) Names() []PatternName {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	var names []PatternName

	for name, count := range rp.counters {
		if count > 0 {
			names = append(names, name)
		}
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// AllInstances returns every instance ordered by pattern name, then recording order.
func (rp *RepairPatterns) AllInstances() []PatternInstance {
	var out []PatternInstance
	for _, name := range rp.Names() {
		out = append(out, rp.Instances(name)...)
	}

	return out
}

// Total returns the sum of all counters.
func (rp *RepairPatterns) Total() int {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	total := 0
	for _, count := range rp.counters {
		total += count
	}

	return total
}

// Merge adds other's counters and appends its instances.
func (rp *RepairPatterns) Merge(other *RepairPatterns) {
	if other == nil || other == rp {
		return
	}

	counters := other.Counters()

	other.mu.Lock()
	instances := make(map[PatternName][]PatternInstance, len(other.instances))
	for name, list := range other.instances {
		instances[name] = append([]PatternInstance(nil), list...)
	}
	other.mu.Unlock()

	rp.mu.Lock()
	defer rp.mu.Unlock()

	for name, count := range counters {
		rp.counters[name] += count
	}

	for name, list := range instances {
		rp.instances[name] = append(rp.instances[name], list...)
	}
}
