package app

import (
	"fmt"

	"github.com/vk/speccheck/internal/codecheck"
	"github.com/vk/speccheck/internal/linkcheck"
	"github.com/vk/speccheck/internal/sectioncheck"
)

// Stage is a step of a validation run.
type Stage int

const (
	StageLoading Stage = iota
	StageParsing
	StageGraphBuilt
	StageConsistencyChecked
	StageCyclesScanned
	StageSectionsChecked
	StageLinksChecked
	StageCodeChecked
	// StageChecked covers checkers registered outside this package.
	StageChecked
	StageSuccess
)

var stageNames = map[Stage]string{
	StageLoading:            "loading",
	StageParsing:            "parsing",
	StageGraphBuilt:         "graph-built",
	StageConsistencyChecked: "consistency-checked",
	StageCyclesScanned:      "cycles-scanned",
	StageSectionsChecked:    "sections-checked",
	StageLinksChecked:       "links-checked",
	StageCodeChecked:        "code-checked",
	StageChecked:            "checked",
	StageSuccess:            "success",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// checkerStage maps a checker name to the stage it completes.
func checkerStage(name string) Stage {
	switch name {
	case sectioncheck.Name:
		return StageSectionsChecked
	case linkcheck.Name:
		return StageLinksChecked
	case codecheck.Name:
		return StageCodeChecked
	default:
		return StageChecked
	}
}

// StageError records the stage a run failed in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
