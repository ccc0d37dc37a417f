package core

import "fmt"

// Stage is a step of a single run.
type Stage int

const (
	StageIdle Stage = iota
	StageDiscover
	StageParseParallel
	StageMerge
	StagePresent
	StageLaunch
	StageList
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StageIdle:          "idle",
	StageDiscover:      "discover",
	StageParseParallel: "parse",
	StageMerge:         "merge",
	StagePresent:       "present",
	StageLaunch:        "launch",
	StageList:          "list",
	StageDone:          "done",
	StageFailed:        "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// StageError is a fatal error together with the stage it happened in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
