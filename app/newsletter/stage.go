package newsletter

import (
	"errors"
	"fmt"
)

// Stage names a step of a run. Stages advance strictly in declaration order.
type Stage string

const (
	StageConfiguring Stage = "configuring"
	StageGenerating  Stage = "generating"
	StageRendering   Stage = "rendering"
	StageDispatching Stage = "dispatching"
	StageDone        Stage = "done"
)

// StageError records the stage in which a run failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// FailedStage returns the stage recorded in err, if any.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}

func fail(stage Stage, err error) error {
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}
