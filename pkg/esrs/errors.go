package esrs

import (
	"errors"
	"fmt"
)

// ErrNoData indicates that no sheet matched any configured category.
var ErrNoData = errors.New("no data found")

// Stage names a pipeline step.
type Stage string

const (
	StageCollect   Stage = "collect"
	StageSave      Stage = "save_processed"
	StageAggregate Stage = "aggregate"
	StageRender    Stage = "render"
)

// StageError represents a failure during one pipeline step.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{
		Stage: stage,
		Err:   err,
	}
}
