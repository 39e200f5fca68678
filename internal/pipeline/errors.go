package pipeline

import "fmt"

// Pipeline step names, in execution order.
const (
	StepExtract  = "extract"
	StepParse    = "parse"
	StepEncode   = "encode"
	StepValidate = "validate"
	StepWrite    = "write"
)

// StepError represents a failure in one pipeline step
type StepError struct {
	Step  string
	Path  string
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed for %s: %v", e.Step, e.Path, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// BatchError reports that some files in a batch failed
type BatchError struct {
	Failed int
	Total  int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d of %d files failed to convert", e.Failed, e.Total)
}
