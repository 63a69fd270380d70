package entities

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports a cutting parameter that fails validation.
// Field names the offending parameter in the words the operator typed it as
// ("width of cut", "tool diameter"), Reason describes the violation.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// UnknownMaterialError reports a material with no entry in the chipload table.
type UnknownMaterialError struct {
	Material string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material type: %q", e.Material)
}

// UnknownStyleError reports an unrecognized cutting style name.
type UnknownStyleError struct {
	Style string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown cutting style: %q", e.Style)
}

// ErrNoFeasibleFeedrate is returned by the feedrate maximizer when no chipload
// in the scanned range produces a feedrate at or below the ceiling.
var ErrNoFeasibleFeedrate = errors.New("no feasible feedrate within the suggested chipload range")
