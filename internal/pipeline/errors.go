package pipeline

import (
	"errors"
	"fmt"
)

// ErrNoMatchingRecords signals that filtering left zero rows. It is a
// defined empty-result outcome, not a failure: callers should surface it as
// "nothing to export" rather than as an error.
var ErrNoMatchingRecords = errors.New("no records match the selected filters")

// ErrNoEnvironments signals that the caller passed an empty environment
// selection, which the contract forbids.
var ErrNoEnvironments = errors.New("at least one environment must be selected")

// InvalidEnvironmentError reports a selected environment code that is absent
// from the environment map. This is a configuration or programmer error, not
// a user-recoverable condition.
type InvalidEnvironmentError struct {
	Code string
}

func (e *InvalidEnvironmentError) Error() string {
	return fmt.Sprintf("unknown environment code %q", e.Code)
}
