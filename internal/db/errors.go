package db

import (
	"fmt"
)

type InvalidClockStateError struct {
	Override   string
	Constraint string
}

func (e *InvalidClockStateError) Error() string {
	return fmt.Sprintf("Clock state %q violates %s", e.Override, e.Constraint)
}
