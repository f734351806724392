package sosa

import "fmt"

// MissingRootError is raised when a requested Sosa root cannot be resolved
// to an existing person, or when no root can be resolved at all from an
// override, settings, or the environment.
type MissingRootError struct {
	RootIndex uint32
	Reason    string
}

func (e *MissingRootError) Error() string {
	if e.RootIndex != 0 {
		return fmt.Sprintf("missing_root: root index %d: %s", e.RootIndex, e.Reason)
	}
	return fmt.Sprintf("missing_root: %s", e.Reason)
}

func newMissingRootError(rootIndex uint32, reason string) *MissingRootError {
	return &MissingRootError{RootIndex: rootIndex, Reason: reason}
}
