package analyzer

import (
	"errors"
	"fmt"
)

// ErrMissingIdentity is returned before any upstream call when the
// identity parameters are absent or the region is unknown.
var ErrMissingIdentity = errors.New("game name, tag line, and a valid region are required")

// LookupError marks a required upstream fetch that failed irrecoverably.
// Everything downstream needs the PUUID and the match list, so these
// cannot be degraded into a partial report.
type LookupError struct {
	Stage string // "account", "summoner", "match list"
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed: %v", e.Stage, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
