package pose

import "errors"

// Apply and serialize errors. Single-document operations are fail-fast:
// these propagate to the caller uncaught. Only the import pipeline treats
// them as per-item recoverable.
var (
	ErrMissingWorld  = errors.New("no world with joint and prop collections supplied")
	ErrMissingScene  = errors.New("no scene supplied")
	ErrInvalidPose   = errors.New("pose document is not a structured value")
	ErrInvalidPreset = errors.New("preset document has no joints map")
)
