package deepzoom

import "errors"

// Sentinel errors for deepzoom.
var (
	// ErrInvalidRequest is wrapped by every *RequestError.
	ErrInvalidRequest = errors.New("deepzoom: invalid request")

	// ErrSnapshotFormat is returned when a prior snapshot was generated
	// with a different fixed-point format.
	ErrSnapshotFormat = errors.New("deepzoom: snapshot format does not match request")

	// ErrSnapshotShape is returned when a prior snapshot covers a different
	// block, or its arrays do not match its dimensions.
	ErrSnapshotShape = errors.New("deepzoom: snapshot shape does not match request")

	// ErrSnapshotSettings is returned when a prior snapshot was generated
	// with a different threshold, secondary threshold or escape velocity setting.
	ErrSnapshotSettings = errors.New("deepzoom: snapshot settings do not match request")

	// ErrTargetNotIncreased is returned when resuming a complete snapshot
	// without raising the target iteration count.
	ErrTargetNotIncreased = errors.New("deepzoom: target iterations not increased")
)

// RequestError describes an invalid field of a Request or SectionRequest.
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	return "deepzoom: invalid request." + e.Field + ": " + e.Reason
}

// Unwrap returns ErrInvalidRequest.
func (e *RequestError) Unwrap() error {
	return ErrInvalidRequest
}
