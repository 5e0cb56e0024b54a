package chess

import "errors"

var (
	// ErrInvalidConfiguration marks board dimensions outside [MinSize, MaxSize].
	ErrInvalidConfiguration = errors.New("chess: board dimensions out of range")
	// ErrInvalidSegment marks coordinates that do not address a drawable segment.
	ErrInvalidSegment = errors.New("chess: not a drawable segment")
	// ErrSegmentTaken marks a segment that has already been drawn.
	ErrSegmentTaken = errors.New("chess: segment already drawn")
)
