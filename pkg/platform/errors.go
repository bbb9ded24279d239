package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrUnsupportedPlatform is returned by [NewProvider] for unknown platforms.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnsupportedReviewEvent is returned when a review event has no
	// equivalent on the target platform.
	ErrUnsupportedReviewEvent = errors.New("unsupported review event")
)
