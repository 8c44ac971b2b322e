package themecheck

import "errors"

// ErrChecksFailed is returned by the command layer when the suite reports
// an overall failure. It maps to a nonzero process exit code.
var ErrChecksFailed = errors.New("theme quality checks failed")

// ErrNoOpaquePixels is reported as a fault when an overlay image has no
// fully opaque region to compare against its background.
var ErrNoOpaquePixels = errors.New("overlay has no fully opaque pixels")
