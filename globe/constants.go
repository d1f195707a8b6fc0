// =======================
// globe/constants.go
// =======================

package globe

import "time"

// Globe setting
const (
	GlobeRadius   = 2.0
	PointRadius   = 0.03
	PointCount    = 30
	ResetDelay    = 1000 * time.Millisecond
	RotationSpeed = 0.1 // radians per second of elapsed time
)

// None marks an absent hover or click index.
const None = -1
