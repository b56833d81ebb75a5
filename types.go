package tinydot

import (
	"github.com/sirupsen/logrus"

	"github.com/reoring/tinydot/source"
)

// CollisionPolicy decides what happens when two keys of one mapping sanitize
// to the same field name, for example "my key" and "my-key".
type CollisionPolicy int

const (
	LastWins       CollisionPolicy = iota // Keep the first position and the last value.
	FirstWins                             // Keep the first value; drop later duplicates.
	CollisionError                        // Reject the input with Issues.
)

func (p CollisionPolicy) String() string {
	switch p {
	case LastWins:
		return "last-wins"
	case FirstWins:
		return "first-wins"
	case CollisionError:
		return "error"
	default:
		return "unknown"
	}
}

// NumberMode dictates how JSON numbers are represented.
type NumberMode = source.NumberMode

const (
	NumberJSONNumber = source.NumberJSONNumber
	NumberFloat64    = source.NumberFloat64
)

// Options configures conversion. The zero value is ready to use.
type Options struct {
	OnCollision CollisionPolicy
	NumberMode  NumberMode
	// Logger receives collision warnings. Nil disables logging.
	Logger logrus.FieldLogger
}
