package core

import "time"

// TimeProvider abstracts the clock so that entities and use cases can mint
// timestamps and calendar dates deterministically under test.
type TimeProvider interface {
	Now() time.Time
}
