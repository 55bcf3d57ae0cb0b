package models

import (
	"time"
)

// Now returns the current time in UTC. Published event timestamps always
// carry UTC so consumers never compare wall clocks across zones.
func Now() time.Time {
	return time.Now().UTC()
}
