// Package ids synthesizes the record identifiers used across all three
// collections: a collection prefix, the creation timestamp in milliseconds,
// and a random suffix. Uniqueness is probabilistic, not checked.
package ids

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	PrefixEmployee   = "emp"
	PrefixLeave      = "leave"
	PrefixAttendance = "att"
)

// New returns an id like "emp-1735689600000-4821".
func New(prefix string) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, time.Now().UnixMilli(), rand.Intn(10000))
}
