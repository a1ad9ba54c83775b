package attendance

import (
	"math"
	"time"
)

// clockLayout is the 12-hour wall-clock format the records store, e.g.
// "09:00:00 AM".
const clockLayout = "03:04:05 PM"

const dateLayout = "2006-01-02"

func formatClock(t time.Time) string {
	return t.Format(clockLayout)
}

// hoursBetween computes the elapsed hours between two wall-clock times of the
// same working day, rounded to 2 decimals. A checkout that parses earlier
// than the check-in is treated as an overnight shift ending the next day, so
// the result is never negative.
func hoursBetween(checkIn, checkOut string) (float64, bool) {
	in, err := time.Parse(clockLayout, checkIn)
	if err != nil {
		return 0, false
	}
	out, err := time.Parse(clockLayout, checkOut)
	if err != nil {
		return 0, false
	}

	elapsed := out.Sub(in)
	if elapsed < 0 {
		elapsed += 24 * time.Hour
	}
	return round2(elapsed.Hours()), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
