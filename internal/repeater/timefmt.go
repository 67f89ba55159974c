package repeater

import (
	"fmt"

	"github.com/nickwells/tempus.mod/tempus"
)

// FormatTime returns the number of seconds formatted as HH:MM:SS. Negative
// values are shown as zero. The hours are not limited to two digits.
func FormatTime(secs int64) string {
	secs = max(secs, 0)

	hrs := secs / tempus.SecondsPerHour
	mins := (secs % tempus.SecondsPerHour) / tempus.SecondsPerMinute
	secs %= tempus.SecondsPerMinute

	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}
