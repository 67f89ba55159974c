package repeater

import (
	"math"
	"time"

	"github.com/nickwells/check.mod/v2/check"
)

const (
	ScheduleRepeats  = "repeats"
	ScheduleDuration = "duration"
)

// MaxDurationSeconds is the largest duration, in seconds, that can be
// represented as a time.Duration
const MaxDurationSeconds = math.MaxInt64 / int64(time.Second)

// Schedule records how many times the intention is read in each burst and
// for how many seconds the loop should run
type Schedule struct {
	Repeats         int64
	DurationSeconds int64
}

var (
	// CheckPositive is the check applied to each of the Schedule values
	CheckPositive = check.ValGT[int64](0)
	// CheckMaxDuration is the additional check applied to the duration
	CheckMaxDuration = check.ValLE(MaxDurationSeconds)
)

// Check returns a non-nil InvalidInputError if either of the Schedule
// values is not a positive integer or if the duration is too large to be
// measured
func (s Schedule) Check() error {
	for _, v := range []struct {
		name   string
		val    int64
		checks []check.Int64
	}{
		{
			name:   ScheduleRepeats,
			val:    s.Repeats,
			checks: []check.Int64{CheckPositive},
		},
		{
			name:   ScheduleDuration,
			val:    s.DurationSeconds,
			checks: []check.Int64{CheckPositive, CheckMaxDuration},
		},
	} {
		for _, ck := range v.checks {
			if err := ck(v.val); err != nil {
				return InvalidInputError{Name: v.name, Val: v.val, Err: err}
			}
		}
	}

	return nil
}

// Duration returns the duration of the Schedule as a time.Duration
func (s Schedule) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}
