package repeater

import (
	"context"
	"time"

	"github.com/nickwells/tempus.mod/tempus"
)

const (
	DfltInterval = time.Duration(tempus.SecondsPerHour) * time.Second
	DfltTick     = time.Second
)

// Outcome records how the loop finished
type Outcome int

const (
	Running Outcome = iota
	Completed
	Interrupted
)

// String returns a name for the Outcome
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Interrupted:
		return "interrupted"
	}

	return "unknown"
}

// RunState records the timing of a run of the Loop and what it has done
type RunState struct {
	Start    time.Time
	End      time.Time
	NextFire time.Time

	Bursts int
	Reads  int64

	Outcome Outcome
}

// Remaining returns the number of whole seconds from now until the end of
// the run. It is never negative.
func (rs RunState) Remaining(now time.Time) int64 {
	return max(int64(rs.End.Sub(now)/time.Second), 0)
}

// Loop holds the parameters of a timed repeater loop. The zero values of
// Clock, Interval and Tick are replaced by WallClock, DfltInterval and
// DfltTick respectively.
type Loop struct {
	Source   *Source
	Schedule Schedule

	Clock    Clock
	Interval time.Duration
	Tick     time.Duration

	// OnBurst, if not nil, is called at the start of each burst with the
	// number of the burst, starting from 1
	OnBurst func(burst int)

	// OnTick, if not nil, is called on each poll with the number of
	// seconds remaining
	OnTick func(remaining int64)
}

// Run performs the first burst immediately and then polls the clock,
// performing a further burst each time the next hourly mark is reached,
// until the scheduled duration has passed or the context is done. A
// cancelled context is not an error; the Outcome of the returned RunState
// is set to Interrupted instead.
func (l Loop) Run(ctx context.Context) (RunState, error) {
	if l.Source == nil {
		return RunState{}, ErrNilSource
	}

	if err := l.Schedule.Check(); err != nil {
		return RunState{}, err
	}

	clk := l.Clock
	if clk == nil {
		clk = WallClock{}
	}

	interval := l.Interval
	if interval <= 0 {
		interval = DfltInterval
	}

	tick := l.Tick
	if tick <= 0 {
		tick = DfltTick
	}

	now := clk.Now()
	rs := RunState{
		Start:    now,
		End:      now.Add(l.Schedule.Duration()),
		NextFire: now.Add(interval),
	}

	l.burst(&rs)

	for {
		if ctx.Err() != nil {
			rs.Outcome = Interrupted
			return rs, nil
		}

		now = clk.Now()
		if !now.Before(rs.End) {
			rs.Outcome = Completed
			return rs, nil
		}

		if !now.Before(rs.NextFire) {
			l.burst(&rs)
			rs.NextFire = rs.NextFire.Add(interval)
		}

		if l.OnTick != nil {
			l.OnTick(rs.Remaining(now))
		}

		if err := clk.Sleep(ctx, tick); err != nil {
			if ctx.Err() != nil {
				rs.Outcome = Interrupted
				return rs, nil
			}

			return rs, err
		}
	}
}

// burst reads the intention Repeats times. Nothing is done with the value.
func (l Loop) burst(rs *RunState) {
	rs.Bursts++

	if l.OnBurst != nil {
		l.OnBurst(rs.Bursts)
	}

	for range l.Schedule.Repeats {
		_ = l.Source.Value()
		rs.Reads++
	}
}
