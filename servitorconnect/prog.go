package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/twrap.mod/twrap"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/tsweet77/servitorconnect/internal/repeater"
)

const (
	exitStatusOK = iota
	exitStatusFail
)

const (
	bannerMsg = "ServitorConnect CLI v1\n" +
		"by AnthroHeart/Anthro Teacher/Thomas Sweet\n"

	burstMsg       = "Repeating Intention..."
	completedMsg   = "Duration completed."
	interruptedMsg = "Script interrupted by user. Exiting gracefully."
)

// prog holds program parameters and status
type prog struct {
	filename string
	intent   string
	srcKind  repeater.Kind
	srcGiven bool

	sched repeater.Schedule

	noCountdown bool
	doSleep     bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	dbgStack *verbose.Stack
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		doSleep: true,

		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,

		dbgStack: &verbose.Stack{},
	}
}

// prepare resolves the intention source and the schedule, prompting for
// anything that has not been given as a parameter
func (prog *prog) prepare() (repeater.Source, error) {
	defer prog.dbgStack.Start("prepare", "Resolving the intention")()
	intro := prog.dbgStack.Tag()

	p := newPrompter(prog.stdin, prog.stdout)

	if !prog.srcGiven {
		verbose.Println(intro, " Prompting for the intention")

		if err := prog.promptForSource(p); err != nil {
			return repeater.Source{}, err
		}
	}

	var (
		src repeater.Source
		err error
	)

	switch prog.srcKind {
	case repeater.KindFile:
		verbose.Println(intro, " Reading the intention from: ", prog.filename)

		src, err = repeater.NewFileSource(prog.filename)
		if err != nil {
			return repeater.Source{}, err
		}
	case repeater.KindText:
		src = repeater.NewTextSource(prog.intent)
	}

	if err := prog.promptForSchedule(p); err != nil {
		return repeater.Source{}, err
	}

	return src, prog.sched.Check()
}

// promptForSource asks for the intention or the name of a file holding it
func (prog *prog) promptForSource(p *prompter) error {
	filename, intent, err := p.intentionOrFile()
	if err != nil {
		return err
	}

	prog.srcGiven = true

	if filename != "" {
		prog.filename = filename
		prog.srcKind = repeater.KindFile

		return nil
	}

	prog.intent = intent
	prog.srcKind = repeater.KindText

	return nil
}

// promptForSchedule asks for any of the schedule values which are not yet
// set
func (prog *prog) promptForSchedule(p *prompter) error {
	var err error

	if prog.sched.Repeats == 0 {
		prog.sched.Repeats, err = p.positiveInt(
			repeater.ScheduleRepeats, "Number of repeats per hour: ",
			math.MaxInt64)
		if err != nil {
			return err
		}
	}

	if prog.sched.DurationSeconds == 0 {
		prog.sched.DurationSeconds, err = p.positiveInt(
			repeater.ScheduleDuration, "Duration in seconds: ",
			repeater.MaxDurationSeconds)
		if err != nil {
			return err
		}
	}

	return nil
}

// showSummary reports what is about to be repeated and for how long
func (prog *prog) showSummary(src repeater.Source) {
	twc := twrap.NewTWConfOrPanic(twrap.SetWriter(prog.stdout))

	fmt.Fprintln(prog.stdout)
	twc.Wrap("Source: "+src.Describe(), 0)
	fmt.Fprintf(prog.stdout, "Repeats per Hour: %d\n", prog.sched.Repeats)
	fmt.Fprintf(prog.stdout, "Duration: %s\n",
		repeater.FormatTime(prog.sched.DurationSeconds))
}

// countdownLabel returns the text shown before the remaining time
func (prog *prog) countdownLabel(src repeater.Source) string {
	return fmt.Sprintf("%s Repeated %d %s Hourly: ",
		src.Describe(),
		prog.sched.Repeats,
		english.Plural("Time", int(prog.sched.Repeats)))
}

// clock returns the clock the loop should use
func (prog *prog) clock() repeater.Clock {
	if prog.doSleep {
		return repeater.WallClock{}
	}

	return repeater.NewInstantClock(time.Now())
}

// repeat runs the timed repeater loop until the duration has passed or the
// context is cancelled
func (prog *prog) repeat(
	ctx context.Context, src repeater.Source,
) (repeater.RunState, error) {
	defer prog.dbgStack.Start("repeat", "Repeating the intention")()
	intro := prog.dbgStack.Tag()

	cd := newCountdown(prog.stdout, prog.countdownLabel(src))

	l := repeater.Loop{
		Source:   &src,
		Schedule: prog.sched,
		Clock:    prog.clock(),
		Interval: time.Duration(tempus.SecondsPerHour) * time.Second,
		OnBurst: func(burst int) {
			cd.finish()
			fmt.Fprintln(prog.stdout)
			fmt.Fprintln(prog.stdout, burstMsg)
			verbose.Println(intro,
				fmt.Sprintf(" burst %d: reading the intention %d %s",
					burst, prog.sched.Repeats,
					english.Plural("time", int(prog.sched.Repeats))))
		},
	}

	if !prog.noCountdown {
		l.OnTick = cd.show
	}

	rs, err := l.Run(ctx)
	cd.finish()

	return rs, err
}

// reportOutcome prints a message saying how the run finished
func (prog *prog) reportOutcome(rs repeater.RunState) {
	verbose.Println(fmt.Sprintf("%d %s, %d %s",
		rs.Bursts, english.Plural("burst", rs.Bursts),
		rs.Reads, english.Plural("read", int(rs.Reads))))

	switch rs.Outcome {
	case repeater.Completed:
		fmt.Fprintln(prog.stdout, completedMsg)
	case repeater.Interrupted:
		fmt.Fprintln(prog.stdout)
		fmt.Fprintln(prog.stdout, interruptedMsg)
	}
}
