package main

import (
	"fmt"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/tsweet77/servitorconnect/internal/repeater"
	"github.com/tsweet77/servitorconnect/internal/stdparams"
)

const (
	paramGroupNameSource   = "cmd-source"
	paramGroupNameSchedule = "cmd-schedule"

	paramNameFile        = "file"
	paramNameIntent      = "intent"
	paramNameRepeats     = "repeats"
	paramNameDuration    = "duration"
	paramNameNoCountdown = "no-countdown"
	paramNameDontSleep   = "dont-sleep"
)

// setSource returns an action func that records that the intention source
// has been given and what kind of source it is
func setSource(prog *prog, k repeater.Kind) param.ActionFunc {
	return func(_ location.L, _ *param.ByName, _ []string) error {
		prog.srcGiven = true
		prog.srcKind = k

		return nil
	}
}

// addSourceParams adds the parameters giving the intention to the PSet
func addSourceParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupNameSource,
			"where to find the intention."+
				"\n\n"+
				"If neither of these is given you will be asked for the"+
				" intention. If what you type is the name of a file"+
				" then the intention is read from that file.")

		var srcCounter paction.Counter
		srcCounterAF := srcCounter.MakeActionFunc()

		fileParam := ps.Add(paramNameFile,
			psetter.Pathname{
				Value:       &prog.filename,
				Expectation: filecheck.FileExists(),
			},
			"the file containing the intention. The whole file is read"+
				" once, before the repeating starts, and any leading or"+
				" trailing white space is removed.",
			param.AltNames("f"),
			param.PostAction(srcCounterAF),
			param.PostAction(setSource(prog, repeater.KindFile)),
			param.GroupName(paramGroupNameSource),
		)

		intentParam := ps.Add(paramNameIntent,
			psetter.String[string]{
				Value: &prog.intent,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the intention to be repeated",
			param.AltNames("intention", "i"),
			param.PostAction(srcCounterAF),
			param.PostAction(setSource(prog, repeater.KindText)),
			param.GroupName(paramGroupNameSource),
		)

		ps.AddFinalCheck(func() error {
			if srcCounter.Count() > 1 {
				return fmt.Errorf("you may set at most one of %q or %q: %s",
					fileParam.Name(), intentParam.Name(), srcCounter.SetBy())
			}

			return nil
		})

		return nil
	}
}

// addScheduleParams adds the parameters controlling how often and for how
// long the intention is repeated
func addScheduleParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupNameSchedule,
			"how many times and for how long to repeat the intention."+
				"\n\n"+
				"Any of these which are not given will be asked for.")

		stdparams.AddPositiveInt(ps, paramNameRepeats, &prog.sched.Repeats,
			"the number of times to repeat the intention each hour."+
				" The intention is repeated this many times as soon as"+
				" the program starts and then again at each hourly mark"+
				" after that.",
			param.AltNames("r", "repeat-count"),
			param.GroupName(paramGroupNameSchedule),
		)

		ps.Add(paramNameDuration,
			stdparams.PositiveIntUpTo(&prog.sched.DurationSeconds,
				repeater.MaxDurationSeconds),
			"the number of seconds to keep repeating the intention for."+
				" If this is less than an hour the intention will only be"+
				" repeated once, at the start.",
			param.AltNames("d", "duration-secs"),
			param.GroupName(paramGroupNameSchedule),
		)

		return nil
	}
}

// addParams adds the program parameters to the PSet
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.Add(paramNameNoCountdown, psetter.Bool{Value: &prog.noCountdown},
			"don't show the time remaining while repeating the intention."+
				" This is useful if the output is not going to a terminal.",
			param.AltNames("no-status"),
		)

		ps.Add(paramNameDontSleep,
			psetter.Bool{Value: &prog.doSleep, Invert: true},
			"do everything except sleep - the clock moves on instantly"+
				" rather than waiting. This is useful for testing the"+
				" behaviour",
			param.Attrs(param.DontShowInStdUsage|param.CommandLineOnly),
		)

		return nil
	}
}
