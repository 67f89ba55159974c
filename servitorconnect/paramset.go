package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// paramOptFuncs returns the parameter option functions. These are
// separated out from the paramset creation so that tests can construct
// distinct paramsets.
func paramOptFuncs(prog *prog) []param.PSetOptFunc {
	return []param.PSetOptFunc{
		verbose.AddParams,
		verbose.AddTimingParams(prog.dbgStack),
		versionparams.AddParams,

		addSourceParams(prog),
		addScheduleParams(prog),
		addParams(prog),

		addExamples,
		addNotes,

		param.SetProgramDescription(
			"This will repeat an intention once an hour for as long as" +
				" you choose, showing a countdown of the time left." +
				"\n\n" +
				"The intention can be given directly or read from a file." +
				" It is repeated the chosen number of times as soon as the" +
				" program starts and then again each hour after that." +
				"\n\n" +
				"Anything not given as a parameter will be asked for."),

		SetGlobalConfigFile,
		SetConfigFile,
	}
}

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(paramOptFuncs(prog)...)
}
