package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		verbose.AddParams,
		verbose.AddTimingParams(prog.dbgStack),
		versionparams.AddParams,

		addParams(prog),

		addExamples,
		addNotes,

		SetGlobalConfigFile,
		SetConfigFile,

		param.SetProgramDescription(
			"This will wait until a given time and then replace itself"+
				" with the given command."+
				"\n\n"+
				"You can give either a time of day (HH:MM or HH:MM:SS)"+
				" or, with a leading '+', a length of time to wait."+
				" The command and its arguments follow the time and are"+
				" passed on exactly as given. Any parameters must come"+
				" before the time."+
				"\n\n"+
				"If the wait is for a minute or more the number of"+
				" seconds to wait is printed before the wait starts."),
	)
}
