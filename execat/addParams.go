package main

import (
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramNameNoticeThreshold = "notice-threshold"
	paramNameQuiet           = "quiet"
	paramNameSpawnChild      = "spawn-child"
	paramNameDontSleep       = "dont-sleep"
)

// addParams adds the program parameters to the PSet
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.Add(paramNameNoticeThreshold,
			psetter.Int[int64]{
				Value: &prog.noticeThreshold,
				Checks: []check.Int64{
					check.ValGE[int64](0),
				},
			},
			"the shortest wait (in seconds) for which a message"+
				" giving the length of the wait is printed."+
				"\n\n"+
				"On the command line this must be given as"+
				" -"+paramNameNoticeThreshold+"=N since the first"+
				" argument not starting with '-' is taken as the time.",
			param.AltNames("notice-secs"),
			param.SeeAlso(paramNameQuiet),
		)

		ps.Add(paramNameQuiet, psetter.Bool{Value: &prog.quiet},
			"don't print the length of the wait, however long it is.",
			param.AltNames("q"),
			param.SeeAlso(paramNameNoticeThreshold),
		)

		ps.Add(paramNameSpawnChild, psetter.Bool{Value: &prog.spawnChild},
			"run the command as a child process and exit with its"+
				" exit status rather than replacing this program with it."+
				" The command will then have a different process id.",
			param.AltNames("spawn"),
			param.SeeNote(noteProcessReplacement),
		)

		ps.Add(paramNameDontSleep,
			psetter.Bool{Value: &prog.doSleep, Invert: true},
			"do everything except sleep - useful for testing the behaviour",
			param.Attrs(param.DontShowInStdUsage),
		)

		return ps.SetRemHandler(prog)
	}
}
