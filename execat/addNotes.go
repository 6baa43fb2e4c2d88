package main

import (
	"github.com/nickwells/param.mod/v6/param"
)

const (
	noteExitStatus         = "Execat - exit status"
	noteProcessReplacement = "Execat - process replacement"
	noteParameters         = "Execat - parameters"
)

// addNotes will add any notes to the param PSet
func addNotes(ps *param.PSet) error {
	ps.AddNote(noteExitStatus,
		"If the command is run successfully the exit status is that"+
			" of the command. Otherwise the program exits with one of"+
			" the following values:"+
			"\n\n"+
			"1 - the program was called incorrectly\n"+
			"2 - the time specification could not be parsed\n"+
			"3 - the command could not be run\n"+
			"255 - an argument contains a null byte")

	ps.AddNote(noteProcessReplacement,
		"Once the wait is over the program is replaced by the command."+
			" The command keeps the same process id and the same open"+
			" files so that a shell waiting for this program will see"+
			" the command's exit status."+
			"\n\n"+
			"The command is searched for in the directories given by"+
			" the PATH environment variable unless it contains a '/'."+
			" The search is done after the wait has finished."+
			"\n\n"+
			"On systems which cannot replace a running program the"+
			" command is run as a child process instead and this"+
			" program exits with the child's exit status.",
		param.NoteSeeParam(paramNameSpawnChild))

	ps.AddNote(noteParameters,
		"Any parameters must come before the time specification. The"+
			" first argument which does not start with a '-' is taken"+
			" as the time specification and everything after it is the"+
			" command to run; none of it is interpreted as a parameter."+
			" Parameters which take a value must be given as"+
			" '-name=value'."+
			"\n\n"+
			"The parameters can also be set in the configuration files.",
		param.NoteSeeParam(
			paramNameNoticeThreshold, paramNameQuiet, paramNameSpawnChild))

	return nil
}
