package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/execat/internal/timespec"
	"github.com/nickwells/execat/internal/trampoline"
	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/verbose.mod/verbose"
)

const (
	exitStatusUsage       = 1
	exitStatusBadTimeSpec = 2
	exitStatusExecFailed  = 3
	exitStatusBadCommand  = 255
)

const verboseTimeFmt = "2006-01-02 15:04:05 MST"

// prog holds program parameters and status
type prog struct {
	name string

	timeSpecStr string
	cmd         []string

	noticeThreshold int64
	quiet           bool
	spawnChild      bool
	doSleep         bool

	dbgStack *verbose.Stack
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		name:            "execat",
		noticeThreshold: trampoline.DfltNoticeThreshold,
		doSleep:         true,
		dbgStack:        &verbose.Stack{},
	}
}

// paramArgs returns the arguments to be given to the param parser. Any
// leading arguments starting with '-' are program parameters; the first
// argument which doesn't start with '-' is the time specification and
// everything after it is the command. The time specification and the
// command are passed after the terminal parameter so that they reach the
// remainder handler unparsed. If the parameters are already followed by the
// terminal parameter the arguments are returned unchanged.
//
// Parameters taking a value must be given in the form '-name=value'.
func paramArgs(args []string) []string {
	split := len(args)

	for i, arg := range args {
		if arg == param.DfltTerminalParam {
			return args
		}

		if !strings.HasPrefix(arg, "-") {
			split = i
			break
		}
	}

	pa := make([]string, 0, len(args)+1)
	pa = append(pa, args[:split]...)
	pa = append(pa, param.DfltTerminalParam)

	return append(pa, args[split:]...)
}

// HandleRemainder records the first trailing argument as the time
// specification and the rest as the command to run. This satisfies the
// param.RemHandler interface.
func (prog *prog) HandleRemainder(ps *param.PSet, _ *location.L) {
	rem := ps.Remainder()
	if len(rem) == 0 {
		return
	}

	prog.timeSpecStr = rem[0]
	prog.cmd = rem[1:]
}

// usage returns the one-line summary of how to call the program
func (prog *prog) usage() string {
	return "Usage: " + prog.name + " [+]<HH:MM[:SS]> <command...>"
}

// makeTrampoline builds the Trampoline according to the parameters
func (prog *prog) makeTrampoline() *trampoline.Trampoline {
	r := trampoline.DfltReplacer()
	if prog.spawnChild {
		r = trampoline.NewSpawnReplacer()
	}

	tramp := trampoline.New(r)
	tramp.NoticeThreshold = prog.noticeThreshold
	tramp.Quiet = prog.quiet

	if !prog.doSleep {
		tramp.Sleep = func(time.Duration) {}
	}

	return tramp
}

// waitSecs parses the time specification and works out how many seconds
// to wait from now
func (prog *prog) waitSecs(now time.Time) (int64, error) {
	defer prog.dbgStack.Start("waitSecs", "resolving the time spec")()
	intro := prog.dbgStack.Tag()

	ts, err := timespec.Parse(prog.timeSpecStr)
	if err != nil {
		return 0, err
	}

	wait := timespec.Wait(ts, now)

	if verbose.IsOn() {
		verbose.Println(intro, " time spec: ", ts.String())
		verbose.Println(intro, "      from: ", now.Format(verboseTimeFmt))
		verbose.Println(intro, "     until: ",
			timespec.Target(ts, now).Format(verboseTimeFmt))
		verbose.Println(intro,
			"   waiting: ", strconv.FormatInt(wait, 10),
			" ", english.Plural("second", int(wait)))
	}

	return wait, nil
}

// run works out how long to wait and hands over to the trampoline which
// waits and then replaces this program with the command. If the command
// could not be run it reports the problem on errW. It returns the exit
// status the program should use.
func (prog *prog) run(errW io.Writer, now time.Time,
	tramp *trampoline.Trampoline,
) int {
	if len(prog.cmd) == 0 {
		fmt.Fprintln(errW, prog.usage())
		return exitStatusUsage
	}

	wait, err := prog.waitSecs(now)
	if err == nil {
		err = tramp.Run(wait, prog.cmd)
	}

	if err != nil {
		fmt.Fprintln(errW, prog.name+":", err)
	}

	return exitStatus(err)
}

// exitStatus returns the exit status corresponding to the error
func exitStatus(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, timespec.ErrBadTimeSpec):
		return exitStatusBadTimeSpec
	case errors.Is(err, trampoline.ErrNullByte):
		return exitStatusBadCommand
	}

	return exitStatusExecFailed
}
