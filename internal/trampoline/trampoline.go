package trampoline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/nickwells/verbose.mod/verbose"
)

// DfltNoticeThreshold is the shortest wait, in seconds, for which the
// "Waiting for ..." notice is printed
const DfltNoticeThreshold = 60

var (
	// ErrNullByte is wrapped by the error returned when a command argument
	// contains a null byte. Such an argument cannot be passed to the
	// replacement program.
	ErrNullByte = errors.New("the command contains a null byte")
	// ErrExecFailed is wrapped by the error returned when the command
	// cannot be found or cannot be run
	ErrExecFailed = errors.New("cannot run the command")
)

// Replacer replaces the running program with the program at path, giving
// it the arguments in argv (including argv[0]) and the environment in envv.
// If it succeeds it should not return; if it does return nil the
// replacement is taken to have completed.
type Replacer interface {
	Replace(path string, argv, envv []string) error
}

// Trampoline holds the collaborators used to wait and then replace the
// running program
type Trampoline struct {
	Replacer Replacer
	Sleep    func(time.Duration)
	LookPath func(string) (string, error)
	Stdout   io.Writer

	NoticeThreshold int64
	Quiet           bool
}

// New returns a Trampoline which will use the given Replacer and will
// otherwise use the standard sleep, path search and output
func New(r Replacer) *Trampoline {
	return &Trampoline{
		Replacer:        r,
		Sleep:           time.Sleep,
		LookPath:        exec.LookPath,
		Stdout:          os.Stdout,
		NoticeThreshold: DfltNoticeThreshold,
	}
}

// CheckCommand returns a non-nil error if the command is empty or if any
// part of it contains a null byte
func CheckCommand(cmd []string) error {
	if len(cmd) == 0 {
		return fmt.Errorf("%w: no command has been given", ErrExecFailed)
	}

	for i, arg := range cmd {
		if strings.IndexByte(arg, 0) >= 0 {
			return fmt.Errorf("%w: argument %d: %q", ErrNullByte, i, arg)
		}
	}

	return nil
}

// Run checks the command, prints the waiting notice (if the wait is long
// enough and the Trampoline is not Quiet), sleeps for waitSecs seconds and
// then replaces the running program with the command. The command is
// checked before the sleep starts. The executable is searched for in the
// directories in the PATH environment variable after the sleep.
func (t *Trampoline) Run(waitSecs int64, cmd []string) error {
	if err := CheckCommand(cmd); err != nil {
		return err
	}

	if !t.Quiet && waitSecs >= t.NoticeThreshold {
		fmt.Fprintf(t.Stdout, "Waiting for %d seconds\n", waitSecs)
	}

	t.Sleep(time.Duration(waitSecs) * time.Second)

	// a PATH entry of "." is searched, as execvp does
	path, err := t.LookPath(cmd[0])
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return fmt.Errorf("%w: %w", ErrExecFailed, err)
	}

	verbose.Println("running: ", path)

	if err := t.Replacer.Replace(path, cmd, os.Environ()); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrExecFailed, path, err)
	}

	return nil
}
