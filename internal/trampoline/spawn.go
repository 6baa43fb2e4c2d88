package trampoline

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// SpawnReplacer runs the command as a child process with this program's
// standard input, output and error, waits for it to finish and then exits
// with its exit status. A child killed by a signal gives an exit status of
// 1.
type SpawnReplacer struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(int)
}

// NewSpawnReplacer returns a SpawnReplacer connected to the standard I/O
// streams which exits the program when the child completes
func NewSpawnReplacer() *SpawnReplacer {
	return &SpawnReplacer{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exit:   os.Exit,
	}
}

// Replace runs the command and exits with its status. It returns an error
// if the command could not be started.
func (sr *SpawnReplacer) Replace(path string, argv, envv []string) error {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    envv,
		Stdin:  sr.Stdin,
		Stdout: sr.Stdout,
		Stderr: sr.Stderr,
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return err
		}
	}

	status := cmd.ProcessState.ExitCode()
	if status < 0 {
		status = 1
	}

	sr.Exit(status)

	return nil
}
