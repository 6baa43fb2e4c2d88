//go:build unix

package trampoline

import "golang.org/x/sys/unix"

// ExecReplacer replaces the running program using the execve system call.
// The process id and open file descriptors are kept.
type ExecReplacer struct{}

// Replace calls execve. It only returns if the call fails.
func (ExecReplacer) Replace(path string, argv, envv []string) error {
	return unix.Exec(path, argv, envv)
}

// DfltReplacer returns the Replacer to use when none has been chosen
func DfltReplacer() Replacer {
	return ExecReplacer{}
}
