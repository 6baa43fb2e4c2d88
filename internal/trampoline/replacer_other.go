//go:build !unix

package trampoline

// DfltReplacer returns the Replacer to use when none has been chosen. There
// is no execve on this system so the command is run as a child process.
func DfltReplacer() Replacer {
	return NewSpawnReplacer()
}
