/*
Package trampoline waits for a given number of seconds and then turns the
running program into the given command.

The replacement is done through a Replacer. On unix systems the default
Replacer is an ExecReplacer which replaces the program image in place so
that the process id, the open files and the parent's view of the exit
status all carry over to the command. Where that is not available a
SpawnReplacer runs the command as a child process and then exits with the
child's exit status; the observable difference is that the command runs
with a different process id.
*/
package trampoline
