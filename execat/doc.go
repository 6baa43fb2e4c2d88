/*
The execat command waits until a given time of day, or for a given length of
time, and then replaces itself with the command given on the rest of the
command line. The command keeps the process id of execat, inherits its
standard input, output and error and its exit status is the exit status seen
by whoever started execat.

	execat 17:30 make release
	execat +00:10:00 ssh remote-host uptime

An absolute time which has already passed today (or is exactly now) is taken
to mean that time tomorrow. A relative time starting with a '+' is a number of
hours, minutes and optional seconds to wait.

The exit status is 1 for a usage error, 2 for a badly formed time, 3 if the
command cannot be run and 255 if an argument contains a null byte.
*/
package main
