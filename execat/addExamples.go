package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message.
func addExamples(ps *param.PSet) error {
	ps.AddExample(`execat 17:30 make release`,
		"This will wait until half past five in the evening and then"+
			" run 'make release'."+
			"\n\n"+
			"If you start the program at 18:00 then it will wait until"+
			" 17:30 tomorrow.")
	ps.AddExample(`execat +00:00:30 echo hello`,
		"This will wait for 30 seconds and then print 'hello'. The"+
			" wait is less than a minute so nothing is printed before"+
			" the command runs.")
	ps.AddExample(`execat +01:00 ls -l /tmp`,
		"This will print 'Waiting for 3600 seconds', wait for an"+
			" hour and then list the '/tmp' directory. The '-l' is"+
			" passed to ls, not interpreted by execat.")
	ps.AddExample(`execat -q -notice-threshold=5 +00:00:10 date`,
		"This will wait for 10 seconds and then show the date. The"+
			" parameters come before the time; without the '-q' it"+
			" would print 'Waiting for 10 seconds' first.")
	ps.AddExample(`execat 02:00 ./backup.sh & wait $!`,
		"This runs the backup script at two in the morning. The"+
			" shell's wait reports the exit status of the script since"+
			" the script takes over the process started by the shell.")

	return nil
}
