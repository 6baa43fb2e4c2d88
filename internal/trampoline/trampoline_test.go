package trampoline

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

// fakeReplacer records the program it was asked to replace the running
// program with
type fakeReplacer struct {
	calls int
	path  string
	argv  []string
	err   error
}

// Replace records the arguments and returns the preset error
func (fr *fakeReplacer) Replace(path string, argv, _ []string) error {
	fr.calls++
	fr.path = path
	fr.argv = argv

	return fr.err
}

// sleepRecorder records the durations it is asked to sleep for
type sleepRecorder struct {
	sleeps []time.Duration
}

// sleep records the duration
func (sr *sleepRecorder) sleep(d time.Duration) {
	sr.sleeps = append(sr.sleeps, d)
}

// lookPathFound is a LookPath func which finds every command in /bin
func lookPathFound(name string) (string, error) {
	return "/bin/" + name, nil
}

var errNotFound = errors.New(`exec: "nonesuch": executable file not found`)

// lookPathNotFound is a LookPath func which finds nothing
func lookPathNotFound(_ string) (string, error) {
	return "", errNotFound
}

// lookPathDot is a LookPath func which finds every command in the current
// directory through a PATH entry of "."
func lookPathDot(name string) (string, error) {
	return "./" + name, &exec.Error{Name: name, Err: exec.ErrDot}
}

func TestRun(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		waitSecs   int64
		cmd        []string
		quiet      bool
		threshold  int64
		lookPath   func(string) (string, error)
		replaceErr error

		expErr      error
		expOut      string
		expSleeps   int
		expReplaces int
		expPath     string
	}{
		{
			ID:          testhelper.MkID("short wait, no notice"),
			waitSecs:    59,
			cmd:         []string{"echo", "hello", "world"},
			threshold:   DfltNoticeThreshold,
			lookPath:    lookPathFound,
			expSleeps:   1,
			expReplaces: 1,
			expPath:     "/bin/echo",
		},
		{
			ID:          testhelper.MkID("wait at the threshold, notice shown"),
			waitSecs:    60,
			cmd:         []string{"echo"},
			threshold:   DfltNoticeThreshold,
			lookPath:    lookPathFound,
			expOut:      "Waiting for 60 seconds\n",
			expSleeps:   1,
			expReplaces: 1,
			expPath:     "/bin/echo",
		},
		{
			ID:          testhelper.MkID("long wait, quiet"),
			waitSecs:    3600,
			cmd:         []string{"echo"},
			quiet:       true,
			threshold:   DfltNoticeThreshold,
			lookPath:    lookPathFound,
			expSleeps:   1,
			expReplaces: 1,
			expPath:     "/bin/echo",
		},
		{
			ID:          testhelper.MkID("lower threshold"),
			waitSecs:    5,
			cmd:         []string{"date"},
			threshold:   5,
			lookPath:    lookPathFound,
			expOut:      "Waiting for 5 seconds\n",
			expSleeps:   1,
			expReplaces: 1,
			expPath:     "/bin/date",
		},
		{
			ID:        testhelper.MkID("null byte in the command name"),
			waitSecs:  3600,
			cmd:       []string{"ec\x00ho", "hello"},
			threshold: DfltNoticeThreshold,
			lookPath:  lookPathFound,
			expErr:    ErrNullByte,
		},
		{
			ID:        testhelper.MkID("null byte in a later argument"),
			waitSecs:  3600,
			cmd:       []string{"echo", "hello", "wor\x00ld"},
			threshold: DfltNoticeThreshold,
			lookPath:  lookPathFound,
			expErr:    ErrNullByte,
		},
		{
			ID:        testhelper.MkID("command not found"),
			waitSecs:  1,
			cmd:       []string{"nonesuch"},
			threshold: DfltNoticeThreshold,
			lookPath:  lookPathNotFound,
			expErr:    ErrExecFailed,
			expSleeps: 1,
		},
		{
			ID:          testhelper.MkID("found in the current directory"),
			waitSecs:    1,
			cmd:         []string{"hello"},
			threshold:   DfltNoticeThreshold,
			lookPath:    lookPathDot,
			expSleeps:   1,
			expReplaces: 1,
			expPath:     "./hello",
		},
		{
			ID:          testhelper.MkID("replacement fails"),
			waitSecs:    1,
			cmd:         []string{"echo"},
			threshold:   DfltNoticeThreshold,
			lookPath:    lookPathFound,
			replaceErr:  errors.New("permission denied"),
			expErr:      ErrExecFailed,
			expSleeps:   1,
			expReplaces: 1,
			expPath:     "/bin/echo",
		},
	}

	for _, tc := range testCases {
		fr := &fakeReplacer{err: tc.replaceErr}
		sr := &sleepRecorder{}
		out := &bytes.Buffer{}

		tramp := New(fr)
		tramp.Sleep = sr.sleep
		tramp.LookPath = tc.lookPath
		tramp.Stdout = out
		tramp.Quiet = tc.quiet
		tramp.NoticeThreshold = tc.threshold

		err := tramp.Run(tc.waitSecs, tc.cmd)
		if !errors.Is(err, tc.expErr) {
			t.Log(tc.IDStr())
			t.Logf("\t: expected error: %v\n", tc.expErr)
			t.Logf("\t:   actual error: %v\n", err)
			t.Errorf("\t: unexpected error\n")
		}

		testhelper.DiffString(t, tc.IDStr(), "output", out.String(), tc.expOut)
		testhelper.DiffInt(t, tc.IDStr(), "sleeps", len(sr.sleeps), tc.expSleeps)
		testhelper.DiffInt(t, tc.IDStr(), "replacements", fr.calls, tc.expReplaces)

		if len(sr.sleeps) > 0 {
			testhelper.DiffInt(t, tc.IDStr(), "sleep duration (ns)",
				int64(sr.sleeps[0]), tc.waitSecs*int64(time.Second))
		}

		if fr.calls > 0 {
			testhelper.DiffString(t, tc.IDStr(), "path", fr.path, tc.expPath)
			testhelper.DiffStringSlice(t, tc.IDStr(), "argv", fr.argv, tc.cmd)
		}
	}
}

func TestRunDotInPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH handling differs on windows")
	}

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "hello"),
		[]byte("#!/bin/sh\necho hello\n"), 0o755)
	if err != nil {
		t.Fatal("cannot create the test executable:", err)
	}

	t.Chdir(dir)
	t.Setenv("PATH", ".:/usr/bin:/bin")

	fr := &fakeReplacer{}
	sr := &sleepRecorder{}

	tramp := New(fr)
	tramp.Sleep = sr.sleep
	tramp.Stdout = &bytes.Buffer{}

	if err := tramp.Run(0, []string{"hello", "world"}); err != nil {
		t.Fatal("unexpected error:", err)
	}

	testhelper.DiffInt(t, "dot in PATH", "replacements", fr.calls, 1)
	testhelper.DiffString(t, "dot in PATH", "path",
		filepath.Base(fr.path), "hello")
	testhelper.DiffStringSlice(t, "dot in PATH", "argv",
		fr.argv, []string{"hello", "world"})
}

func TestCheckCommand(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		cmd []string
	}{
		{
			ID:  testhelper.MkID("good"),
			cmd: []string{"ls", "-l", ""},
		},
		{
			ID:     testhelper.MkID("empty"),
			cmd:    []string{},
			ExpErr: testhelper.MkExpErr("no command has been given"),
		},
		{
			ID:  testhelper.MkID("null byte"),
			cmd: []string{"ls", "\x00"},
			ExpErr: testhelper.MkExpErr(
				"the command contains a null byte", "argument 1"),
		},
	}

	for _, tc := range testCases {
		err := CheckCommand(tc.cmd)
		testhelper.CheckExpErr(t, err, tc)
	}
}
