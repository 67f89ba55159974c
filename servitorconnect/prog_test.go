package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nickwells/testhelper.mod/v2/testhelper"
	"github.com/tsweet77/servitorconnect/internal/repeater"
)

// mkTestProg returns a prog which reads the given input, writes to the
// returned buffers and does not sleep
func mkTestProg(input string) (*prog, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	prog := newProg()
	prog.stdin = strings.NewReader(input)
	prog.stdout = &stdout
	prog.stderr = &stderr
	prog.doSleep = false

	return prog, &stdout, &stderr
}

// checkContains reports an error for each of the expected strings that is
// not in the value
func checkContains(t *testing.T, id, name, val string, exp ...string) {
	t.Helper()

	for _, s := range exp {
		if !strings.Contains(val, s) {
			t.Log(id)
			t.Logf("\t: %s:\n%s", name, val)
			t.Errorf("\t: should contain: %q", s)
		}
	}
}

func TestRun(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		input      string
		progSetter func(*prog)
		expStatus  int
		expStdout  []string
		expStderr  []string
	}{
		{
			ID: testhelper.MkID("intent given"),
			progSetter: func(prog *prog) {
				prog.intent = "test"
				prog.srcGiven = true
				prog.srcKind = repeater.KindText
				prog.sched = repeater.Schedule{Repeats: 1, DurationSeconds: 2}
			},
			expStatus: exitStatusOK,
			expStdout: []string{
				"Source: Intent 'test'\n",
				"Repeats per Hour: 1\n",
				"Duration: 00:00:02\n",
				"\n" + burstMsg + "\n",
				"\rIntent 'test' Repeated 1 Time Hourly: 00:00:02" +
					"\rIntent 'test' Repeated 1 Time Hourly: 00:00:01\n",
				completedMsg + "\n",
			},
		},
		{
			ID: testhelper.MkID("file given"),
			progSetter: func(prog *prog) {
				prog.filename = "testdata/intention.txt"
				prog.srcGiven = true
				prog.srcKind = repeater.KindFile
				prog.sched = repeater.Schedule{Repeats: 5, DurationSeconds: 1}
			},
			expStatus: exitStatusOK,
			expStdout: []string{
				"Source: File 'testdata/intention.txt'\n",
				"Repeats per Hour: 5\n",
				"Repeated 5 Times Hourly: 00:00:01\n",
				completedMsg + "\n",
			},
		},
		{
			ID: testhelper.MkID("missing file"),
			progSetter: func(prog *prog) {
				prog.filename = "testdata/nonesuch.txt"
				prog.srcGiven = true
				prog.srcKind = repeater.KindFile
				prog.sched = repeater.Schedule{Repeats: 1, DurationSeconds: 2}
			},
			expStatus: exitStatusFail,
			expStderr: []string{
				"Error reading file 'testdata/nonesuch.txt'",
			},
		},
		{
			ID:        testhelper.MkID("everything prompted for"),
			input:     "be well\nx\n2\n3601\n",
			expStatus: exitStatusOK,
			expStdout: []string{
				bannerMsg + "\n" + intentionPrompt,
				notAnIntMsg,
				"Source: Intent 'be well'\n",
				"Repeats per Hour: 2\n",
				"Duration: 01:00:01\n",
				"Repeated 2 Times Hourly: 00:00:01\n",
				completedMsg + "\n",
			},
		},
		{
			ID:        testhelper.MkID("prompted duration too long"),
			input:     "be well\n2\n10000000000\n5\n",
			expStatus: exitStatusOK,
			expStdout: []string{
				"Please enter a positive integer no greater than" +
					" 9223372036.\n",
				"Duration: 00:00:05\n",
				completedMsg + "\n",
			},
		},
		{
			ID:        testhelper.MkID("prompted input ends"),
			input:     "be well\n",
			expStatus: exitStatusFail,
			expStderr: []string{"couldn't get the repeats"},
		},
		{
			ID: testhelper.MkID("no countdown"),
			progSetter: func(prog *prog) {
				prog.intent = "test"
				prog.srcGiven = true
				prog.sched = repeater.Schedule{Repeats: 1, DurationSeconds: 2}
				prog.noCountdown = true
			},
			expStatus: exitStatusOK,
			expStdout: []string{
				"\n" + burstMsg + "\n" + completedMsg + "\n",
			},
		},
	}

	for _, tc := range testCases {
		prog, stdout, stderr := mkTestProg(tc.input)
		if tc.progSetter != nil {
			tc.progSetter(prog)
		}

		status := prog.run()

		testhelper.DiffInt(t, tc.IDStr(), "exit status", status, tc.expStatus)
		checkContains(t, tc.IDStr(), "stdout", stdout.String(),
			tc.expStdout...)
		checkContains(t, tc.IDStr(), "stderr", stderr.String(),
			tc.expStderr...)
	}
}

func TestRepeatBursts(t *testing.T) {
	prog, stdout, _ := mkTestProg("")
	prog.noCountdown = true
	prog.sched = repeater.Schedule{Repeats: 4, DurationSeconds: 7300}

	rs, err := prog.repeat(context.Background(), repeater.NewTextSource("x"))
	if err != nil {
		t.Fatal("unexpected error: ", err)
	}

	const id = "three bursts"

	testhelper.DiffInt(t, id, "bursts", rs.Bursts, 3)
	testhelper.DiffInt(t, id, "reads", int(rs.Reads), 12)
	testhelper.DiffInt(t, id, "burst messages",
		strings.Count(stdout.String(), burstMsg), 3)
}

func TestRepeatInterrupted(t *testing.T) {
	prog, stdout, _ := mkTestProg("")
	prog.sched = repeater.Schedule{Repeats: 1, DurationSeconds: 100}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rs, err := prog.repeat(ctx, repeater.NewTextSource("x"))
	if err != nil {
		t.Fatal("an interruption should not be an error: ", err)
	}

	testhelper.DiffString(t, "interrupted", "outcome",
		rs.Outcome.String(), repeater.Interrupted.String())

	prog.reportOutcome(rs)

	checkContains(t, "interrupted", "stdout", stdout.String(),
		"\n"+interruptedMsg+"\n")

	if strings.Contains(stdout.String(), completedMsg) {
		t.Errorf("an interrupted run should not report completion")
	}
}
