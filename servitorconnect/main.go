package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// Created: Sat Oct 19 09:12:27 2024

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	os.Exit(prog.run())
}

// run resolves the intention and schedule and then repeats the intention,
// returning the exit status. The interrupt signal is only caught while the
// intention is being repeated; an interrupt while prompting stops the
// program as usual.
func (prog *prog) run() int {
	fmt.Fprint(prog.stdout, bannerMsg+"\n")

	src, err := prog.prepare()
	if err != nil {
		fmt.Fprintln(prog.stderr, err)
		return exitStatusFail
	}

	prog.showSummary(src)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, unix.SIGTERM)
	defer stop()

	rs, err := prog.repeat(ctx, src)
	if err != nil {
		fmt.Fprintln(prog.stderr, "The intention could not be repeated:", err)
		return exitStatusFail
	}

	prog.reportOutcome(rs)

	return exitStatusOK
}
