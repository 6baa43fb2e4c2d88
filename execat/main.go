package main

import (
	"os"
	"time"
)

func main() {
	prog := newProg()
	if len(os.Args) > 0 {
		prog.name = os.Args[0]
	}

	ps := makeParamSet(prog)
	ps.Parse(paramArgs(os.Args[1:]))

	os.Exit(prog.run(os.Stderr, time.Now(), prog.makeTrampoline()))
}
