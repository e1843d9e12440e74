/*
Package runner implements the execution loop and trace rendering for a Turing machine.

The engine itself never prints, sleeps or loops: the runner owns
`for !halted { observe; step; pace }`, enforces an optional step budget,
honours context cancellation between steps and queries acceptance exactly once
after the machine halts.

# Key Components

  - Runner: The loop. Configured with functional options (delay, budget, observers).
  - Observer: Receives a read-only View of the machine before every step.
  - TextHandler: Prints a tape window with a caret under the head.
  - JSONHandler: Emits an NDJSON trace of configuration diffs and the final result.

# Usage

	eng := turing.MustNew(machines.Adder())
	r := runner.NewRunner(
		runner.WithDelay(time.Second),
		runner.WithObserver(runner.NewTextHandler(os.Stdout)),
	)

	res, err := r.Run(ctx, eng, machines.ParseTape("11_10", 0))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Accepted)
*/
package runner
