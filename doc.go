/*
Package turing simulates single-tape, single-head deterministic Turing machines.

A machine is described by an immutable domain.Definition (states, alphabet,
blank, initial and accepting states, transition table). The Engine owns the
mutable execution state of one run: a sparse, logically infinite tape, the head
position, the current state and whether the machine has halted.

# Lifecycle

An Engine has two operational states. It is Halted when created and after a
step finds no transition for (current state, symbol under head). Initialize
moves it to Running. Step on a halted machine and Accepted on a running one
are caller bugs and return errors wrapping domain.ErrInvalidOperation; halting
itself is never an error.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/turing"
		"github.com/aretw0/turing/pkg/machines"
	)

	func main() {
		eng, err := turing.New(machines.Adder())
		if err != nil {
			log.Fatal(err)
		}

		eng.Initialize(machines.ParseTape("11_10", 0))

		// The caller owns the loop (and any pacing or rendering between steps).
		for !eng.Halted() {
			if err := eng.Step(); err != nil {
				log.Fatal(err)
			}
		}

		accepted, err := eng.Accepted()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(eng.CurrentState(), accepted)
	}

For a ready-made loop with pacing, step budgets and tape rendering see
package runner.
*/
package turing
