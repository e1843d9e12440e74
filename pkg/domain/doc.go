/*
Package domain contains the core domain models of the Turing machine simulator.

It defines the immutable machine definition (states, alphabet, transition table)
and the read-only views of an execution (Configuration, Status). The package is
kept pure and free of I/O so that both the engine and its collaborators (runner,
display, HTTP adapter) can share the same vocabulary.

# Key Entities

  - Definition: The machine's program and alphabet. Never mutated after construction.
  - Key / Action: A transition table entry, (state, read) -> (next, write, move).
  - Configuration: A snapshot of head, current state, status and written tape cells.
  - LifecycleHooks: Observation callbacks fired by the engine after each mutation.
*/
package domain
