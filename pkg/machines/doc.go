/*
Package machines supplies ready-made machine definitions and seed tapes.

Every built-in is registered in a Registry under a short name so that the CLI
and the HTTP adapter can look it up. Definitions are built fresh on every call,
so callers never share a mutable table.

	m, err := machines.Get("adder")
	if err != nil {
		log.Fatal(err)
	}
	seed := machines.ParseTape(m.SampleTape, 0)
*/
package machines
