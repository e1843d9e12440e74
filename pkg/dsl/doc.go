/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing
Turing machine definitions.

It allows developers to define transition tables using a type-safe, fluent builder pattern
instead of spelling out domain.Definition literals. States and symbols are collected from
the rules as they are added.

Example usage:

	b := dsl.New("A").Blank("0")

	b.State("A").
		Right("0", "1", "B").
		Left("1", "1", "B")

	b.State("B").
		Left("0", "1", "A").
		Right("1", "1", "H")

	b.State("H").Accepting()

	def, err := b.Build()
	// ... pass def to turing.New(...)
*/
package dsl
