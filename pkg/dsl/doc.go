/*
Package dsl provides a Go DSL for programmatically constructing automata.

Go map literals do not keep insertion order, and declared symbol order decides
which transition wins when several symbols match. The builder records
everything in call order so that tie-breaking stays under the caller's control.

Example usage:

	package main

	import (
		"github.com/aretw0/dfa/pkg/dsl"
	)

	func main() {
		b := dsl.New("integers").
			Alphabet("0", "1-9", "0-9").
			Start("q0").
			Accept("q1", "q2")

		b.From("q0").
			On("0", "q2").
			On("1-9", "q1")

		b.From("q1").
			On("0-9", "q1")

		eng := b.Build()
		_ = eng.IsAccepted("42") // true
	}
*/
package dsl
