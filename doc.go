/*
Package dfa decides membership for deterministic finite automata.

An automaton is the classic 5-tuple: a set of states, an input alphabet, a
transition table, a start state and a set of accepting states. Input strings
are consumed one character at a time; a string is accepted when every
character has a matching transition and the run ends in an accepting state.
A missing transition is a rejection, never an error.

# Symbols

Transition labels are literal characters, with two digit classes:

  - "1-9" matches any single digit from 1 to 9.
  - "0-9" matches any single digit.

When a state declares several labels that match the same character, the
first one declared wins.

# Usage

Definitions are usually kept in YAML files:

	name: integers
	states: [q0, q1, q2]
	start: q0
	accepting: [q1, q2]
	transitions:
	  q0:
	    "0": q1
	    "1-9": q2
	  q2:
	    "0-9": q2

Load one and query it:

	eng, err := dfa.Load("automata/integers.yaml", dfa.WithStrict())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(eng.IsAccepted("2026")) // true
	fmt.Println(eng.IsAccepted("007"))  // false

Engines can also be built in code with the fluent builder in pkg/dsl, or
fetched by name from any ports.DefinitionLoader (files, Loam, Redis, memory)
with Open.

# Architecture

The decision core (pkg/automaton) is pure: no I/O, no errors, immutable after
construction and safe for concurrent use. Everything else (loaders, stores,
diagram renderers, the HTTP and MCP adapters and the dfa command) sits around
it and talks to it through its read-only view.
*/
package dfa
