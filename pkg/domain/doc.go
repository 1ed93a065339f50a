/*
Package domain contains the core domain models for the dfa engine.

It defines the vocabulary shared by the automaton, its loaders and its
presentation layers. This package is kept pure and free of I/O.

# Key Entities

  - Symbol: a transition label, either a Literal or a DigitRange class.
  - Definition: the 5-tuple used to construct an automaton.
  - Table: the ordered transition table (source -> symbol -> destination).
  - Transition: a single (source, symbol, destination) triple.
*/
package domain
