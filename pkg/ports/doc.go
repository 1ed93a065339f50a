/*
Package ports defines the driven ports (interfaces) around the automaton core.

These interfaces decouple the engine from where definitions come from and
where they are kept, so the same automata can be served from files, a Loam
repository, memory or Redis.

# Key Interfaces

  - DefinitionLoader: read-only source of named definitions.
  - DefinitionStore: a DefinitionLoader that can also save and delete.
*/
package ports
