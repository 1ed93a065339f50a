package automaton

import "fmt"

// MakeStates returns n sequential state labels q0 … q(n-1).
func MakeStates(n int) []string {
	if n <= 0 {
		return []string{}
	}
	states := make([]string, n)
	for i := range states {
		states[i] = fmt.Sprintf("q%d", i)
	}
	return states
}
