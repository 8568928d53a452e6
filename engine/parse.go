package engine

// Parse drives state to completion by calling Advance until it reports
// done or returns a fatal error. On return, callers should inspect
// Errors to distinguish a successful parse from a backtracking failure.
//
// Parse clears the memoization cache once the state is done: Advance
// relies on it remaining populated mid-parse (Increment rebuilds it from
// the step list), but nothing needs it after the final result is
// reached, and dropping it
// here lets a completed State be held onto without pinning the whole
// memo table in memory.
func Parse(state *State) error {
	for !state.IsDone() {
		if err := state.Advance(); err != nil {
			return err
		}
	}
	state.memo = map[stepKey][]Step{}
	return nil
}
