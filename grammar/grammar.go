package grammar

// Grammar is a mapping from rule name to rule. Keys are unique; order is
// irrelevant. One name is designated the start rule by whoever builds
// the engine.State, not by the Grammar itself.
type Grammar map[string]*Rule

// New builds a Grammar from a set of named rules. Each rule is copied
// once into the returned map so that its address (used for memoization
// identity, see engine.Step) stays stable for the grammar's lifetime.
func New(rules map[string]Rule) Grammar {
	g := make(Grammar, len(rules))
	for name, r := range rules {
		rc := r
		g[name] = &rc
	}
	return g
}
