package segment

// acNode is one state in the Aho-Corasick automaton. Children are owned by
// the automaton's node arena; fail is a non-owning index back into the same
// arena, so the structure has back-edges but no ownership cycles.
type acNode struct {
	children map[byte]int
	fail     int
	output   []string // patterns terminating at this node, including those inherited via fail links
}

// AhoCorasick is a multi-pattern substring finder over byte strings. Patterns
// are added before Finalize; after Finalize no further Add calls are
// permitted. Children are stored as a byte-keyed map rather than a fixed
// 256-entry table per node: dictionaries in this domain run into the hundreds
// of thousands of terms, and most nodes have only a handful of live edges.
type AhoCorasick struct {
	nodes     []acNode
	finalized bool
}

// NewAhoCorasick returns an empty automaton with just the root node.
func NewAhoCorasick() *AhoCorasick {
	ac := &AhoCorasick{}
	ac.nodes = append(ac.nodes, acNode{children: make(map[byte]int)})
	return ac
}

// Add inserts pattern into the trie, to be reported verbatim by FindAll.
// Empty patterns are ignored. Panics if called after Finalize.
func (ac *AhoCorasick) Add(pattern string) {
	if ac.finalized {
		panic("segment: AhoCorasick.Add called after Finalize")
	}
	if pattern == "" {
		return
	}
	node := 0
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		next, ok := ac.nodes[node].children[c]
		if !ok {
			ac.nodes = append(ac.nodes, acNode{children: make(map[byte]int)})
			next = len(ac.nodes) - 1
			ac.nodes[node].children[c] = next
		}
		node = next
	}
	ac.nodes[node].output = append(ac.nodes[node].output, pattern)
}

// Finalize computes fail links via BFS over the trie and merges each node's
// inherited output with its fail-link ancestor's output, so FindAll never
// needs to walk the fail chain at match time. Safe to call once.
func (ac *AhoCorasick) Finalize() {
	if ac.finalized {
		return
	}
	queue := make([]int, 0, len(ac.nodes))
	for _, child := range ac.nodes[0].children {
		ac.nodes[child].fail = 0
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for c, child := range ac.nodes[node].children {
			queue = append(queue, child)
			failState := ac.nodes[node].fail
			for {
				if next, ok := ac.nodes[failState].children[c]; ok {
					ac.nodes[child].fail = next
					break
				}
				if failState == 0 {
					ac.nodes[child].fail = 0
					break
				}
				failState = ac.nodes[failState].fail
			}
			ac.nodes[child].output = append(ac.nodes[child].output, ac.nodes[ac.nodes[child].fail].output...)
		}
	}
	ac.finalized = true
}

// FindAll returns every pattern occurring as a substring of haystack, in
// order of match-end position. Duplicates are possible (e.g. an input
// containing the same short pattern twice) and are retained.
func (ac *AhoCorasick) FindAll(haystack string) []string {
	var matches []string
	node := 0
	for i := 0; i < len(haystack); i++ {
		c := haystack[i]
		node = ac.step(node, c)
		if len(ac.nodes[node].output) > 0 {
			matches = append(matches, ac.nodes[node].output...)
		}
	}
	return matches
}

// step follows the transition for c from node, falling back through fail
// links until a transition (possibly the root's) is found.
func (ac *AhoCorasick) step(node int, c byte) int {
	for {
		if next, ok := ac.nodes[node].children[c]; ok {
			return next
		}
		if node == 0 {
			return 0
		}
		node = ac.nodes[node].fail
	}
}
