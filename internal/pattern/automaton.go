package pattern

// automaton is an Aho-Corasick machine over bytes. Every state carries the
// outputs of its whole failure chain, so one lookup per input byte tells
// whether an include or exclude pattern ends at that position.
type automaton struct {
	nodes []node
	fold  bool
}

type node struct {
	next map[byte]int32
	fail int32

	// include is the length of the longest include pattern ending in this
	// state, 0 when none does.
	include int
	exclude bool
}

// foldByte lowercases ASCII letters and leaves every other byte alone.
func foldByte(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func newAutomaton(include, exclude []string, fold bool) *automaton {
	a := &automaton{
		nodes: []node{{next: make(map[byte]int32)}},
		fold:  fold,
	}
	for _, p := range include {
		end := a.insert(p)
		if len(p) > a.nodes[end].include {
			a.nodes[end].include = len(p)
		}
	}
	for _, p := range exclude {
		end := a.insert(p)
		a.nodes[end].exclude = true
	}
	a.link()
	return a
}

// insert adds p to the trie and returns its terminal state.
func (a *automaton) insert(p string) int32 {
	var cur int32
	for i := 0; i < len(p); i++ {
		b := a.normalize(p[i])
		child, ok := a.nodes[cur].next[b]
		if !ok {
			child = int32(len(a.nodes))
			a.nodes = append(a.nodes, node{next: make(map[byte]int32)})
			a.nodes[cur].next[b] = child
		}
		cur = child
	}
	return cur
}

// link computes failure links breadth first and merges outputs along them.
// A failure target is always shallower than its source, so its outputs are
// final by the time they are merged.
func (a *automaton) link() {
	queue := make([]int32, 0, len(a.nodes))
	for _, child := range a.nodes[0].next {
		a.nodes[child].fail = 0
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for b, v := range a.nodes[u].next {
			f := a.nodes[u].fail
			for {
				if t, ok := a.nodes[f].next[b]; ok {
					a.nodes[v].fail = t
					break
				}
				if f == 0 {
					a.nodes[v].fail = 0
					break
				}
				f = a.nodes[f].fail
			}

			target := a.nodes[a.nodes[v].fail]
			if target.include > a.nodes[v].include {
				a.nodes[v].include = target.include
			}
			if target.exclude {
				a.nodes[v].exclude = true
			}
			queue = append(queue, v)
		}
	}
}

func (a *automaton) normalize(b byte) byte {
	if a.fold {
		return foldByte(b)
	}
	return b
}

// step follows the goto function, falling back along failure links.
func (a *automaton) step(state int32, b byte) int32 {
	b = a.normalize(b)
	for {
		if t, ok := a.nodes[state].next[b]; ok {
			return t
		}
		if state == 0 {
			return 0
		}
		state = a.nodes[state].fail
	}
}
