package markup

// Sequence concatenates parts in argument order, flattening one level.
func Sequence(parts ...[]Node) []Node {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Node, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Single wraps one node. A nil node yields an empty sequence.
func Single(n Node) []Node {
	if n == nil {
		return []Node{}
	}
	return []Node{n}
}

// Optional returns seq, or an empty sequence when seq is absent.
func Optional(seq []Node) []Node {
	if seq == nil {
		return []Node{}
	}
	return seq
}

// First passes the sequence of an if branch through unchanged.
func First(seq []Node) []Node { return Optional(seq) }

// Second passes the sequence of an else branch through unchanged.
func Second(seq []Node) []Node { return Optional(seq) }

// Either evaluates then or otherwise depending on cond.
// A nil branch function yields an empty sequence.
func Either(cond bool, then, otherwise func() []Node) []Node {
	if cond {
		if then == nil {
			return []Node{}
		}
		return First(then())
	}
	if otherwise == nil {
		return []Node{}
	}
	return Second(otherwise())
}

// When evaluates fn only if cond holds.
func When(cond bool, fn func() []Node) []Node {
	return Either(cond, fn, nil)
}

// FlattenMany concatenates the bodies of a loop in iteration order.
func FlattenMany(seqs [][]Node) []Node {
	return Sequence(seqs...)
}

// ForEach builds one sequence per item and flattens them in order.
func ForEach[T any](items []T, fn func(int, T) []Node) []Node {
	seqs := make([][]Node, 0, len(items))
	for i, item := range items {
		seqs = append(seqs, fn(i, item))
	}
	return FlattenMany(seqs)
}

// Build composes parts into a single renderable group.
func Build(parts ...[]Node) Group {
	return Group(Sequence(parts...))
}
