package xmlnode

// Index maps unique-id attribute values to their nodes.
// Built once per document and read-only afterwards.
type Index map[string]*Node

// maxHops bounds reference chasing. Exports are observed to be one hop
// deep, but a malformed ref cycle must degrade to the last resolved node
// instead of looping.
const maxHops = 8

// BuildIndex traverses every reachable node and records each id it finds.
// Later duplicates overwrite earlier ones; well-formed documents have no
// duplicates, and this is not treated as an error.
func BuildIndex(root *Node) Index {
	idx := make(Index)
	root.Walk(func(n *Node) {
		if n.ID != "" {
			idx[n.ID] = n
		}
	})
	return idx
}

// Resolve follows a node's ref attribute through the index. A node
// without a ref, or a ref whose target is absent, resolves to the node
// itself. Never returns nil for a non-nil input.
func Resolve(n *Node, idx Index) *Node {
	for i := 0; i < maxHops; i++ {
		if n == nil || n.Ref == "" {
			return n
		}
		target, ok := idx[n.Ref]
		if !ok {
			return n
		}
		n = target
	}
	return n
}

// FormattedValue resolves n and returns its fmt attribute, or "" when the
// node is absent or carries no formatted value.
func FormattedValue(n *Node, idx Index) string {
	if n == nil {
		return ""
	}
	return Resolve(n, idx).Fmt
}

// TextOrFormatted resolves n and returns its fmt attribute, falling back
// to its text content.
func TextOrFormatted(n *Node, idx Index) string {
	if n == nil {
		return ""
	}
	r := Resolve(n, idx)
	if r.Fmt != "" {
		return r.Fmt
	}
	return r.Text
}
