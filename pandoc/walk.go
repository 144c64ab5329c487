package pandoc

// Action rewrites one tagged element during Walk. Return (nil, false) to keep
// the element and descend into its children. Return (replacement, true) to
// splice the replacement elements in place of the element; an empty
// replacement deletes it. Replacement elements are not revisited, so an
// action may return nodes it would otherwise match (a figure that still
// wraps an image, a decorated image) without being re-applied to them.
type Action func(tag string, content any) (replacement []any, replace bool)

// Walk traverses a decoded JSON tree in document order and applies action to
// every tagged element found inside an array. It returns a rewritten copy of
// the tree; subtrees the action never touches are carried over as-is.
//
// Elements are only ever replaced inside arrays because pandoc containers
// (block lists, inline lists, list items) are arrays; an element sitting
// directly in an object value (for example a metadata entry) is descended
// into but not replaced, matching pandoc's own filter traversal.
func Walk(x any, action Action) any {
	switch x := x.(type) {
	case []any:
		out := make([]any, 0, len(x))
		for _, item := range x {
			tag, ok := Tag(item)
			if !ok {
				out = append(out, Walk(item, action))
				continue
			}
			replacement, replace := action(tag, Content(item))
			if !replace {
				out = append(out, Walk(item, action))
				continue
			}
			out = append(out, replacement...)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, v := range x {
			out[k] = Walk(v, action)
		}
		return out
	default:
		return x
	}
}
