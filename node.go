package linkedlist

// node is a single link in the chain, holding one element.
//
// The chain is nil-terminated at both ends. The next pointer is the
// owning direction: the list keeps the chain alive head-first and tears
// it down by walking next links. prev is a back-reference used only for
// traversal.
type node[T any] struct {
	value      T
	next, prev *node[T]
}

func newNode[T any](v T) *node[T] {
	return &node[T]{value: v}
}
