package hierarchy

import (
	"log/slog"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

// Builder reconstructs the list-item forest for a single section from an
// ordered sequence of list-item classifications. The flat per-item depth
// values are turned back into parent/child structure in one forward pass.
//
// Nodes live in an arena, in creation order. The active-path stack holds
// arena indices of the currently open ancestors, shallowest first; a node's
// Children slice is the only ownership edge. A builder is scoped to one
// section and must not be reused across header boundaries.
type Builder struct {
	log   *slog.Logger
	arena []*docmodel.ListItemNode
	stack []int // indices into arena, one open ancestor per depth
	roots []int // indices of top-level items
}

func NewBuilder(log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{log: log}
}

// Add places one classified list item into the forest. Attachment decisions
// are final: no re-parenting happens after a node is placed.
func (b *Builder) Add(item Classification) {
	node := &docmodel.ListItemNode{
		Marker: item.Marker,
		Text:   item.Text,
		Level:  item.Level,
	}
	b.arena = append(b.arena, node)
	idx := len(b.arena) - 1

	// Unwind: close any open subtree at or below the incoming depth. A new
	// item at level L continues an ancestor chain of length at most L.
	for len(b.stack) > item.Level {
		b.stack = b.stack[:len(b.stack)-1]
	}

	switch {
	case item.Level == 0:
		b.roots = append(b.roots, idx)
	case len(b.stack) == item.Level:
		// The stack top sits at exactly depth level-1: the intended parent.
		parent := b.arena[b.stack[len(b.stack)-1]]
		parent.Children = append(parent.Children, node)
	default:
		// Level jump with no open ancestor at depth level-1 (e.g. a section
		// opening at level 2). Flatten to top-level rather than failing.
		b.log.Info("list level jump without open ancestor, flattening to top level",
			"level", item.Level, "marker", item.Marker)
		b.roots = append(b.roots, idx)
	}

	// The new node becomes the active ancestor for deeper items regardless
	// of where it was attached.
	b.stack = append(b.stack, idx)
}

// Forest returns the section's top-level items in source order.
func (b *Builder) Forest() []*docmodel.ListItemNode {
	out := make([]*docmodel.ListItemNode, 0, len(b.roots))
	for _, idx := range b.roots {
		out = append(out, b.arena[idx])
	}
	return out
}

// BuildForest reconstructs a forest from an ordered item sequence using a
// fresh builder. Non-list classifications are ignored.
func BuildForest(items []Classification, log *slog.Logger) []*docmodel.ListItemNode {
	b := NewBuilder(log)
	for _, item := range items {
		if item.Kind != KindListItem {
			continue
		}
		b.Add(item)
	}
	return b.Forest()
}
