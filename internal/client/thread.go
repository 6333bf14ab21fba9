package client

import "fmt"

// Thread is a post in its conversation: the chain of ancestors back to
// the origin and the tree of replies below the post. Reply structure is
// held as indexes into a flat node arena rather than pointers between
// statuses, so nothing here aliases or mutates the fetched statuses.
type Thread struct {
	// Ancestors is the reply chain from the origin post down to the
	// direct parent, origin first.
	Ancestors []Status

	// Nodes is the reply tree arena. Nodes[0] is the post the thread was
	// fetched for; all other nodes are descendants.
	Nodes []ThreadNode
}

// ThreadNode is one post in the reply tree.
type ThreadNode struct {
	Status Status

	// Parent is the index of the node this one replies to, -1 for the
	// root node.
	Parent int

	// Replies are indexes of direct replies, in server order.
	Replies []int
}

// Root returns the post the thread was fetched for.
func (t *Thread) Root() *Status {
	return &t.Nodes[0].Status
}

// BuildThread arranges a context fetch into a Thread. Ancestors arrive in
// arbitrary order and are sorted into the reply chain ending at post;
// descendants are attached to their parents breadth-wise. Replies to posts
// missing from the fetch are dropped.
func BuildThread(post Status, ancestors, descendants []Status) (*Thread, error) {
	thread := &Thread{
		Nodes: []ThreadNode{{Status: post, Parent: -1}},
	}

	if len(ancestors) > 0 {
		ordered, err := orderAncestors(ancestors)
		if err != nil {
			return nil, err
		}
		thread.Ancestors = ordered
	}

	if len(descendants) > 0 {
		// Map of status ID to arena index for everything already placed.
		placed := map[string]int{post.ID: 0}

		remaining := descendants
		for len(remaining) > 0 {
			var orphans []Status
			attached := false

			for _, d := range remaining {
				if d.InReplyToID == "" {
					return nil, NewParseError(
						fmt.Sprintf("descendant %s is not a reply to anything", d.ID), nil)
				}

				parent, ok := placed[d.InReplyToID]
				if !ok {
					orphans = append(orphans, d)
					continue
				}

				index := len(thread.Nodes)
				thread.Nodes = append(thread.Nodes, ThreadNode{Status: d, Parent: parent})
				thread.Nodes[parent].Replies = append(thread.Nodes[parent].Replies, index)
				placed[d.ID] = index
				attached = true
			}

			if !attached {
				// Replies to posts outside the fetch; nothing to hang
				// them from.
				break
			}
			remaining = orphans
		}
	}

	return thread, nil
}

// orderAncestors sorts a fetched ancestor set into reply-chain order,
// origin first. The set must form a single unbranched chain.
func orderAncestors(ancestors []Status) ([]Status, error) {
	var origin *Status
	byParent := make(map[string]*Status, len(ancestors))

	for i := range ancestors {
		a := &ancestors[i]
		if a.InReplyToID == "" {
			if origin != nil {
				return nil, NewParseError("ancestor chain has more than one origin", nil)
			}
			origin = a
		} else {
			if _, dup := byParent[a.InReplyToID]; dup {
				return nil, NewParseError(
					fmt.Sprintf("more than one ancestor replies to %s", a.InReplyToID), nil)
			}
			byParent[a.InReplyToID] = a
		}
	}

	if origin == nil {
		return nil, NewParseError("ancestor chain has no origin", nil)
	}

	ordered := make([]Status, 0, len(ancestors))
	current := origin
	for current != nil {
		ordered = append(ordered, *current)
		current = byParent[current.ID]
	}

	if len(ordered) != len(ancestors) {
		return nil, NewParseError("ancestor chain is disconnected", nil)
	}
	return ordered, nil
}
