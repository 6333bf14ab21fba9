package client

import "testing"

func status(id, inReplyTo string) Status {
	return Status{ID: id, InReplyToID: inReplyTo}
}

func TestBuildThreadEmpty(t *testing.T) {
	thread, err := BuildThread(status("5", ""), nil, nil)
	if err != nil {
		t.Fatalf("BuildThread failed: %v", err)
	}
	if len(thread.Ancestors) != 0 {
		t.Errorf("Expected no ancestors, got %d", len(thread.Ancestors))
	}
	if len(thread.Nodes) != 1 || thread.Root().ID != "5" {
		t.Errorf("Expected single root node 5, got %v", thread.Nodes)
	}
}

func TestBuildThreadAncestorOrdering(t *testing.T) {
	// Arrival order is arbitrary; the chain is 1 -> 2 -> 3 -> post 4.
	ancestors := []Status{
		status("3", "2"),
		status("1", ""),
		status("2", "1"),
	}

	thread, err := BuildThread(status("4", "3"), ancestors, nil)
	if err != nil {
		t.Fatalf("BuildThread failed: %v", err)
	}

	if len(thread.Ancestors) != 3 {
		t.Fatalf("Expected 3 ancestors, got %d", len(thread.Ancestors))
	}
	for i, want := range []string{"1", "2", "3"} {
		if thread.Ancestors[i].ID != want {
			t.Errorf("Ancestor %d: expected ID %s, got %s", i, want, thread.Ancestors[i].ID)
		}
	}
}

func TestBuildThreadReplyTree(t *testing.T) {
	// Post 1 has replies 2 and 3; 2 has reply 4. Child 4 arrives before
	// its parent to exercise the multi-pass attach.
	descendants := []Status{
		status("4", "2"),
		status("2", "1"),
		status("3", "1"),
	}

	thread, err := BuildThread(status("1", ""), nil, descendants)
	if err != nil {
		t.Fatalf("BuildThread failed: %v", err)
	}

	if len(thread.Nodes) != 4 {
		t.Fatalf("Expected 4 nodes, got %d", len(thread.Nodes))
	}

	root := thread.Nodes[0]
	if len(root.Replies) != 2 {
		t.Fatalf("Expected 2 direct replies, got %d", len(root.Replies))
	}
	first := thread.Nodes[root.Replies[0]]
	second := thread.Nodes[root.Replies[1]]
	if first.Status.ID != "2" || second.Status.ID != "3" {
		t.Errorf("Expected replies 2 then 3, got %s then %s", first.Status.ID, second.Status.ID)
	}
	if len(first.Replies) != 1 || thread.Nodes[first.Replies[0]].Status.ID != "4" {
		t.Errorf("Expected node 2 to have reply 4, got %v", first.Replies)
	}
	if thread.Nodes[first.Replies[0]].Parent != root.Replies[0] {
		t.Errorf("Expected node 4's parent to be node 2")
	}
}

func TestBuildThreadDropsOrphans(t *testing.T) {
	// Reply to a post that isn't in the fetch just disappears.
	descendants := []Status{
		status("2", "1"),
		status("9", "8"),
	}

	thread, err := BuildThread(status("1", ""), nil, descendants)
	if err != nil {
		t.Fatalf("BuildThread failed: %v", err)
	}
	if len(thread.Nodes) != 2 {
		t.Errorf("Expected orphan dropped, got %d nodes", len(thread.Nodes))
	}
}

func TestBuildThreadRejectsNonReplyDescendant(t *testing.T) {
	_, err := BuildThread(status("1", ""), nil, []Status{status("2", "")})
	if err == nil {
		t.Errorf("Expected error for descendant with no parent")
	}
}

func TestBuildThreadRejectsBadAncestors(t *testing.T) {
	cases := map[string][]Status{
		"no origin":    {status("2", "1"), status("3", "2")},
		"two origins":  {status("1", ""), status("2", "")},
		"branched":     {status("1", ""), status("2", "1"), status("3", "1")},
		"disconnected": {status("1", ""), status("3", "99")},
	}

	for name, ancestors := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := BuildThread(status("10", "3"), ancestors, nil); err == nil {
				t.Errorf("Expected error for %s ancestor set", name)
			}
		})
	}
}
