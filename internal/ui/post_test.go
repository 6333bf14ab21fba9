package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/muurk/fedivt/internal/client"
	"github.com/muurk/fedivt/internal/terminal/termtest"
)

func newTestRenderer(rows, cols int) (*Renderer, *termtest.Recorder) {
	rec := termtest.New(rows, cols)
	r := NewRenderer(rec, client.New("example.test"))
	rec.ClearOps()
	return r, rec
}

func fakeStatus(id, content string) client.Status {
	return client.Status{
		ID:      id,
		Account: client.Account{Acct: "user@example.test", DisplayName: "User"},
		Content: "<p>" + content + "</p>",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0,
			time.UTC),
	}
}

func TestTimelinePostHeight(t *testing.T) {
	r, _ := newTestRenderer(24, 80)

	t.Run("Plain", func(t *testing.T) {
		post := NewTimelinePost(r, fakeStatus("1", "hello world"), nil)
		// Border, account header, one body line, border.
		if post.Height() != 4 {
			t.Errorf("Expected height 4, got %d", post.Height())
		}
	})

	t.Run("ContentWarning", func(t *testing.T) {
		status := fakeStatus("2", "secret")
		status.SpoilerText = "politics"
		post := NewTimelinePost(r, status, nil)
		if post.Height() != 5 {
			t.Errorf("Expected height 5, got %d", post.Height())
		}
	})

	t.Run("Boost", func(t *testing.T) {
		inner := fakeStatus("3", "boosted content")
		status := fakeStatus("4", "ignored")
		status.Reblog = &inner
		post := NewTimelinePost(r, status, nil)
		if post.Height() != 5 {
			t.Errorf("Expected height 5, got %d", post.Height())
		}
	})

	t.Run("Attachment", func(t *testing.T) {
		status := fakeStatus("5", "with media")
		status.MediaAttachments = []client.MediaAttachment{
			{URL: "https://example.test/media/pic.png", Description: "a cat"},
		}
		post := NewTimelinePost(r, status, nil)
		// Plain block plus a three-row attachment sub-box.
		if post.Height() != 7 {
			t.Errorf("Expected height 7, got %d", post.Height())
		}
	})
}

func TestTimelinePostBlockShape(t *testing.T) {
	r, _ := newTestRenderer(24, 80)
	post := NewTimelinePost(r, fakeStatus("1", "hello world"), nil)

	lines := post.lines
	for i, line := range lines {
		if got := len([]rune(line.Text)); got != 80 {
			t.Errorf("Expected line %d to be 80 runes, got %d", i, got)
		}
		if len([]rune(line.Text)) != len(line.Codes) {
			t.Errorf("Line %d text and codes lengths differ", i)
		}
	}

	if !strings.HasPrefix(lines[0].Text, "┌") {
		t.Errorf("Expected top border, got %q", lines[0].Text)
	}
	if !strings.Contains(lines[1].Text, "User @user@example.test") {
		t.Errorf("Expected account header, got %q", lines[1].Text)
	}
	if !strings.Contains(lines[2].Text, "hello world") {
		t.Errorf("Expected body, got %q", lines[2].Text)
	}
}

func TestTimelinePostStatsFooter(t *testing.T) {
	r, _ := newTestRenderer(24, 80)
	status := fakeStatus("1", "hi")
	status.RepliesCount = 2
	status.ReblogsCount = 3
	status.FavouritesCount = 4
	status.Reblogged = true

	post := NewTimelinePost(r, status, nil)
	bottom := post.lines[len(post.lines)-1]

	for _, want := range []string{"┤2 C├─┤3 B├─┤4 L├─┤S├", "2024"} {
		if !strings.Contains(bottom.Text, want) {
			t.Errorf("Expected footer to contain %q, got %q", want, bottom.Text)
		}
	}

	// The footer sits two columns in from the right border.
	runes := []rune(bottom.Text)
	if runes[len(runes)-1] != '┘' || runes[len(runes)-2] != '─' {
		t.Errorf("Expected footer inset from the right edge, got %q", bottom.Text)
	}

	// Boosted, so the boost count renders bold.
	boostAt := strings.IndexRune(bottom.Text, 'B')
	if boostAt < 0 {
		t.Fatalf("No boost stat in %q", bottom.Text)
	}
	idx := len([]rune(bottom.Text[:boostAt]))
	if !bottom.Codes[idx].Bold {
		t.Error("Expected boost stat to be bold when boosted")
	}
}

func TestTimelinePostSpoilerToggle(t *testing.T) {
	r, _ := newTestRenderer(24, 80)
	status := fakeStatus("1", "big secret")
	status.SpoilerText = "cw"
	post := NewTimelinePost(r, status, nil)

	body := post.lines[3].Text
	if strings.Contains(body, "big secret") {
		t.Errorf("Expected spoilered body, got %q", body)
	}
	if !strings.Contains(body, "--- ------") {
		t.Errorf("Expected dashed spoiler body, got %q", body)
	}

	if !post.ToggleSpoiler() {
		t.Fatal("Expected toggle to report a change")
	}
	if !strings.Contains(post.lines[3].Text, "big secret") {
		t.Errorf("Expected revealed body, got %q", post.lines[3].Text)
	}

	plain := NewTimelinePost(r, fakeStatus("2", "nothing hidden"), nil)
	if plain.ToggleSpoiler() {
		t.Error("Expected no toggle without a content warning")
	}
}

func TestTimelinePostOrdinalLabel(t *testing.T) {
	r, rec := newTestRenderer(24, 80)
	post := NewTimelinePost(r, fakeStatus("1", "hi"), nil)

	post.Draw(2, 5, 0, 3)
	if !strings.Contains(rec.TextPayload(), "┤3├") {
		t.Errorf("Expected ordinal label in %q", rec.TextPayload())
	}

	rec.ClearOps()
	post.Draw(2, 5, 0, 0)
	if strings.Contains(rec.TextPayload(), "┤3├") {
		t.Errorf("Expected plain border without ordinal, got %q", rec.TextPayload())
	}
}

func TestTimelinePostThreadDecorations(t *testing.T) {
	r, _ := newTestRenderer(24, 80)
	status := fakeStatus("1", "reply")

	info := &PostThreadInfo{Level: 1, HasParent: true}
	post := NewTimelinePost(r, status, info)

	if got := len([]rune(post.lines[1].Text)); got != 80 {
		t.Errorf("Expected indented line padded to 80 runes, got %d", got)
	}

	top := []rune(post.lines[0].Text)
	if top[1] != '│' {
		t.Errorf("Expected parent connector on top row, got %q", string(top))
	}
	if !strings.Contains(post.lines[1].Text, "└─┤") {
		t.Errorf("Expected parent elbow, got %q", post.lines[1].Text)
	}

	info = &PostThreadInfo{Level: 1, HasParent: true, HasSiblings: true}
	post = NewTimelinePost(r, status, info)
	if !strings.Contains(post.lines[1].Text, "├─┤") {
		t.Errorf("Expected sibling tee, got %q", post.lines[1].Text)
	}
	if []rune(post.lines[2].Text)[1] != '│' {
		t.Errorf("Expected sibling rail below, got %q", post.lines[2].Text)
	}

	info = &PostThreadInfo{Highlighted: true}
	post = NewTimelinePost(r, status, info)
	if !strings.Contains(post.lines[0].Text, "┤current├") {
		t.Errorf("Expected highlight marker, got %q", post.lines[0].Text)
	}
}
