package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/muurk/fedivt/internal/client"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/terminal/termtest"
)

func newComposeFixture(t *testing.T, forms *[]url.Values) (*ComposeComponent, *Renderer, *termtest.Recorder) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/statuses", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseForm(); err != nil {
			t.Errorf("Parsing form failed: %v", err)
		}
		*forms = append(*forms, req.PostForm)
		json.NewEncoder(w).Encode(client.Status{ID: "99", Content: "<p>posted</p>"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	rec := termtest.New(24, 80)
	r := NewRenderer(rec, client.New(srv.URL))
	r.Session.Username = "tester"

	compose := NewComposeComponent(r, 1)
	compose.Draw()
	rec.ClearOps()
	return compose, r, rec
}

func TestComposeSubmit(t *testing.T) {
	var forms []url.Values
	compose, r, _ := newComposeFixture(t, &forms)

	typeString(compose.body, "hello fediverse")
	compose.cw.textValue = "greetings"
	compose.cw.cursor = len("greetings")

	// Tab through CW and visibility to the post button.
	compose.ProcessInput(terminal.KeyTab)
	compose.ProcessInput(terminal.KeyTab)
	compose.ProcessInput(terminal.KeyTab)
	if compose.focus.Current != composeFocusPost {
		t.Fatalf("Expected focus on the post button, got %d", compose.focus.Current)
	}

	action := compose.ProcessInput(terminal.KeyEnter)
	if _, ok := action.(BackAction); !ok {
		t.Fatalf("Expected BackAction after posting, got %T", action)
	}

	if len(forms) != 1 {
		t.Fatalf("Expected one status POST, got %d", len(forms))
	}
	form := forms[0]
	if got := form.Get("status"); got != "hello fediverse" {
		t.Errorf("Expected posted body, got %q", got)
	}
	if got := form.Get("visibility"); got != "public" {
		t.Errorf("Expected default public visibility, got %q", got)
	}
	if got := form.Get("spoiler_text"); got != "greetings" {
		t.Errorf("Expected the CW sent, got %q", got)
	}

	if r.Session.LastPost == nil || r.Session.LastPost.ID != "99" {
		t.Error("Expected the created status recorded on the session")
	}
}

func TestComposeEmptyBodyRefused(t *testing.T) {
	var forms []url.Values
	compose, r, _ := newComposeFixture(t, &forms)

	for compose.focus.Current != composeFocusPost {
		compose.ProcessInput(terminal.KeyTab)
	}
	action := compose.ProcessInput(terminal.KeyEnter)
	if _, ok := action.(NullAction); !ok {
		t.Fatalf("Expected NullAction for an empty post, got %T", action)
	}
	if len(forms) != 0 {
		t.Errorf("Expected no POST for an empty body, got %d", len(forms))
	}
	if !strings.Contains(r.CurrentStatus(), "Nothing to post") {
		t.Errorf("Expected a refusal status, got %q", r.CurrentStatus())
	}
}

func TestComposeDiscard(t *testing.T) {
	var forms []url.Values
	compose, _, _ := newComposeFixture(t, &forms)

	typeString(compose.body, "never mind")
	for compose.focus.Current != composeFocusDiscard {
		compose.ProcessInput(terminal.KeyTab)
	}
	action := compose.ProcessInput(terminal.KeyEnter)
	if _, ok := action.(BackAction); !ok {
		t.Fatalf("Expected BackAction on discard, got %T", action)
	}
	if len(forms) != 0 {
		t.Errorf("Expected no POST on discard, got %d", len(forms))
	}
}

func TestComposeVisibilitySeededFromPreferences(t *testing.T) {
	rec := termtest.New(24, 80)
	r := NewRenderer(rec, client.New("example.test"))
	r.Session.Prefs = &client.Preferences{DefaultVisibility: "unlisted"}

	compose := NewComposeComponent(r, 1)
	if got := compose.visibility.Selected(); got != "quiet public" {
		t.Errorf("Expected quiet public preselected, got %q", got)
	}
	if got := visibilityFromLabel(compose.visibility.Selected()); got != client.VisibilityUnlisted {
		t.Errorf("Expected unlisted visibility, got %v", got)
	}
}
