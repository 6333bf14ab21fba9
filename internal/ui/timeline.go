package ui

import (
	"sort"

	"github.com/muurk/fedivt/internal/client"
	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/text"
)

// maxScrollOffset caps how far forward the viewport can ever move.
const maxScrollOffset = 0xFFFFFFFF

// TimelineComponent is the scrolling viewport over a fetched timeline.
// Posts stack vertically; offset is how many content rows are hidden
// above the viewport top. Scrolling uses the device scroll region to
// shift rows in place, repainting only what the shift exposed.
type TimelineComponent struct {
	renderer *Renderer
	top      int
	bottom   int

	timeline client.TimelineKind
	offset   int
	statuses []client.Status
	posts    []*TimelinePost

	// positions maps the screen row of each visible post's first row to
	// that post's index, recomputed after every scroll.
	positions map[int]int

	drawn bool
}

// NewTimelineComponent fetches the timeline and formats its posts. The
// fetch error is surfaced so the calling screen can decide what to show.
func NewTimelineComponent(renderer *Renderer, top, bottom int, timeline client.TimelineKind) (*TimelineComponent, error) {
	t := &TimelineComponent{
		renderer: renderer,
		top:      top,
		bottom:   bottom,
		timeline: timeline,
	}

	statuses, err := renderer.Client.Timeline(timeline, client.DefaultFetchLimit, "")
	if err != nil {
		return nil, err
	}
	renderer.Status("Timeline fetched, drawing...")

	t.statuses = statuses
	t.posts = t.formatPosts(statuses)
	t.positions = t.postIndexes()
	return t, nil
}

func (t *TimelineComponent) formatPosts(statuses []client.Status) []*TimelinePost {
	posts := make([]*TimelinePost, 0, len(statuses))
	for _, status := range statuses {
		post := NewTimelinePost(t.renderer, status, nil)
		if t.renderer.Session.Prefs != nil && t.renderer.Session.Prefs.ExpandSpoilers {
			post.ToggleSpoiler()
		}
		posts = append(posts, post)
	}
	return posts
}

func (t *TimelineComponent) viewHeight() int {
	return (t.bottom - t.top) + 1
}

// Draw paints the whole viewport.
func (t *TimelineComponent) Draw() {
	t.drawAll()
	if !t.drawn {
		t.drawn = true
		if t.renderer.Session.LastPost != nil {
			t.renderer.Status("New status posted! Press '?' for help.")
		} else {
			t.renderer.Status("Press '?' for help.")
		}
	}
}

// drawAll repaints every viewport row, returning the range of rows at the
// bottom that had no content to paint, if any.
func (t *TimelineComponent) drawAll() (missedTop, missedBottom int, missed bool) {
	pos := -t.offset

	// The cursor can get out of sync in rare cases, leaving the screen
	// correct but painted bottom-up. Pin it to the top first.
	t.renderer.Terminal.MoveCursor(t.top, 1)

	for _, post := range t.posts {
		if pos >= t.viewHeight() {
			break
		}
		if pos+post.Height() <= 0 {
			pos += post.Height()
			continue
		}

		top := pos + t.top
		bottom := top + post.Height()
		if bottom > t.bottom {
			bottom = t.bottom
		}
		offset := 0
		if top < t.top {
			offset = t.top - top
			top = t.top
		}

		post.Draw(top, bottom, offset, t.ordinalForRow(pos+t.top))
		pos += post.Height()
	}

	pos += t.top
	missedTop = pos
	missedCount := 0
	for pos <= t.bottom {
		t.renderer.Terminal.MoveCursor(pos, 1)
		t.renderer.Terminal.SendCommand(terminal.ClearLine)
		pos++
		missedCount++
	}

	t.renderer.Terminal.MoveCursor(t.bottom, t.renderer.Columns())

	if missedCount > 0 {
		return missedTop, missedTop + missedCount - 1, true
	}
	return 0, 0, false
}

// drawOneLine repaints a single viewport row, returning false when no
// post covers it (the row was blanked instead).
func (t *TimelineComponent) drawOneLine(line int) bool {
	pos := -t.offset

	for _, post := range t.posts {
		if pos >= t.viewHeight() {
			break
		}
		if pos+post.Height() <= 0 {
			pos += post.Height()
			continue
		}

		offset := line - (pos + t.top)
		if offset < 0 {
			// This post is below the wanted row.
			break
		}
		if offset >= post.Height() {
			pos += post.Height()
			continue
		}

		post.Draw(line, line, offset, t.ordinalForRow(pos+t.top))
		return true
	}

	t.renderer.Terminal.MoveCursor(line, 1)
	t.renderer.Terminal.SendCommand(terminal.ClearLine)
	return false
}

// ordinalForRow returns the 1-based deep-dive label for the post whose
// top row is at the given screen row, or 0 when the row has no label.
func (t *TimelineComponent) ordinalForRow(row int) int {
	index, ok := t.positions[row]
	if !ok {
		return 0
	}
	return index - t.minPostIndex() + 1
}

// minPostIndex is the index of the topmost post intersecting the
// viewport.
func (t *TimelineComponent) minPostIndex() int {
	minRow := 0
	first := true
	for row := range t.positions {
		if first || row < minRow {
			minRow = row
			first = false
		}
	}
	if first {
		return 0
	}
	return t.positions[minRow]
}

// postIndexes computes the screen row of each post's first row, for every
// post at or below the viewport top. Posts below the bottom are kept on
// purpose so a post scrolling in or out without reordering anything does
// not look like a change.
func (t *TimelineComponent) postIndexes() map[int]int {
	ret := make(map[int]int)
	pos := -t.offset

	for index, post := range t.posts {
		if pos+post.Height() <= 0 {
			pos += post.Height()
			continue
		}
		ret[pos+t.top] = index
		pos += post.Height()
	}
	return ret
}

// positionsChanged compares two position maps by their ordered values,
// which is what decides whether the deep-dive labels moved.
func positionsChanged(oldPositions, newPositions map[int]int) bool {
	oldValues := orderedValues(oldPositions)
	newValues := orderedValues(newPositions)
	if len(oldValues) != len(newValues) {
		return true
	}
	for i := range oldValues {
		if oldValues[i] != newValues[i] {
			return true
		}
	}
	return false
}

func orderedValues(positions map[int]int) []int {
	keys := make([]int, 0, len(positions))
	for k := range positions {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = positions[k]
	}
	return values
}

// postForLine locates the post covering a screen row, as a fractional
// index: the integer part is the post index, the fraction how far into
// the post the row falls.
func (t *TimelineComponent) postForLine(line int) float64 {
	pos := -t.offset

	for index, post := range t.posts {
		if pos >= t.viewHeight() {
			break
		}
		if pos+post.Height() <= 0 {
			pos += post.Height()
			continue
		}

		top := pos + t.top
		bottom := top + post.Height()
		if line >= top && line <= bottom {
			return float64(index) + float64(line-top)/float64(bottom-top)
		}
		pos += post.Height()
	}
	return 0
}

// lineForPost returns the content row (ignoring the current offset) where
// a post starts.
func (t *TimelineComponent) lineForPost(index int) (int, bool) {
	pos := 0
	for i, post := range t.posts {
		if i == index {
			return pos + t.top, true
		}
		pos += post.Height()
	}
	return 0, false
}

// shiftViewport scrolls the viewport rows by amount using the device
// scroll region: up shifts content down (revealing rows at the top),
// down shifts content up (revealing rows at the bottom).
func (t *TimelineComponent) shiftViewport(amount int, up bool) {
	term := t.renderer.Terminal
	term.SetScrollRegion(t.top, t.bottom)
	if up {
		term.MoveCursor(t.top, 1)
		for i := 0; i < amount; i++ {
			term.SendCommand(terminal.MoveCursorUp)
		}
	} else {
		term.MoveCursor(t.bottom, 1)
		for i := 0; i < amount; i++ {
			term.SendCommand(terminal.MoveCursorDown)
		}
	}
	term.ClearScrollRegion()
}

// redrawLabels repaints the first row of every visible post, skipping
// rows the caller is about to repaint anyway.
func (t *TimelineComponent) redrawLabels(skip map[int]bool) {
	for line := range t.positions {
		if line < t.top || line > t.bottom {
			continue
		}
		if skip[line] {
			continue
		}
		t.drawOneLine(line)
	}
}

// scrollUp moves the viewport one row toward the top of the timeline.
func (t *TimelineComponent) scrollUp() {
	if t.offset == 0 {
		return
	}
	t.offset--

	newPositions := t.postIndexes()
	labelRedraw := positionsChanged(t.positions, newPositions)
	t.positions = newPositions

	term := t.renderer.Terminal
	term.SendCommand(terminal.SaveCursor)
	t.shiftViewport(1, true)

	if labelRedraw {
		t.redrawLabels(map[int]bool{t.top: true})
	}
	t.drawOneLine(t.top)
	term.SendCommand(terminal.RestoreCursor)
}

// scrollDown moves the viewport one row toward the bottom, reporting
// whether the newly exposed row was blank and needs fetched content.
func (t *TimelineComponent) scrollDown() (fetchNeeded bool) {
	if t.offset >= maxScrollOffset {
		return false
	}
	t.offset++

	newPositions := t.postIndexes()
	labelRedraw := positionsChanged(t.positions, newPositions)
	t.positions = newPositions

	term := t.renderer.Terminal
	term.SendCommand(terminal.SaveCursor)
	t.shiftViewport(1, false)

	if labelRedraw {
		t.redrawLabels(map[int]bool{t.bottom: true})
	}
	painted := t.drawOneLine(t.bottom)
	term.SendCommand(terminal.RestoreCursor)
	return !painted
}

// jumpRows moves the viewport by moveAmount rows at once. When the move
// fits within the viewport height the rows shift in place and only the
// exposed rows repaint; otherwise the whole viewport repaints. Returns
// the rows left blank, for infinite scroll.
func (t *TimelineComponent) jumpRows(moveAmount int, up bool) []int {
	var blankRows []int

	newPositions := t.postIndexes()
	labelRedraw := positionsChanged(t.positions, newPositions)
	t.positions = newPositions

	if moveAmount <= t.viewHeight() {
		term := t.renderer.Terminal
		term.SendCommand(terminal.SaveCursor)
		t.shiftViewport(moveAmount, up)

		skip := make(map[int]bool, moveAmount)
		if up {
			for line := t.top; line < t.top+moveAmount; line++ {
				skip[line] = true
			}
		} else {
			for line := t.bottom - (moveAmount - 1); line <= t.bottom; line++ {
				skip[line] = true
			}
		}

		if labelRedraw {
			t.redrawLabels(skip)
		}

		if up {
			for line := 0; line < moveAmount; line++ {
				t.drawOneLine(t.top + line)
			}
		} else {
			for line := 0; line < moveAmount; line++ {
				actualLine := (t.bottom - (moveAmount - 1)) + line
				if !t.drawOneLine(actualLine) {
					blankRows = append(blankRows, actualLine)
				}
			}
		}
		term.SendCommand(terminal.RestoreCursor)
	} else {
		if missedTop, missedBottom, missed := t.drawAll(); missed && !up {
			for line := missedTop; line <= missedBottom; line++ {
				blankRows = append(blankRows, line)
			}
		}
	}

	return blankRows
}

// fetchOlder pulls the next timeline page, appends it, and repaints the
// rows the earlier scroll left blank.
func (t *TimelineComponent) fetchOlder(blankRows []int) {
	t.renderer.Session.LastPost = nil
	t.renderer.Status("Fetching more posts...")

	maxID := ""
	if len(t.statuses) > 0 {
		maxID = t.statuses[len(t.statuses)-1].ID
	}

	newStatuses, err := t.renderer.Client.Timeline(t.timeline, client.DefaultFetchLimit, maxID)
	if err != nil {
		t.renderer.Status("Fetch failed: " + err.Error())
		return
	}

	t.renderer.Status("Additional posts fetched, drawing...")

	t.statuses = append(t.statuses, newStatuses...)
	t.posts = append(t.posts, t.formatPosts(newStatuses)...)

	// Appending can only ever add to the ordering, never change it, so
	// the labels on screen stay put.
	t.positions = t.postIndexes()

	for _, line := range blankRows {
		t.drawOneLine(line)
	}
	t.renderer.Status("Press '?' for help.")
}

// ProcessInput handles scrolling, deep-dive spoiler toggles, and the
// timeline hotkeys.
func (t *TimelineComponent) ProcessInput(input terminal.Input) Action {
	fetchNeeded := false
	var blankRows []int
	handled := false

	switch input {
	case terminal.KeyUp:
		t.scrollUp()
		handled = true

	case terminal.KeyDown:
		if t.scrollDown() {
			fetchNeeded = true
			blankRows = append(blankRows, t.bottom)
		}
		handled = true

	case "q":
		t.renderer.Session.LastPost = nil
		t.renderer.Status("Logged out.")
		server := t.renderer.Session.Server
		username := t.renderer.Session.Username
		return SwapScreenAction{Swap: func(r *Renderer) {
			SpawnLoginScreen(r, server, username, "")
		}}

	case "t":
		if t.offset > 0 {
			moveAmount := t.offset
			t.offset = 0
			blankRows = t.jumpRows(moveAmount, true)
		}
		handled = true

	case "r":
		t.renderer.Session.LastPost = nil
		t.renderer.Status("Refetching timeline...")

		statuses, err := t.renderer.Client.Timeline(t.timeline, client.DefaultFetchLimit, "")
		if err != nil {
			t.renderer.Status("Fetch failed: " + err.Error())
			return NullAction{}
		}
		t.renderer.Status("Timeline fetched, drawing...")

		t.offset = 0
		t.statuses = statuses
		t.posts = t.formatPosts(statuses)
		t.positions = t.postIndexes()
		t.drawAll()
		t.renderer.Status("Press '?' for help.")
		return NullAction{}

	case "c":
		t.drawn = false
		t.renderer.Session.LastPost = nil
		return SwapScreenAction{Swap: func(r *Renderer) {
			SpawnComposeScreen(r, "Drawing...")
		}}

	case "p":
		postAndOffset := t.postForLine(t.top)
		whichPost := int(postAndOffset)
		if postAndOffset == float64(whichPost) {
			// Already on the top row of this post, go to the previous.
			whichPost--
		}
		if whichPost < 0 {
			whichPost = 0
		}

		moveAmount := 0
		if newOffset, ok := t.lineForPost(whichPost); ok {
			moveAmount = t.offset - (newOffset - t.top)
		}

		if moveAmount > 0 {
			t.offset -= moveAmount
			blankRows = t.jumpRows(moveAmount, true)
		}
		handled = true

	case "n":
		postAndOffset := t.postForLine(t.top)
		whichPost := int(postAndOffset) + 1

		var newOffset int
		var ok bool
		if whichPost == len(t.posts) && whichPost > 0 {
			// Scrolling past the last fetched post; aim at the row right
			// below it.
			newOffset, ok = t.lineForPost(whichPost - 1)
			if !ok {
				panic("ui: no line for an existing post")
			}
			newOffset += t.posts[whichPost-1].Height()
		} else {
			newOffset, ok = t.lineForPost(whichPost)
		}

		moveAmount := 0
		if ok {
			moveAmount = (newOffset - t.top) - t.offset
		}

		if moveAmount > 0 {
			t.offset += moveAmount
			blankRows = t.jumpRows(moveAmount, false)
			if len(blankRows) > 0 {
				fetchNeeded = true
			}
		}
		handled = true

	default:
		if ordinal, ok := shiftedDigit(input); ok {
			minpost := t.minPostIndex()
			for row, index := range t.positions {
				if index-minpost != ordinal {
					continue
				}
				if t.posts[index].ToggleSpoiler() {
					for line := row; line < row+t.posts[index].Height(); line++ {
						if line < t.top || line > t.bottom {
							continue
						}
						t.drawOneLine(line)
					}
				}
				break
			}
			return NullAction{}
		}
	}

	if !handled {
		return nil
	}

	if fetchNeeded || len(blankRows) > 0 {
		if fetchNeeded {
			t.fetchOlder(blankRows)
		}
	}

	return NullAction{}
}

// shiftedDigit maps the shifted number-row keys to deep-dive offsets 0
// through 9, matching the on-screen ordinals 1 through 10.
func shiftedDigit(input terminal.Input) (int, bool) {
	digits := map[terminal.Input]int{
		"!": 0, "@": 1, "#": 2, "$": 3, "%": 4,
		"^": 5, "&": 6, "*": 7, "(": 8, ")": 9,
	}
	val, ok := digits[input]
	return val, ok
}

// TimelineTabsComponent is the Home/Local/Global tab bar with one cached
// TimelineComponent per visited tab.
type TimelineTabsComponent struct {
	renderer  *Renderer
	top       int
	bottom    int
	timeline  client.TimelineKind
	timelines map[client.TimelineKind]*TimelineComponent
}

// NewTimelineTabsComponent creates the tab bar starting on the given
// timeline, fetching it immediately.
func NewTimelineTabsComponent(renderer *Renderer, top, bottom int, timeline client.TimelineKind) (*TimelineTabsComponent, error) {
	component, err := NewTimelineComponent(renderer, top+1, bottom, timeline)
	if err != nil {
		return nil, err
	}

	return &TimelineTabsComponent{
		renderer: renderer,
		top:      top,
		bottom:   bottom,
		timeline: timeline,
		timelines: map[client.TimelineKind]*TimelineComponent{
			timeline: component,
		},
	}, nil
}

var tabOrder = []client.TimelineKind{
	client.TimelineHome,
	client.TimelineLocal,
	client.TimelinePublic,
}

var tabLabels = map[client.TimelineKind]string{
	client.TimelineHome:   "[H]ome",
	client.TimelineLocal:  "[L]ocal",
	client.TimelinePublic: "[G]lobal",
}

// Draw paints the tab bar and the active timeline.
func (t *TimelineTabsComponent) Draw() {
	tabtext := ""
	for _, kind := range tabOrder {
		if kind == t.timeline {
			tabtext += "<b><r> " + tabLabels[kind] + " </r></b> "
		} else {
			tabtext += "<r> " + tabLabels[kind] + " </r> "
		}
	}

	tabs := text.HighlightLine(tabtext)

	t.renderer.Terminal.MoveCursor(t.top, len([]rune(tabs.Text))+1)
	t.renderer.Terminal.SendCommand(terminal.ClearToEndOfLine)
	bounds := clip.BoundingRectangle{
		Top:    t.top,
		Bottom: t.top + 1,
		Left:   1,
		Right:  t.renderer.Columns() + 1,
	}
	text.Display(t.renderer.Terminal, []text.Line{tabs}, bounds)

	t.timelines[t.timeline].Draw()
}

func (t *TimelineTabsComponent) helpContent() string {
	return "<u>Timeline Selection</u><br />" +
		"<p><b>h</b> view your home timeline</p>" +
		"<p><b>l</b> view your local instance timeline</p>" +
		"<p><b>g</b> view the global timeline</p>" +
		"<u>Navigation</u><br />" +
		"<p><b>up</b> and <b>down</b> keys scroll the timeline up or down one single line.</p>" +
		"<p><b>n</b> scrolls until the next post is at the top of the screen.</p>" +
		"<p><b>p</b> scrolls until the previous post is at the top of the screen.</p>" +
		"<p><b>t</b> scrolls to the top of the timeline.</p>" +
		"<u>Actions</u><br />" +
		"<p><b>r</b> refreshes the timeline, scrolling to the top of the refreshed content.</p>" +
		"<p><b>c</b> opens up the composer to write a new post.</p>" +
		"<p><b>q</b> quits to the login screen.</p>"
}

// ProcessInput handles tab switching and help, forwarding everything else
// to the active timeline.
func (t *TimelineTabsComponent) ProcessInput(input terminal.Input) Action {
	if input == "?" {
		t.timelines[t.timeline].drawn = false
		content := t.helpContent()
		return SwapScreenAction{Swap: func(r *Renderer) {
			SpawnHTMLScreen(r, content, "Drawing...")
		}}
	}

	if kind, ok := map[terminal.Input]client.TimelineKind{
		"h": client.TimelineHome,
		"l": client.TimelineLocal,
		"g": client.TimelinePublic,
	}[input]; ok {
		if t.timeline != kind {
			if _, cached := t.timelines[kind]; !cached {
				t.renderer.Status("Fetching timeline...")
				component, err := NewTimelineComponent(t.renderer, t.top+1, t.bottom, kind)
				if err != nil {
					t.renderer.Status("Fetch failed: " + err.Error())
					return NullAction{}
				}
				t.timelines[kind] = component
			}
			t.timeline = kind
			t.Draw()
		}
		return NullAction{}
	}

	return t.timelines[t.timeline].ProcessInput(input)
}
