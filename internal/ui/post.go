package ui

import (
	"fmt"
	"strings"

	"github.com/muurk/fedivt/internal/client"
	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/draw"
	"github.com/muurk/fedivt/internal/text"
)

// PostThreadInfo describes where a post sits in a thread view so its box
// can be decorated with connecting lines.
type PostThreadInfo struct {
	// Level is the indentation depth, 0 for top level.
	Level int

	// Highlighted marks the post the thread was opened from.
	Highlighted bool

	HasDescendants bool
	HasAncestors   bool
	HasParent      bool
	HasSiblings    bool

	// SiblingLevels are shallower levels whose sibling connector passes
	// through this post's rows.
	SiblingLevels map[int]bool
}

// TimelinePost renders one status as a block of boxed lines: optional
// boost attribution, account header, optional CW line, the body, media
// attachment sub-boxes, and a stats footer worked into the bottom border.
type TimelinePost struct {
	renderer   *Renderer
	status     client.Status
	threadInfo PostThreadInfo
	width      int

	boostLine []text.Line
	nameLine  text.Line
	cwLines   []text.Line

	// The body and its spoilered rendition, sharing one code array.
	bodyText     string
	spoilerText  string
	spoilerCodes []text.ControlCodes

	spoilered     bool
	spoilerNeeded bool

	stats       text.Line
	attachments []text.Line

	lines []text.Line
}

// NewTimelinePost formats a status into its block. A nil threadInfo means
// a plain timeline rendering with no thread decorations.
func NewTimelinePost(renderer *Renderer, status client.Status, threadInfo *PostThreadInfo) *TimelinePost {
	p := &TimelinePost{
		renderer: renderer,
		status:   status,
	}
	if threadInfo != nil {
		p.threadInfo = *threadInfo
	}
	p.width = renderer.Columns() - 3*p.threadInfo.Level

	// A boost renders the boosted post with an attribution line on top.
	shown := &status
	if status.Reblog != nil {
		shown = status.Reblog

		boostName := text.StripLow(status.Account.DisplayName, false)
		boostUser := text.StripLow(status.Account.Acct, false)
		p.boostLine = []text.Line{draw.Boost(boostName, boostUser, p.width-2)}
	}

	name := text.StripLow(shown.Account.DisplayName, false)
	username := text.StripLow(shown.Account.Acct, false)
	p.nameLine = draw.Account(name, username, p.width-2)

	content, codes := text.HTML(text.StripLow(shown.Content, true))
	p.bodyText = content
	p.spoilerText = text.Spoiler(content)
	p.spoilerCodes = codes

	if shown.SpoilerText != "" {
		cw := "CW: " + text.StripLow(shown.SpoilerText, false)
		p.cwLines = []text.Line{
			text.HighlightLine("<r>" + text.Sanitize(text.Pad(cw, p.width-2)) + "</r>"),
		}
		p.spoilered = true
		p.spoilerNeeded = true
	}

	p.stats = p.formatStats(shown)
	p.attachments = p.formatAttachments(shown.MediaAttachments)

	p.lines = p.formatLines()
	return p
}

// Height is the number of display rows the block occupies.
func (p *TimelinePost) Height() int {
	return len(p.lines)
}

// ToggleSpoiler flips between the spoilered and revealed body, returning
// whether anything changed and needs redrawing.
func (p *TimelinePost) ToggleSpoiler() bool {
	if !p.spoilerNeeded {
		return false
	}
	p.spoilered = !p.spoilered
	p.lines = p.formatLines()
	return true
}

// prefix indents a line by the thread level.
func (p *TimelinePost) prefix(body text.Line) text.Line {
	if p.threadInfo.Level == 0 {
		return body
	}
	pad := strings.Repeat("   ", p.threadInfo.Level)
	return draw.Join(text.HighlightLine(pad), body)
}

func (p *TimelinePost) formatLines() []text.Line {
	body := p.bodyText
	if p.spoilered {
		body = p.spoilerText
	}
	postbody := text.WrapLine(body, p.spoilerCodes, p.width-2)

	textlines := make([]text.Line, 0, len(postbody)+len(p.attachments)+3)
	textlines = append(textlines, p.boostLine...)
	textlines = append(textlines, p.nameLine)
	textlines = append(textlines, p.cwLines...)
	textlines = append(textlines, postbody...)
	textlines = append(textlines, p.attachments...)

	formatted := make([]text.Line, 0, len(textlines)+2)
	formatted = append(formatted, p.prefix(draw.BoxTop(p.width)))
	for _, line := range textlines {
		formatted = append(formatted, p.prefix(draw.BoxMiddle(line, p.width)))
	}
	formatted = append(formatted, p.prefix(draw.Replace(draw.BoxBottom(p.width), p.stats, -2)))

	level := p.threadInfo.Level
	if p.threadInfo.Highlighted {
		formatted[0] = draw.Replace(formatted[0], text.HighlightLine("┤<b>current</b>├"), 7+3*level)
	}
	if p.threadInfo.HasDescendants {
		formatted[len(formatted)-1] = draw.ReplaceText(formatted[len(formatted)-1], "┬", 1+3*level)
	}
	if p.threadInfo.HasAncestors {
		formatted[0] = draw.ReplaceText(formatted[0], "┴", 1+3*level)
	}
	if p.threadInfo.HasParent {
		connector := "└─┤"
		if p.threadInfo.HasSiblings {
			connector = "├─┤"
		}
		formatted[0] = draw.ReplaceText(formatted[0], "│", 3*level-2)
		formatted[1] = draw.ReplaceText(formatted[1], connector, 3*level-2)
	}
	if p.threadInfo.HasSiblings {
		for i := 2; i < len(formatted); i++ {
			formatted[i] = draw.ReplaceText(formatted[i], "│", 3*level-2)
		}
	}
	for siblingLevel := range p.threadInfo.SiblingLevels {
		for i := range formatted {
			formatted[i] = draw.ReplaceText(formatted[i], "│", 3*siblingLevel-2)
		}
	}

	return formatted
}

// formatStats renders the footer worked into the bottom border: the
// timestamp, then reply, boost, favourite, and bookmark indicators, bold
// where this user has acted.
func (p *TimelinePost) formatStats(shown *client.Status) text.Line {
	stats := []string{
		shown.CreatedAt.Local().Format("Mon, Jan 2, 2006, 3:04:05 PM"),
		fmt.Sprintf("%d C", shown.RepliesCount),
	}

	if shown.Reblogged {
		stats = append(stats, fmt.Sprintf("<bold>%d B</bold>", shown.ReblogsCount))
	} else {
		stats = append(stats, fmt.Sprintf("%d B", shown.ReblogsCount))
	}

	if shown.Favourited {
		stats = append(stats, fmt.Sprintf("<bold>%d L</bold>", shown.FavouritesCount))
	} else {
		stats = append(stats, fmt.Sprintf("%d L", shown.FavouritesCount))
	}

	if shown.Bookmarked {
		stats = append(stats, "<bold>S</bold>")
	} else {
		stats = append(stats, "S")
	}

	return text.HighlightLine("┤" + strings.Join(stats, "├─┤") + "├")
}

// formatAttachments renders each attachment as a nested box holding the
// underlined filename and its alt text.
func (p *TimelinePost) formatAttachments(attachments []client.MediaAttachment) []text.Line {
	var lines []text.Line
	for _, attachment := range attachments {
		alt := attachment.Description
		if alt == "" {
			alt = "no description"
		}
		alt = text.StripLow(alt, true)

		parts := strings.Split(attachment.URL, "/")
		filename := text.StripLow(parts[len(parts)-1], false)

		header, codes := text.Highlight("<u>" + text.Sanitize(filename) + "</u>: ")
		header += alt
		if len(codes) > 0 {
			last := codes[len(codes)-1]
			for range []rune(alt) {
				codes = append(codes, last)
			}
		} else {
			codes = make([]text.ControlCodes, len([]rune(alt)))
		}

		body := text.WrapLine(header, codes, p.width-4)
		lines = append(lines, draw.BoxTop(p.width-2))
		for _, line := range body {
			lines = append(lines, draw.BoxMiddle(line, p.width-2))
		}
		lines = append(lines, draw.BoxBottom(p.width-2))
	}
	return lines
}

// Draw paints rows offset..offset+(bottom-top) of the block at screen
// rows top..bottom. An ordinal of 0 or less renders a plain border
// instead of the deep-dive label.
func (p *TimelinePost) Draw(top, bottom, offset, ordinal int) {
	label := "───"
	if ordinal > 0 {
		label = fmt.Sprintf("┤%d├", ordinal)
	}
	p.lines[0] = draw.ReplaceText(p.lines[0], label, 3+3*p.threadInfo.Level)

	bounds := clip.BoundingRectangle{
		Top:    top,
		Bottom: bottom + 1,
		Left:   1,
		Right:  p.renderer.Columns() + 1,
	}
	text.Display(p.renderer.Terminal, p.lines[offset:], bounds)
}
