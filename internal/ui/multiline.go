package ui

import (
	"strings"

	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/text"
)

// MultiLineInputBox is a reverse-video editor for post bodies. The text
// is word-wrapped live, and the cursor tracks positions through the wrap
// so arrow keys move by display cell, not by byte.
type MultiLineInputBox struct {
	renderer *Renderer
	row      int
	column   int
	width    int
	height   int

	textValue string

	// cursor is a position in textValue, 0 to len inclusive.
	cursor int
}

// NewMultiLineInputBox creates an editor seeded with initial text.
func NewMultiLineInputBox(renderer *Renderer, initial string, row, column, width, height int) *MultiLineInputBox {
	return &MultiLineInputBox{
		renderer:  renderer,
		row:       row,
		column:    column,
		width:     width,
		height:    height,
		textValue: initial,
		cursor:    len(initial),
	}
}

// Text returns the current contents.
func (m *MultiLineInputBox) Text() string {
	return m.textValue
}

// Lines returns the editor's rendered rows, all reverse video, padded to
// the full width.
func (m *MultiLineInputBox) Lines() []text.Line {
	code := text.ControlCodes{Reverse: true}
	codes := make([]text.ControlCodes, len([]rune(m.textValue)))
	for i := range codes {
		codes[i] = code
	}

	wrapped := text.WrapLineOpt(m.textValue, codes, m.width-1, text.WrapOptions{
		StripTrailingSpaces:   false,
		StripTrailingNewlines: true,
	})
	if len(wrapped) > m.height {
		wrapped = wrapped[:m.height]
	}

	output := make([]text.Line, 0, m.height)
	for _, line := range wrapped {
		runes := []rune(line.Text)
		lineCodes := line.Codes
		for len(runes) < m.width {
			runes = append(runes, ' ')
			lineCodes = append(lineCodes, code)
		}
		output = append(output, text.Line{Text: string(runes), Codes: lineCodes})
	}
	for len(output) < m.height {
		blank := make([]text.ControlCodes, m.width)
		for i := range blank {
			blank[i] = code
		}
		output = append(output, text.Line{Text: strings.Repeat(" ", m.width), Codes: blank})
	}

	return output
}

// virtualPosition marks a display cell with no backing text position: the
// break point of a mid-word wrap.
const virtualPosition = -1

// layout computes the wrapped display text and, for every display cell,
// the text position it maps to. The returned positions slice has exactly
// one entry per display character plus one for the end-of-text cell.
func (m *MultiLineInputBox) layout() (displayText string, lines []string, positions []int) {
	meta := make([]int, len(m.textValue))
	for i := range meta {
		meta[i] = i
	}

	spans := text.WordWrapOpt(m.textValue, meta, m.width-1, text.WrapOptions{
		StripTrailingSpaces:   false,
		StripTrailingNewlines: false,
	})

	lines = make([]string, len(spans))
	for i, span := range spans {
		lines[i] = span.Text
	}
	displayText = strings.Join(lines, "\n")

	for _, span := range spans {
		block := span.Meta
		if len(positions) > 0 {
			handled := false
			last := positions[len(positions)-1]

			if len(block) > 0 {
				if block[0]-last >= 2 && isWrapSeparator(m.textValue[last+1]) {
					// A space or user-entered newline was swallowed by
					// the wrap.
					positions = append(positions, last+1)
					handled = true
				} else if block[0]-last == 1 {
					// Mid-word wrap; the display newline has no backing
					// text position.
					positions = append(positions, virtualPosition)
					handled = true
				}
			} else if isWrapSeparator(m.textValue[last+1]) {
				positions = append(positions, last+1)
				handled = true
			}

			if !handled {
				panic("ui: inconsistent wrap position state")
			}
		}
		positions = append(positions, block...)
	}

	if m.textValue != "" {
		if positions[len(positions)-1] == virtualPosition {
			panic("ui: inconsistent wrap position state")
		}
		for positions[len(positions)-1] < len(m.textValue) {
			positions = append(positions, positions[len(positions)-1]+1)
		}
	} else {
		if len(positions) > 0 {
			panic("ui: positions should be empty for empty text")
		}
		positions = append(positions, 0)
	}

	if len(displayText)+1 != len(positions) {
		panic("ui: inconsistent position calculation")
	}

	return displayText, lines, positions
}

func isWrapSeparator(ch byte) bool {
	return ch == ' ' || ch == '\n'
}

// cellCoords returns the screen coordinates for each display cell.
func (m *MultiLineInputBox) cellCoords(displayText string, positions []int) [][2]int {
	row := m.row
	column := m.column
	coords := make([][2]int, 0, len(positions))

	for i := range positions {
		coords = append(coords, [2]int{row, column})
		if i == len(displayText) {
			break
		}
		if displayText[i] == '\n' {
			row++
			column = m.column
		} else {
			column++
		}
	}
	return coords
}

// moveCursor parks the device cursor on the display cell for the text
// cursor.
func (m *MultiLineInputBox) moveCursor() {
	displayText, _, positions := m.layout()

	row := m.row
	column := m.column
	for i := range positions {
		if positions[i] == m.cursor {
			break
		}
		if i < len(displayText) {
			if displayText[i] == '\n' {
				row++
				column = m.column
			} else {
				column++
			}
		}
	}
	m.renderer.Terminal.MoveCursor(row, column)
}

// Draw paints the whole editor.
func (m *MultiLineInputBox) Draw() {
	bounds := clip.BoundingRectangle{
		Top:    m.row,
		Bottom: m.row + m.height,
		Left:   m.column,
		Right:  m.column + m.width,
	}
	text.Display(m.renderer.Terminal, m.Lines(), bounds)
	m.moveCursor()
}

// ProcessInput handles wrap-aware cursor movement and editing.
func (m *MultiLineInputBox) ProcessInput(input terminal.Input) Action {
	displayText, lines, positions := m.layout()

	handled := false
	cursor := 0
	for i, pos := range positions {
		if pos == m.cursor {
			cursor = i
			break
		}
	}

	switch input {
	case terminal.KeyLeft:
		if cursor > 0 {
			cursor--
			for cursor > 0 && positions[cursor] == virtualPosition {
				cursor--
			}
			m.cursor = positions[cursor]
			m.moveCursor()
		}
		return NullAction{}

	case terminal.KeyRight:
		if cursor < len(displayText) {
			cursor++
			for cursor < len(displayText) && positions[cursor] == virtualPosition {
				cursor++
			}
			m.cursor = positions[cursor]
			m.moveCursor()
		}
		return NullAction{}

	case terminal.KeyUp, terminal.KeyDown:
		coords := m.cellCoords(displayText, positions)
		curRow, curColumn := coords[cursor][0], coords[cursor][1]

		wantRow := curRow - 1
		if input == terminal.KeyDown {
			wantRow = curRow + 1
		}

		// The closest cell on the target row at or left of the cursor.
		best := -1
		for i, coord := range coords {
			if coord[0] == wantRow && coord[1] <= curColumn {
				best = i
			}
		}
		if best >= 0 {
			m.cursor = positions[best]
			m.moveCursor()
		}
		return NullAction{}

	case FocusInput:
		m.moveCursor()
		return NullAction{}

	case terminal.KeyBackspace, terminal.KeyDelete:
		if m.textValue != "" {
			switch {
			case cursor == len(displayText):
				m.textValue = m.textValue[:len(m.textValue)-1]
				m.cursor--
			case cursor == 0:
				// Erasing at the beginning, nothing to do.
			default:
				for positions[cursor-1] == virtualPosition {
					cursor--
					if cursor < 0 {
						panic("ui: cannot find erase point")
					}
				}
				spot := positions[cursor-1]
				m.textValue = m.textValue[:spot] + m.textValue[spot+1:]
				m.cursor--
			}
		}
		handled = true

	default:
		raw := string(input)
		if input == terminal.KeyEnter {
			// Return types a newline into the body.
			raw = "\n"
		}
		typed := printableOnly(raw, true)
		if typed != "" {
			if cursor == len(displayText) {
				m.textValue += typed
			} else {
				spot := positions[cursor]
				m.textValue = m.textValue[:spot] + typed + m.textValue[spot:]
			}
			m.cursor++
			handled = true
		}
	}

	if !handled {
		// Control characters fall through for parent components.
		return nil
	}

	m.redrawChanged(lines)
	m.moveCursor()
	return NullAction{}
}

// redrawChanged repaints only the display lines that differ from the
// previous wrap, and only the changed column span of each.
func (m *MultiLineInputBox) redrawChanged(oldLines []string) {
	_, newLines, _ := m.layout()
	drawable := m.Lines()

	shared := len(oldLines)
	if len(newLines) < shared {
		shared = len(newLines)
	}

	for i := 0; i < shared; i++ {
		if oldLines[i] == newLines[i] {
			continue
		}

		firstDiff := -1
		lastDiff := -1
		oldLength := len(oldLines[i])
		newLength := len(newLines[i])

		minLength := oldLength
		if newLength < minLength {
			minLength = newLength
		}
		for j := 0; j < minLength; j++ {
			if oldLines[i][j] != newLines[i][j] {
				if firstDiff == -1 {
					firstDiff = j
				}
				lastDiff = j + 1
			}
		}
		if oldLength != newLength {
			lastDiff = oldLength
			if newLength > lastDiff {
				lastDiff = newLength
			}
		}
		if firstDiff == -1 {
			firstDiff = minLength
		}

		bounds := clip.BoundingRectangle{
			Top:    m.row + i,
			Bottom: m.row + i + 1,
			Left:   m.column + firstDiff,
			Right:  m.column + lastDiff,
		}
		line := drawable[i]
		runes := []rune(line.Text)
		if firstDiff < len(runes) {
			line = text.Line{Text: string(runes[firstDiff:]), Codes: line.Codes[firstDiff:]}
		} else {
			line = text.Line{Text: "", Codes: line.Codes[:0]}
		}
		text.Display(m.renderer.Terminal, []text.Line{line}, bounds)
	}

	if len(oldLines) != len(newLines) {
		longest := len(oldLines)
		if len(newLines) > longest {
			longest = len(newLines)
		}
		for i := shared; i < longest && i < len(drawable); i++ {
			bounds := clip.BoundingRectangle{
				Top:    m.row + i,
				Bottom: m.row + i + 1,
				Left:   m.column,
				Right:  m.column + m.width,
			}
			text.Display(m.renderer.Terminal, drawable[i:i+1], bounds)
		}
	}
}
