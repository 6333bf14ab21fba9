package text

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"go.uber.org/zap"

	"github.com/muurk/fedivt/internal/logging"
)

// htmlConverter accumulates text and a parallel attribute array while
// walking a status body. Attribute changes from tags are held pending until
// the next character so empty elements don't leave codes dangling.
type htmlConverter struct {
	text    []rune
	codes   []ControlCodes
	pending *ControlCodes
	bdepth  int
	udepth  int
	rdepth  int
}

func (c *htmlConverter) lastCode() ControlCodes {
	if c.pending != nil {
		code := *c.pending
		c.pending = nil
		return code
	}
	if len(c.codes) > 0 {
		return c.codes[len(c.codes)-1]
	}
	return ControlCodes{}
}

func (c *htmlConverter) setPending(code ControlCodes) {
	c.pending = &code
}

func (c *htmlConverter) addText(data string) {
	code := c.lastCode()
	for _, ch := range data {
		c.text = append(c.text, ch)
		c.codes = append(c.codes, code)
	}
}

func (c *htmlConverter) startTag(tag string) {
	switch tag {
	case "p", "span":
	case "br":
		code := c.lastCode()
		c.text = append(c.text, '\n')
		c.codes = append(c.codes, code)
	case "a", "u":
		// Links get underlined; there's nothing to click with.
		code := c.lastCode()
		c.udepth++
		if c.udepth == 1 {
			code.Underline = true
		}
		c.setPending(code)
	case "b", "strong":
		code := c.lastCode()
		c.bdepth++
		if c.bdepth == 1 {
			code.Bold = true
		}
		c.setPending(code)
	case "i", "em":
		// Reverse video stands in for emphasis.
		code := c.lastCode()
		c.rdepth++
		if c.rdepth == 1 {
			code.Reverse = true
		}
		c.setPending(code)
	default:
		logging.Debug("Unsupported start tag", zap.String("tag", tag))
	}
}

func (c *htmlConverter) endTag(tag string) {
	switch tag {
	case "p":
		code := c.lastCode()
		c.text = append(c.text, '\n', '\n')
		c.codes = append(c.codes, code, code)
	case "a", "u":
		code := c.lastCode()
		if c.udepth == 1 {
			c.udepth = 0
			code.Underline = false
		} else if c.udepth > 0 {
			c.udepth--
		}
		c.setPending(code)
	case "b", "strong":
		code := c.lastCode()
		if c.bdepth == 1 {
			c.bdepth = 0
			code.Bold = false
		} else if c.bdepth > 0 {
			c.bdepth--
		}
		c.setPending(code)
	case "i", "em":
		code := c.lastCode()
		if c.rdepth == 1 {
			c.rdepth = 0
			code.Reverse = false
		} else if c.rdepth > 0 {
			c.rdepth--
		}
		c.setPending(code)
	case "span", "br":
	default:
		logging.Debug("Unsupported end tag", zap.String("tag", tag))
	}
}

// parsed returns the accumulated text and codes with surrounding
// whitespace trimmed from both in lockstep.
func (c *htmlConverter) parsed() (string, []ControlCodes) {
	text := c.text
	codes := c.codes

	for len(text) > 0 && unicode.IsSpace(text[0]) {
		text = text[1:]
		codes = codes[1:]
	}
	for len(text) > 0 && unicode.IsSpace(text[len(text)-1]) {
		text = text[:len(text)-1]
		codes = codes[:len(codes)-1]
	}

	return string(text), codes
}

// HTML converts the restricted HTML subset that status bodies use into text
// plus a parallel attribute array. Unknown constructs degrade to plain
// text; entity references are decoded by the tokenizer.
func HTML(data string) (string, []ControlCodes) {
	converter := &htmlConverter{}
	tokenizer := html.NewTokenizer(strings.NewReader(data))

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}

		token := tokenizer.Token()
		switch tokenType {
		case html.TextToken:
			converter.addText(token.Data)
		case html.StartTagToken, html.SelfClosingTagToken:
			converter.startTag(token.Data)
		case html.EndTagToken:
			converter.endTag(token.Data)
		}
	}

	return converter.parsed()
}
