package parser

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/simai/internal/chart"
)

// parseGroup decomposes the text of one comma-bounded segment into notes.
func (p *noteParser) parseGroup(content string) []*chart.Note {
	content = strings.ReplaceAll(content, "\n", "")
	content = strings.ReplaceAll(content, " ", "")
	if content == "" {
		return nil
	}

	// Two bare digits are shorthand for two simultaneous taps.
	if len(content) == 2 && isDigit(content[0]) && isDigit(content[1]) &&
		!strings.ContainsAny(content, slideMarks) &&
		!strings.ContainsRune(content, 'h') &&
		!isTouchArea(content[0]) {
		return []*chart.Note{p.parseToken(content[:1]), p.parseToken(content[1:])}
	}

	if strings.Contains(content, "/") {
		var notes []*chart.Note
		for _, token := range strings.Split(content, "/") {
			if token == "" {
				continue
			}
			if strings.Contains(token, "*") {
				notes = append(notes, p.parseChain(token)...)
			} else {
				notes = append(notes, p.parseToken(token))
			}
		}
		return notes
	}

	if strings.Contains(content, "*") {
		return p.parseChain(content)
	}

	return []*chart.Note{p.parseToken(content)}
}

// parseChain handles same-head slide groups like "1*V[4:1]*<[4:1]". The
// first part is a full token; every later part is just a path, so its
// token is rebuilt from the head indicator and force-marked headless.
func (p *noteParser) parseChain(content string) []*chart.Note {
	parts := strings.Split(content, "*")
	if len(parts) == 0 || parts[0] == "" {
		return nil
	}

	head := p.parseToken(parts[0])
	notes := []*chart.Note{head}

	indicator := ""
	if head.Area != 0 {
		indicator = string(head.Area)
		if head.Area != 'C' && head.Lane != 0 {
			indicator += strconv.Itoa(head.Lane)
		}
	} else if head.Lane != 0 {
		indicator = strconv.Itoa(head.Lane)
	}

	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		n := p.parseToken(indicator + part)
		n.IsHeadless = true
		notes = append(notes, n)
	}
	return notes
}
