package parser

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/simai/internal/chart"
)

// slideMarks are the path shape characters that turn any token into a slide.
const slideMarks = "-^v<>Vpqszw"

// noteParser carries the ambient state a comma-bounded group is parsed
// under: the bpm active when the group began and the source position used
// for diagnostics.
type noteParser struct {
	bpm    float64
	line   int
	column int
	warns  *[]chart.Warning
}

func (p *noteParser) warnf(kind chart.WarningKind, format string, args ...interface{}) {
	if nil == p.warns {
		return
	}
	*p.warns = append(*p.warns, chart.Warning{
		Kind:   kind,
		Line:   p.line,
		Column: p.column,
		Text:   fmt.Sprintf(format, args...),
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isTouchArea(c byte) bool {
	return c >= 'A' && c <= 'E'
}

// parseToken parses one complete note token, e.g. "1", "A2h[4:1]", or
// "3-4[8:1]bx". The base kind comes from the leading characters; every
// modifier is then found by scanning the whole token, so flag order in the
// notation does not matter.
func (p *noteParser) parseToken(token string) *chart.Note {
	note := &chart.Note{Raw: token}

	if len(token) > 0 && isTouchArea(token[0]) {
		note.Kind = chart.KindTouch
		note.Area = token[0]
		switch {
		case note.Area == 'C':
			// The center sensor has no lane digit.
			note.Lane = 8
		case len(token) > 1 && isDigit(token[1]):
			note.Lane = int(token[1] - '0')
		}
	} else if len(token) > 0 && isDigit(token[0]) {
		note.Kind = chart.KindTap
		note.Lane = int(token[0] - '0')
	}

	// The final kind is decided from the whole token before any duration
	// work: a path shape wins over the hold marker, the hold marker wins
	// over the base.
	hasHold := strings.ContainsRune(token, 'h')
	hasSlide := strings.ContainsAny(token, slideMarks)
	if hasHold {
		if note.Kind == chart.KindTouch {
			note.Kind = chart.KindTouchHold
		} else if note.Kind == chart.KindTap || note.Kind == chart.KindUnknown {
			note.Kind = chart.KindHold
		}
	}
	if hasSlide {
		note.Kind = chart.KindSlide
	}

	if strings.ContainsRune(token, 'f') {
		note.IsHanabi = true
	}

	if hasHold {
		note.HoldSeconds = p.bracketSeconds(token)
	}

	if hasSlide {
		note.SlideSeconds = p.bracketSeconds(token)
		note.SlideLeadSeconds = p.starWaitSeconds(token)
		if strings.ContainsAny(token, "!?") {
			note.IsHeadless = true
		}
	}

	if strings.ContainsRune(token, 'b') {
		if note.Kind == chart.KindSlide {
			// Each 'b' counts on its own: a trailing 'b' or 'b[' breaks
			// the path, anything else breaks the head star. One token can
			// set both.
			for i := 0; i < len(token); i++ {
				if token[i] != 'b' {
					continue
				}
				if i == len(token)-1 || token[i+1] == '[' {
					note.IsPathBreak = true
				} else {
					note.IsBreak = true
				}
			}
		} else {
			note.IsBreak = true
		}
	}

	if strings.ContainsRune(token, 'x') {
		note.IsEx = true
	}

	if n := strings.Count(token, "$"); n > 0 {
		note.IsForcedStar = true
		if n == 2 {
			note.IsFakeRotate = true
		}
	}

	return note
}
