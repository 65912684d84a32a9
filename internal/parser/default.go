package parser

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"git.lost.host/meutraa/simai/internal/chart"
	"github.com/remeh/sizedwaitgroup"
)

type DefaultParser struct {
	// Jobs bounds how many difficulty slots parse concurrently.
	// Zero or less means one worker per slot.
	Jobs int
}

func (p *DefaultParser) Parse(file string) (*chart.Document, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart file: %w", err)
	}
	return p.ParseString(strings.ReplaceAll(string(data), "\r", "")), nil
}

// ParseString parses a whole simai file: the metadata directives first,
// then every difficulty's fumen block. Parsing never fails; diagnostics
// are collected on the document and its charts.
func (p *DefaultParser) ParseString(text string) *chart.Document {
	doc := &chart.Document{}
	p.loadMetadata(doc, text)
	p.processFumens(doc)
	return doc
}

func (p *DefaultParser) metaWarnf(doc *chart.Document, line int, format string, args ...interface{}) {
	doc.Warnings = append(doc.Warnings, chart.Warning{
		Kind: chart.MalformedDirective,
		Line: line,
		Text: fmt.Sprintf(format, args...),
	})
}

// slotDirective splits "&lv_3=12" style lines into a 0-based slot index
// and the value text.
func slotDirective(line, prefix string) (int, string, bool) {
	rest := line[len(prefix):]
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return 0, "", false
	}
	n, err := strconv.Atoi(rest[:eq])
	if nil != err {
		return 0, "", false
	}
	return n - 1, rest[eq+1:], true
}

func (p *DefaultParser) loadMetadata(doc *chart.Document, text string) {
	fumenIndex := -1
	var fumenLines []string

	closeFumen := func() {
		if fumenIndex >= 0 {
			doc.Fumens[fumenIndex] = strings.TrimSpace(strings.Join(fumenLines, "\n"))
		}
		fumenIndex = -1
		fumenLines = nil
	}

	for lineNo, orig := range strings.Split(text, "\n") {
		line := strings.TrimSpace(orig)

		if fumenIndex >= 0 {
			if !strings.HasPrefix(line, "&") {
				// Fumen blocks keep their lines verbatim.
				fumenLines = append(fumenLines, orig)
				continue
			}
			// A new directive ends the block; fall through to handle it.
			closeFumen()
		}

		switch {
		case strings.HasPrefix(line, "&title="):
			doc.Title = strings.TrimPrefix(line, "&title=")
		case strings.HasPrefix(line, "&artist="):
			doc.Artist = strings.TrimPrefix(line, "&artist=")
		case strings.HasPrefix(line, "&des="):
			doc.Designer = strings.TrimPrefix(line, "&des=")
		case strings.HasPrefix(line, "&first="):
			v, err := strconv.ParseFloat(strings.TrimPrefix(line, "&first="), 64)
			if nil != err {
				p.metaWarnf(doc, lineNo, "bad &first value %q", line)
				break
			}
			doc.FirstOffset = v
		case strings.HasPrefix(line, "&lv_"):
			idx, value, ok := slotDirective(line, "&lv_")
			if !ok {
				p.metaWarnf(doc, lineNo, "bad &lv_ line %q", line)
				break
			}
			if idx >= 0 && idx < chart.SlotCount {
				doc.Levels[idx] = strings.TrimSpace(value)
			}
		case strings.HasPrefix(line, "&inote_"):
			idx, value, ok := slotDirective(line, "&inote_")
			if !ok {
				p.metaWarnf(doc, lineNo, "bad &inote_ line %q", line)
				break
			}
			if idx >= 0 && idx < chart.SlotCount {
				fumenIndex = idx
				fumenLines = []string{value}
			}
		case line == "":
		default:
			// Unrecognized directives and stray text survive verbatim.
			doc.Extra = append(doc.Extra, orig)
		}
	}
	closeFumen()
}

// processFumens resolves every difficulty slot. Slots share nothing but
// the first offset, captured once here, so they parse in parallel.
func (p *DefaultParser) processFumens(doc *chart.Document) {
	jobs := p.Jobs
	if jobs <= 0 {
		jobs = chart.SlotCount
	}
	offset := doc.FirstOffset

	swg := sizedwaitgroup.New(jobs)
	for i := 0; i < chart.SlotCount; i++ {
		swg.Add()
		go func(slot int) {
			defer swg.Done()
			dc := &chart.DifficultyChart{Level: doc.Levels[slot]}
			if doc.Fumens[slot] != "" {
				dc.Events, dc.Markers, dc.Warnings = parseFumen(doc.Fumens[slot], offset)
			}
			doc.Charts[slot] = dc
		}(i)
	}
	swg.Wait()
}
