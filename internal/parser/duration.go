package parser

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/simai/internal/chart"
)

// brackets returns the non-empty contents of every [...] group in token.
func brackets(token string) []string {
	var out []string
	for i := 0; i < len(token); i++ {
		if token[i] != '[' {
			continue
		}
		end := strings.IndexByte(token[i+1:], ']')
		if end < 0 {
			break
		}
		if end > 0 {
			out = append(out, token[i+1:i+1+end])
		}
		i += end + 1
	}
	return out
}

// bracketSeconds resolves every bracketed duration in token to seconds and
// sums them. Content outside brackets is ignored. The five formats are
// tried in priority order; a bracket that fails to parse contributes zero.
func (p *noteParser) bracketSeconds(token string) float64 {
	total := 0.0

	for _, inner := range brackets(token) {
		oneBeat := 0.0
		if p.bpm > 0 {
			oneBeat = 60.0 / p.bpm
		}
		hashes := strings.Count(inner, "#")

		// [#1.5] is absolute seconds
		if hashes == 1 && strings.HasPrefix(inner, "#") && !strings.Contains(inner, ":") {
			v, err := strconv.ParseFloat(inner[1:], 64)
			if nil != err {
				p.warnf(chart.MalformedDuration, "bad absolute duration %q in %q", inner, token)
				continue
			}
			total += v
			continue
		}

		// [wait##seconds], the wait field belongs to the star-wait rules
		if hashes == 2 {
			parts := strings.Split(inner, "#")
			if len(parts) == 3 && parts[2] != "" {
				v, err := strconv.ParseFloat(parts[2], 64)
				if nil != err {
					p.warnf(chart.MalformedDuration, "bad duration %q in %q", inner, token)
					continue
				}
				total += v
			}
			continue
		}

		// [bpm#N:D] or [bpm#seconds], bpm override scoped to this bracket
		if hashes == 1 {
			parts := strings.SplitN(inner, "#", 2)
			if parts[0] != "" {
				v, err := strconv.ParseFloat(parts[0], 64)
				if nil == err {
					if v > 0 {
						oneBeat = 60.0 / v
					}
				} else {
					p.warnf(chart.MalformedDuration, "bad bracket bpm %q in %q", parts[0], token)
				}
			}
			if strings.Contains(parts[1], ":") {
				total += p.beatFraction(parts[1], oneBeat, token)
			} else {
				v, err := strconv.ParseFloat(parts[1], 64)
				if nil != err {
					p.warnf(chart.MalformedDuration, "bad duration %q in %q", parts[1], token)
					continue
				}
				total += v
			}
			continue
		}

		// [N:D] beat fraction at the ambient bpm
		if strings.Contains(inner, ":") {
			total += p.beatFraction(inner, oneBeat, token)
			continue
		}

		// [seconds]
		v, err := strconv.ParseFloat(inner, 64)
		if nil != err {
			p.warnf(chart.MalformedDuration, "bad duration %q in %q", inner, token)
			continue
		}
		total += v
	}

	return total
}

// beatFraction resolves "N:D": D beats of length (4/N) * oneBeat, so N is
// the note subdivision and D the repeat count.
func (p *noteParser) beatFraction(s string, oneBeat float64, token string) float64 {
	nd := strings.SplitN(s, ":", 2)
	div, err := strconv.Atoi(nd[0])
	if nil != err {
		p.warnf(chart.MalformedDuration, "bad N:D timing %q in %q", s, token)
		return 0
	}
	count, err := strconv.Atoi(nd[1])
	if nil != err {
		p.warnf(chart.MalformedDuration, "bad N:D timing %q in %q", s, token)
		return 0
	}
	if div <= 0 {
		return 0
	}
	return oneBeat * (4.0 / float64(div)) * float64(count)
}

// starWaitSeconds resolves the delay before a slide's path visual appears.
// Only the first bracket is consulted, and it reads different fields than
// bracketSeconds: [wait##...] takes the wait directly, [bpm#...] overrides
// the bpm the default one-beat wait is computed from.
func (p *noteParser) starWaitSeconds(token string) float64 {
	bs := brackets(token)
	if len(bs) == 0 {
		return p.oneBeatOrEpsilon(p.bpm)
	}
	inner := bs[0]

	hashes := strings.Count(inner, "#")
	if hashes == 2 {
		parts := strings.Split(inner, "#")
		if parts[0] != "" {
			v, err := strconv.ParseFloat(parts[0], 64)
			if nil == err {
				return v
			}
			p.warnf(chart.MalformedStarWait, "bad absolute star wait %q in %q", inner, token)
		}
		return p.oneBeatOrEpsilon(p.bpm)
	}

	bpm := p.bpm
	if hashes == 1 {
		parts := strings.SplitN(inner, "#", 2)
		if parts[0] != "" {
			v, err := strconv.ParseFloat(parts[0], 64)
			if nil == err {
				if v > 0 {
					bpm = v
				}
			} else {
				p.warnf(chart.MalformedStarWait, "bad star wait bpm %q in %q", parts[0], token)
			}
		}
	}
	return p.oneBeatOrEpsilon(bpm)
}

func (p *noteParser) oneBeatOrEpsilon(bpm float64) float64 {
	if bpm > 0 {
		return 60.0 / bpm
	}
	return 0.001
}
