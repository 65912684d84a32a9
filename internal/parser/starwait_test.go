package parser

import (
	"testing"

	"git.lost.host/meutraa/simai/internal/chart"
)

var starWaitTests = map[string]float64{
	"1-2":           0.5, // default, one beat at 120
	"1-2[4:1]":      0.5, // N:D carries no wait information
	"1-2[150#4:1]":  0.4, // override bpm for the one-beat default
	"1-2[1.5##0.5]": 1.5, // explicit wait field
	"1-2[##0.5]":    0.5, // empty wait field falls back to the default
	"1-2[-100#4:1]": 0.5, // non-positive override ignored
	"1-2[4:1][9#x]": 0.5, // only the first bracket is consulted
}

func TestStarWaitSeconds(t *testing.T) {
	for token, expected := range starWaitTests {
		p := noteParser{bpm: 120}
		if got := p.starWaitSeconds(token); !almost(got, expected) {
			t.Errorf("starWaitSeconds(%q) = %v, expected %v", token, got, expected)
		}
	}
}

func TestStarWaitEpsilon(t *testing.T) {
	p := noteParser{bpm: 0}
	if got := p.starWaitSeconds("1-2"); !almost(got, 0.001) {
		t.Errorf("starWaitSeconds at bpm 0 = %v, expected epsilon", got)
	}
}

func TestStarWaitMalformed(t *testing.T) {
	var warns []chart.Warning
	p := noteParser{bpm: 120, warns: &warns}
	if got := p.starWaitSeconds("1-2[abc#4:1]"); !almost(got, 0.5) {
		t.Errorf("malformed override = %v, expected default 0.5", got)
	}
	if len(warns) != 1 || warns[0].Kind != chart.MalformedStarWait {
		t.Errorf("expected one MalformedStarWait warning, got %v", warns)
	}
}
