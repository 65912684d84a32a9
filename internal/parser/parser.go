package parser

import "git.lost.host/meutraa/simai/internal/chart"

type Parser interface {
	Parse(file string) (*chart.Document, error)
	ParseString(text string) *chart.Document
}
