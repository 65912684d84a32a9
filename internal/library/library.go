package library

import "git.lost.host/meutraa/simai/internal/chart"

type Library interface {
	Init(path string) error
	Deinit()

	// Save indexes one parsed document under its content hash
	Save(doc *chart.Document, source string) error

	// Load returns every indexed entry with a matching content hash
	Load(sum string) ([]Entry, error)

	List() ([]Entry, error)
}

type Entry struct {
	Sum      string
	Source   string
	Title    string
	Artist   string
	Designer string
	Levels   []string
	Notes    int
	Document *chart.Document
}
