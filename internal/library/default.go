package library

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"
	"strings"

	"git.lost.host/meutraa/simai/internal/chart"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultLibrary struct {
	db *sql.DB
}

func (l *DefaultLibrary) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists charts
	  (
		  id integer not null primary key,
		  sum text,
		  source text,
		  title text,
		  artist text,
		  designer text,
		  levels text,
		  notes integer,
		  document blob
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		return err
	}

	l.db = db
	return nil
}

func (l *DefaultLibrary) Deinit() {
	if nil != l.db {
		l.db.Close()
	}
}

// Sum hashes the raw fumen blocks, so re-indexing an edited chart yields
// a new entry while metadata-only edits do not.
func Sum(doc *chart.Document) string {
	h := sha256.New()
	for i := 0; i < chart.SlotCount; i++ {
		h.Write([]byte(doc.Fumens[i]))
		h.Write([]byte{0})
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func countNotes(doc *chart.Document) int {
	notes := 0
	for _, c := range doc.Charts {
		if nil == c {
			continue
		}
		for _, e := range c.Events {
			notes += len(e.Notes)
		}
	}
	return notes
}

func (l *DefaultLibrary) Save(doc *chart.Document, source string) error {
	data, err := json.Marshal(doc)
	if nil != err {
		return err
	}
	_, err = l.db.Exec(
		"insert into charts(sum, source, title, artist, designer, levels, notes, document) values(?, ?, ?, ?, ?, ?, ?, ?)",
		Sum(doc), source, doc.Title, doc.Artist, doc.Designer,
		strings.Join(doc.Levels[:], ","), countNotes(doc), data)
	return err
}

func (l *DefaultLibrary) Load(sum string) ([]Entry, error) {
	return l.query("select sum, source, title, artist, designer, levels, notes, document from charts where sum = ?", sum)
}

func (l *DefaultLibrary) List() ([]Entry, error) {
	return l.query("select sum, source, title, artist, designer, levels, notes, document from charts")
}

func (l *DefaultLibrary) query(stmt string, args ...interface{}) ([]Entry, error) {
	entries := []Entry{}
	rows, err := l.db.Query(stmt, args...)
	if nil != err {
		if err == sql.ErrNoRows {
			return entries, nil
		}
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var e Entry
		var levels string
		var data []byte
		if err := rows.Scan(&e.Sum, &e.Source, &e.Title, &e.Artist, &e.Designer, &levels, &e.Notes, &data); nil != err {
			log.Println("unable to scan chart entry", err)
			continue
		}
		e.Levels = strings.Split(levels, ",")
		var doc chart.Document
		if err := json.Unmarshal(data, &doc); nil != err {
			log.Println("unable to unmarshal chart document", err)
		} else {
			e.Document = &doc
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
