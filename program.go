package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"git.lost.host/meutraa/simai/internal/chart"
	"git.lost.host/meutraa/simai/internal/config"
	"git.lost.host/meutraa/simai/internal/library"
	"git.lost.host/meutraa/simai/internal/parser"
)

type Program struct {
	Parser  *parser.DefaultParser
	Library *library.DefaultLibrary

	chartFiles []string
}

func (p *Program) Init() error {
	p.Parser = &parser.DefaultParser{Jobs: *config.Jobs}

	info, err := os.Stat(*config.Path)
	if nil != err {
		return fmt.Errorf("unable to stat chart path: %w", err)
	}

	if !info.IsDir() {
		p.chartFiles = []string{*config.Path}
	} else if err := filepath.Walk(*config.Path, func(path string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if !info.IsDir() && info.Name() == "maidata.txt" {
			p.chartFiles = append(p.chartFiles, path)
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	if len(p.chartFiles) == 0 {
		return fmt.Errorf("no maidata.txt found under %v", *config.Path)
	}

	if *config.Index {
		p.Library = &library.DefaultLibrary{}
		if err := p.Library.Init(*config.Database); nil != err {
			return fmt.Errorf("unable to open chart library: %w", err)
		}
	}
	return nil
}

func (p *Program) Deinit() {
	if nil != p.Library {
		p.Library.Deinit()
	}
}

func (p *Program) Run() error {
	for _, file := range p.chartFiles {
		doc, err := p.Parser.Parse(file)
		if nil != err {
			return err
		}

		p.report(file, doc)

		if *config.JSON {
			data, err := json.MarshalIndent(doc, "", *config.Indent)
			if nil != err {
				return err
			}
			fmt.Println(string(data))
		}

		if nil != p.Library {
			if err := p.Library.Save(doc, file); nil != err {
				log.Println("unable to index chart", file, err)
			}
		}
	}
	return nil
}

func (p *Program) report(file string, doc *chart.Document) {
	fmt.Printf("%v\n", file)
	fmt.Printf("    %v - %v (%v)\n", doc.Title, doc.Artist, doc.Designer)

	for i, c := range doc.Charts {
		if nil == c || (len(c.Events) == 0 && c.Level == "") {
			continue
		}
		notes := 0
		for _, e := range c.Events {
			notes += len(e.Notes)
		}
		fmt.Printf("%2v) %5v  %5v notes  %5v markers  %3v warnings\n",
			i+1, c.Level, notes, len(c.Markers), len(c.Warnings))

		if *config.Verbose {
			for _, w := range c.Warnings {
				log.Printf("%v:%v:%v: %v: %v\n", file, w.Line+1, w.Column+1, w.Kind, w.Text)
			}
		}
	}

	if *config.Verbose {
		for _, w := range doc.Warnings {
			log.Printf("%v:%v: %v: %v\n", file, w.Line+1, w.Kind, w.Text)
		}
	}
}
