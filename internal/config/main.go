package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Path     = kingpin.Arg("path", "Chart file or song directory").Required().ExistingFileOrDir()
	JSON     = kingpin.Flag("json", "Print each parsed document as JSON").Short('j').Bool()
	Indent   = kingpin.Flag("indent", "Indent string for JSON output").Default("  ").String()
	Index    = kingpin.Flag("index", "Save parsed charts to the library database").Short('i').Bool()
	Database = kingpin.Flag("db", "Library database path").Default("./charts.db").String()
	Jobs     = kingpin.Flag("jobs", "Concurrent difficulty parses per chart").Default("7").Short('n').Int()
	Verbose  = kingpin.Flag("verbose", "Log parser warnings").Short('v').Bool()
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
