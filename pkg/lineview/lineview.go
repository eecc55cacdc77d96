// Package lineview provides the public Go library API for line-view.
//
// A line-view document is a plain text file whose lines are either
// displayable text or directives (prefixed "#-") that set titles, bind
// executable commands to subsequent lines, include other files, and scope
// conditional warning handling. Parsing materializes an immutable
// LineView: an ordered, titled sequence of lines, each optionally bound
// to a command.
//
// # Basic Usage
//
//	view, err := lineview.ReadPath("/path/to/doc.lineview", lineview.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(view.Title())
//	for i := range view.Lines() {
//	    line := view.At(i)
//	    fmt.Println(line.Text())
//	}
//	// React to a click on line 3.
//	if err := view.At(2).Execute(); err != nil {
//	    log.Print(err)
//	}
package lineview

import (
	"io"
	"os"

	"github.com/bianoble/line-view/internal/view"
)

// Options configures a parse run.
type Options struct {
	// Provider supplies readers for resolved include paths. Nil means
	// the local filesystem.
	Provider Provider

	// Home is the directory "~/" expands to in include payloads. Empty
	// means the current user's home; expansion failure inside a document
	// degrades to a warning line, never an error.
	Home string
}

func (o Options) fill() Options {
	if o.Provider == nil {
		o.Provider = view.FileProvider{}
	}
	if o.Home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			o.Home = home
		}
	}
	return o
}

// ReadPath parses the document at path. Only failure to open or read the
// root itself is returned as an error; every problem inside the document
// or its includes is embedded as warning lines.
func ReadPath(path string, opts Options) (*View, error) {
	opts = opts.fill()
	return view.ReadPath(path, opts.Provider, opts.Home)
}

// ReadBuffer parses a document from r; includes resolve against the
// process working directory and the title defaults to "No Title".
func ReadBuffer(r io.Reader, opts Options) (*View, error) {
	opts = opts.fill()
	return view.ReadBuffer(r, opts.Provider, opts.Home)
}
