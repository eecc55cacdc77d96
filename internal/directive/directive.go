// Package directive parses single lines of line-view documents into
// directive values. The parser is pure: it never fails, malformed input
// degrades to a Warning directive.
package directive

import (
	"fmt"
	"strings"
)

// Kind discriminates the directive union.
type Kind int

const (
	Noop Kind = iota
	Empty
	Close
	Clean
	DisplayWarnings
	IgnoreWarnings
	IgnoreText
	Watch
	Then
	Else
	Debug
	EndMap
	Exe
	Arg
	Warning
	Title
	Subtitle
	Text
	Comment
	Include
	Multiple
)

// IncludeKind selects the inclusion policy for an Include directive.
type IncludeKind int

const (
	IncludeImport IncludeKind = iota
	IncludeSource
	IncludeLines
)

func (k IncludeKind) String() string {
	switch k {
	case IncludeImport:
		return "import"
	case IncludeSource:
		return "source"
	case IncludeLines:
		return "lines"
	}
	return "unknown"
}

// Directive is one parsed line. Only the fields relevant to Kind are set:
// Text for payload-carrying kinds, IncludeKind for Include, Automatic for
// EndMap, Batch for Multiple.
type Directive struct {
	Kind        Kind
	Text        string
	IncludeKind IncludeKind
	Automatic   bool
	Batch       []Directive
}

// Convenience constructors for synthesized directives.

func NewWarning(text string) Directive { return Directive{Kind: Warning, Text: text} }
func NewText(text string) Directive    { return Directive{Kind: Text, Text: text} }

func NewEndMap(automatic bool) Directive {
	return Directive{Kind: EndMap, Automatic: automatic}
}

func NewMultiple(batch []Directive) Directive {
	return Directive{Kind: Multiple, Batch: batch}
}

func NewInclude(kind IncludeKind, path string) Directive {
	return Directive{Kind: Include, IncludeKind: kind, Text: path}
}

var kindNames = map[Kind]string{
	Noop:            "noop",
	Empty:           "empty",
	Close:           "close",
	Clean:           "clean",
	DisplayWarnings: "display-warnings",
	IgnoreWarnings:  "ignore-warnings",
	IgnoreText:      "ignore-text",
	Watch:           "watch",
	Then:            "then",
	Else:            "else",
	Debug:           "debug",
	EndMap:          "end",
	Exe:             "exe",
	Arg:             "arg",
	Warning:         "warning",
	Title:           "title",
	Subtitle:        "subtitle",
	Text:            "text",
	Comment:         "comment",
	Include:         "include",
	Multiple:        "multiple",
}

// String renders the canonical directive syntax. Parsing the result yields
// a directive with the same kind and payload, which is what debug tracing
// and the round-trip tests rely on. Payloads are always quoted so leading
// and trailing whitespace survives a re-parse.
func (d Directive) String() string {
	switch d.Kind {
	case Exe, Arg, Warning, Title, Subtitle, Text, Comment:
		return fmt.Sprintf("#-%s %q", kindNames[d.Kind], d.Text)
	case Include:
		return fmt.Sprintf("#-%s %q", d.IncludeKind, d.Text)
	case Multiple:
		parts := make([]string, len(d.Batch))
		for i, sub := range d.Batch {
			parts[i] = sub.String()
		}
		return "multiple[" + strings.Join(parts, "; ") + "]"
	case EndMap:
		if d.Automatic {
			return "#-end (automatic)"
		}
		return "#-end"
	default:
		return "#-" + kindNames[d.Kind]
	}
}
