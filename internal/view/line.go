package view

import "github.com/bianoble/line-view/internal/command"

// LineKind tags a finished line for rendering.
type LineKind int

const (
	LineDefault LineKind = iota
	LineTitle
	LineWarning
)

// Line is one displayable line of a finished LineView: its text, where it
// came from, and the command bound to it (possibly none). Immutable.
type Line struct {
	text     string
	source   string
	position int
	kind     LineKind
	cmd      *command.Cmd
}

// Text returns the displayable text.
func (l *Line) Text() string { return l.text }

// Position returns the 1-based line number within the line's source.
func (l *Line) Position() int { return l.position }

// Source returns the source identifier communicated to spawned processes,
// formatted as "FILE:<path>".
func (l *Line) Source() string { return "FILE:" + l.source }

// Path returns the raw source path.
func (l *Line) Path() string { return l.source }

// IsTitle reports whether the line renders as a (sub)title.
func (l *Line) IsTitle() bool { return l.kind == LineTitle }

// IsWarning reports whether the line renders as a warning.
func (l *Line) IsWarning() bool { return l.kind == LineWarning }

// Kind returns the line's render kind.
func (l *Line) Kind() LineKind { return l.kind }

// HasCommand reports whether executing the line does anything.
func (l *Line) HasCommand() bool { return !l.cmd.IsEmpty() }

// Execute spawns the line's bound command with the line's own text as the
// trailing argument. Lines without a command are a no-op.
func (l *Line) Execute() error {
	return l.cmd.Execute(l.position, l.Source(), l.text)
}

// entry is the parse-time form of a Line: the command is still a handle
// into the live directory, resolved once parsing terminates.
type entry struct {
	text     string
	source   string
	position int
	kind     LineKind
	hasCmd   bool
	cmd      command.Handle
}

func (e entry) finish(resolved *command.Resolved) Line {
	line := Line{
		text:     e.text,
		source:   e.source,
		position: e.position,
		kind:     e.kind,
	}
	if e.hasCmd {
		line.cmd = resolved.Get(e.cmd)
	}
	return line
}
