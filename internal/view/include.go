package view

import (
	"github.com/charmbracelet/log"

	"github.com/bianoble/line-view/internal/command"
	"github.com/bianoble/line-view/internal/directive"
	"github.com/bianoble/line-view/internal/resolve"
)

// include resolves an Include directive into a new source, applying the
// per-kind cycle policy. A nil return means the inclusion failed; the
// cause is logged here and the caller embeds only the generic warning
// line, so the document completes either way.
func include(d directive.Directive, parent *Source, imported *resolve.PathSet, dir *command.Directory, provider Provider, home string) *Source {
	path, err := resolve.Path(d.Text, parent.dir, home)
	if err != nil {
		log.Error("include resolution failed", "kind", d.IncludeKind.String(), "path", d.Text, "err", err)
		return nil
	}

	child, err := openSource(path, dir, provider)
	if err != nil {
		log.Error("include open failed", "kind", d.IncludeKind.String(), "path", path, "err", err)
		return nil
	}

	switch d.IncludeKind {
	case directive.IncludeImport:
		// Imports are checked against the parse-global set: a path seen
		// anywhere before is a cycle and is silently dropped.
		if !imported.Visit(path) {
			_ = child.close()
			return nil
		}

	case directive.IncludeSource:
		// Sourced content continues the parent's subtree: same sourced
		// set, same active command. The check-and-insert is one atomic
		// step on the shared set.
		child.sourced = parent.sourced
		child.cmd = parent.cmd
		if !child.sourced.Visit(path) {
			_ = child.close()
			return nil
		}

	case directive.IncludeLines:
		// Lines includes inherit only the command and are never treated
		// as cycles: their chain reduces everything to text, empties and
		// the final close, so they cannot recurse.
		child.cmd = parent.cmd
		child.chain.PushTextOnly()
	}

	return child
}
