package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/bianoble/line-view/internal/command"
	"github.com/bianoble/line-view/internal/resolve"
)

// DefaultTitle is used when the document sets no title and was read from
// a buffer.
const DefaultTitle = "No Title"

// LineView is the finished, immutable artifact of a parse: an ordered
// sequence of lines and a resolved title.
type LineView struct {
	title string
	lines []Line
}

// ReadPath parses the document at path. Home is the directory used for
// "~/" expansion in include payloads; empty means expansion fails with a
// warning. Failure to open or read path itself is fatal; every other
// problem is embedded in the output as warning lines.
func ReadPath(path string, provider Provider, home string) (*LineView, error) {
	canonical, err := resolve.Path(path, "", home)
	if err != nil {
		return nil, fmt.Errorf("resolving root source %s: %w", path, err)
	}

	dir := command.NewDirectory()
	root, err := openSource(canonical, dir, provider)
	if err != nil {
		return nil, fmt.Errorf("opening root source %s: %w", path, err)
	}

	p := &interp{
		imported: resolve.NewPathSet(),
		dir:      dir,
		provider: provider,
		home:     home,
	}
	p.imported.Add(canonical)

	if err := p.run(root); err != nil {
		return nil, err
	}
	return p.finish(path), nil
}

// ReadBuffer parses a document from an in-memory or streamed buffer. The
// source has no path: includes resolve relative to the process working
// directory and the title defaults to "No Title".
func ReadBuffer(r io.Reader, provider Provider, home string) (*LineView, error) {
	dir := command.NewDirectory()
	root := newSource(io.NopCloser(r), "", dir)

	p := &interp{
		imported: resolve.NewPathSet(),
		dir:      dir,
		provider: provider,
		home:     home,
	}

	if err := p.run(root); err != nil {
		return nil, err
	}
	return p.finish(""), nil
}

// run drives the stack machine to natural termination. Read errors on the
// root abort construction; read errors on included sources are logged,
// leave a warning line, and pop the failed source so the document still
// completes.
func (p *interp) run(root *Source) error {
	p.sources = append(p.sources, root)

	for len(p.sources) > 0 {
		src := p.sources[len(p.sources)-1]

		act, err := p.step(src)
		if err != nil {
			if src == root {
				p.closeAll()
				return fmt.Errorf("reading root source: %w", err)
			}
			log.Error("read failed on included source", "path", src.path, "err", err)
			p.pushWarning(src, src.stream.position(), "could not read "+src.path)
			p.pop()
			continue
		}

		switch act {
		case actionPop:
			p.pop()
		case actionPush:
			p.sources = append(p.sources, p.pushed)
			p.pushed = nil
		}
	}

	return nil
}

func (p *interp) pop() {
	src := p.sources[len(p.sources)-1]
	p.sources = p.sources[:len(p.sources)-1]
	if err := src.close(); err != nil {
		log.Warn("closing source", "path", src.path, "err", err)
	}
}

func (p *interp) closeAll() {
	for len(p.sources) > 0 {
		p.pop()
	}
}

// finish freezes the command directory and resolves every entry's handle
// into its shared command, producing the immutable view.
func (p *interp) finish(rootPath string) *LineView {
	title := p.title
	if !p.hasTitle {
		if rootPath != "" {
			title = rootPath
		} else {
			title = DefaultTitle
		}
	}

	resolved := p.dir.Freeze()
	lines := make([]Line, len(p.entries))
	for i, e := range p.entries {
		lines[i] = e.finish(resolved)
	}

	return &LineView{title: title, lines: lines}
}

// Title returns the resolved document title.
func (v *LineView) Title() string { return v.title }

// Len returns the number of lines.
func (v *LineView) Len() int { return len(v.lines) }

// At returns the line at index i.
func (v *LineView) At(i int) *Line { return &v.lines[i] }

// Lines returns the ordered line sequence for iteration. Callers must not
// mutate it.
func (v *LineView) Lines() []Line { return v.lines }
