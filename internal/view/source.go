package view

import (
	"io"
	"path/filepath"

	"github.com/bianoble/line-view/internal/command"
	"github.com/bianoble/line-view/internal/mapper"
	"github.com/bianoble/line-view/internal/resolve"
)

// watch is the two-state warning collector behind watch/then/else.
// While armed, warnings raised in the source are collected instead of
// becoming lines; then/else consume the collection.
type watch struct {
	watching bool
	occurred []string
}

// arm switches to the watching state; arming an armed watch is a no-op,
// the caller reports the redundancy.
func (w *watch) arm() {
	if !w.watching {
		w.watching = true
		w.occurred = nil
	}
}

// take disarms the watch and hands out what was collected.
func (w *watch) take() []string {
	occurred := w.occurred
	w.watching = false
	w.occurred = nil
	return occurred
}

func (w *watch) collect(text string) {
	w.occurred = append(w.occurred, text)
}

// Source is one open file or buffer being read: its directive stream, the
// directory include payloads resolve against, the command handle active
// for its text lines, the sourced set its subtree shares, and its own
// mapper chain and watch state.
//
// Sharing differs by inclusion kind: source-includes receive the parent's
// sourced set and command handle, import-includes receive nothing,
// lines-includes receive only the command handle. Watch state and mapper
// chain are always fresh per source.
type Source struct {
	stream  *stream
	path    string
	dir     string
	cmd     command.Handle
	sourced *resolve.PathSet
	watch   watch
	chain   mapper.Chain
}

// newSource builds a source around an already-provided reader. The path
// may be empty for buffer roots; includes then resolve against the
// process working directory.
func newSource(r io.ReadCloser, path string, dir *command.Directory) *Source {
	parent := ""
	if path != "" {
		parent = filepath.Dir(path)
	}
	return &Source{
		stream:  newStream(r),
		path:    path,
		dir:     parent,
		cmd:     dir.NewHandle(),
		sourced: resolve.NewPathSet(),
	}
}

// openSource obtains the path's reader from the provider. I/O errors
// propagate; the caller decides whether they are fatal (root) or
// degrade to a warning (includes).
func openSource(path string, dir *command.Directory, provider Provider) (*Source, error) {
	r, err := provider.Provide(path)
	if err != nil {
		return nil, err
	}
	return newSource(r, path, dir), nil
}

func (s *Source) close() error {
	return s.stream.close()
}
