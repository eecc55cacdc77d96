package command

import "fmt"

// Handle addresses one command inside a Directory: a source scope plus a
// generation within that scope. Handles are only ever minted by the
// Directory, so resolving one cannot fail.
type Handle struct {
	scope      int
	generation int
}

// Generation returns the handle's generation index within its scope.
func (h Handle) Generation() int { return h.generation }

// Directory is the parse-time arena of commands: one inner arena per
// scope, indexed by generation. Generations are allocated densely, so a
// plain slice of slices suffices.
type Directory struct {
	scopes [][]*Cmd
}

// NewDirectory returns an empty command directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// NewHandle allocates a fresh scope holding a single empty command at
// generation 0.
func (d *Directory) NewHandle() Handle {
	d.scopes = append(d.scopes, []*Cmd{{}})
	return Handle{scope: len(d.scopes) - 1, generation: 0}
}

// NextGeneration allocates the scope's first unused generation and returns
// its handle. The new command is always empty: holders of older handles in
// the scope may have advanced it in the meantime, and their generations are
// never reused. Clean uses this to rebind a source to a fresh command while
// keeping its scope.
func (d *Directory) NextGeneration(h Handle) Handle {
	d.check(h)
	d.scopes[h.scope] = append(d.scopes[h.scope], &Cmd{})
	return Handle{scope: h.scope, generation: len(d.scopes[h.scope]) - 1}
}

// Get resolves a handle to its command for mutation during parsing.
func (d *Directory) Get(h Handle) *Cmd {
	d.check(h)
	return d.scopes[h.scope][h.generation]
}

// check panics on fabricated handles; handles never leave the directory's
// control, so an invalid one is a programmer error.
func (d *Directory) check(h Handle) {
	if h.scope < 0 || h.scope >= len(d.scopes) ||
		h.generation < 0 || h.generation >= len(d.scopes[h.scope]) {
		panic(fmt.Sprintf("command: invalid handle (scope %d, generation %d)", h.scope, h.generation))
	}
}

// Freeze ends the mutation phase. The returned view resolves handles to
// the same shared *Cmd values the directory accumulated; a document with
// ten thousand lines and one exe directive yields one command instance.
func (d *Directory) Freeze() *Resolved {
	return &Resolved{scopes: d.scopes}
}

// Resolved is the read-only, post-parse view of a Directory.
type Resolved struct {
	scopes [][]*Cmd
}

// Get resolves a handle to its shared command.
func (r *Resolved) Get(h Handle) *Cmd {
	if h.scope < 0 || h.scope >= len(r.scopes) ||
		h.generation < 0 || h.generation >= len(r.scopes[h.scope]) {
		panic(fmt.Sprintf("command: invalid handle (scope %d, generation %d)", h.scope, h.generation))
	}
	return r.scopes[h.scope][h.generation]
}
