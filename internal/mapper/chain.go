// Package mapper implements the scoped directive-rewriting chain behind
// watch/then/else, warning and text suppression, the lines-include filter,
// and debug tracing. A chain is an explicit stack of frames; every
// directive read from a source is folded through the stack from the most
// recent frame down to the base before the interpreter acts on it.
package mapper

import "github.com/bianoble/line-view/internal/directive"

type frameKind int

const (
	frameThen frameKind = iota
	frameElse
	frameIgnoreWarnings
	frameIgnoreText
	frameDebug
	frameTextOnly
)

func (k frameKind) String() string {
	switch k {
	case frameThen:
		return "then"
	case frameElse:
		return "else"
	case frameIgnoreWarnings:
		return "ignore-warnings"
	case frameIgnoreText:
		return "ignore-text"
	case frameDebug:
		return "debug"
	case frameTextOnly:
		return "text-only"
	}
	return "unknown"
}

// frame is one installed filter. warnings is only meaningful for then and
// else frames; automatic separates frames installed by the machinery
// (lines includes) from frames installed by document directives, so an
// end directive can only close what a document opened.
type frame struct {
	kind      frameKind
	automatic bool
	warnings  []string
}

// Chain is an ordered stack of frames. The zero value is an empty,
// usable chain.
type Chain struct {
	frames []frame
}

// PushThen installs a then frame seeded with the warnings collected by the
// watch block it resolves.
func (c *Chain) PushThen(warnings []string) {
	c.frames = append(c.frames, frame{kind: frameThen, warnings: warnings})
}

// PushElse installs an else frame seeded with the warnings collected by
// the watch block it resolves.
func (c *Chain) PushElse(warnings []string) {
	c.frames = append(c.frames, frame{kind: frameElse, warnings: warnings})
}

// PushIgnoreWarnings installs a frame that drops Warning directives.
func (c *Chain) PushIgnoreWarnings() {
	c.frames = append(c.frames, frame{kind: frameIgnoreWarnings})
}

// PushIgnoreText installs a frame that drops Text directives.
func (c *Chain) PushIgnoreText() {
	c.frames = append(c.frames, frame{kind: frameIgnoreText})
}

// PushDebug installs the tracing identity frame.
func (c *Chain) PushDebug() {
	c.frames = append(c.frames, frame{kind: frameDebug})
}

// PushTextOnly installs the automatic frame mounted on lines-include
// sources: everything except Empty, Close and Text is neutralized, which
// is what makes lines includes incapable of recursing.
func (c *Chain) PushTextOnly() {
	c.frames = append(c.frames, frame{kind: frameTextOnly, automatic: true})
}

// Len returns the number of installed frames.
func (c *Chain) Len() int { return len(c.frames) }

// TopAutomatic reports the automatic flag of the top frame. It must not be
// called on an empty chain.
func (c *Chain) TopAutomatic() bool {
	return c.frames[len(c.frames)-1].automatic
}

// Pop removes the top frame. It must not be called on an empty chain.
func (c *Chain) Pop() {
	c.frames = c.frames[:len(c.frames)-1]
}

// Apply folds a directive through the chain, most recent frame first. The
// depth passed to each frame is its distance from the top: the frames that
// forward EndMap only at depth 0 are thereby guaranteed to be the frame
// the EndMap is about to close.
func (c *Chain) Apply(d directive.Directive) directive.Directive {
	for depth := 0; depth < len(c.frames); depth++ {
		f := c.frames[len(c.frames)-1-depth]
		d = f.apply(d, depth)
	}
	return d
}
