package view

import (
	"github.com/bianoble/line-view/internal/command"
	"github.com/bianoble/line-view/internal/directive"
	"github.com/bianoble/line-view/internal/resolve"
)

// action is what one interpreter step asks of the source stack.
type action int

const (
	actionNone action = iota
	actionPop
	actionPush
)

// interp is the source stack machine: the active sources (last is top),
// the accumulated output entries, the first-wins title, the command
// directory and the parse-global import set.
type interp struct {
	sources  []*Source
	imported *resolve.PathSet
	entries  []entry
	title    string
	hasTitle bool
	dir      *command.Directory
	provider Provider
	home     string

	// pushed carries the new source of an actionPush result.
	pushed *Source
}

// pushWarning routes a warning: an armed watch collects it, otherwise it
// becomes a warning line.
func (p *interp) pushWarning(src *Source, position int, text string) {
	if src.watch.watching {
		src.watch.collect(text)
		return
	}
	p.entries = append(p.entries, entry{
		text:     text,
		source:   src.path,
		position: position,
		kind:     LineWarning,
	})
}

// step reads one directive from src, folds it through the source's mapper
// chain and applies its effect. Exactly one of: a stack action, a state
// mutation, or appended output.
func (p *interp) step(src *Source) (action, error) {
	position, d, err := src.stream.read()
	if err != nil {
		return actionNone, err
	}

	d = src.chain.Apply(d)

	switch d.Kind {
	case directive.Noop, directive.Comment:
		// Comments produce nothing.

	case directive.Close:
		return actionPop, nil

	case directive.Clean:
		src.cmd = p.dir.NextGeneration(src.cmd)

	case directive.Exe:
		p.dir.Get(src.cmd).SetExe(d.Text)

	case directive.Arg:
		p.dir.Get(src.cmd).AddArg(d.Text)

	case directive.Watch:
		if src.watch.watching {
			p.pushWarning(src, position, "watch called multiple times before else or then block")
		} else {
			src.watch.arm()
		}

	case directive.Then:
		if src.watch.watching {
			src.chain.PushThen(src.watch.take())
		} else {
			p.pushWarning(src, position, "then blocks need to be placed somewhere after a watch directive")
		}

	case directive.Else:
		if src.watch.watching {
			src.chain.PushElse(src.watch.take())
		} else {
			p.pushWarning(src, position, "else blocks need to be placed somewhere after a watch directive")
		}

	case directive.DisplayWarnings:
		// An else frame holding warnings intercepts this before it gets
		// here; reaching the interpreter means it was misplaced.
		p.pushWarning(src, position, "warnings can only be displayed in else blocks")

	case directive.IgnoreWarnings:
		src.chain.PushIgnoreWarnings()

	case directive.IgnoreText:
		src.chain.PushIgnoreText()

	case directive.Debug:
		src.chain.PushDebug()

	case directive.EndMap:
		p.endMap(src, position, d.Automatic)

	case directive.Warning:
		p.pushWarning(src, position, d.Text)

	case directive.Title:
		if !p.hasTitle {
			p.title = d.Text
			p.hasTitle = true
		}

	case directive.Subtitle:
		p.entries = append(p.entries, entry{
			text:     d.Text,
			source:   src.path,
			position: position,
			kind:     LineTitle,
		})

	case directive.Empty:
		p.entries = append(p.entries, entry{
			source:   src.path,
			position: position,
		})

	case directive.Text:
		p.entries = append(p.entries, entry{
			text:     d.Text,
			source:   src.path,
			position: position,
			hasCmd:   true,
			cmd:      src.cmd,
		})

	case directive.Include:
		child := include(d, src, p.imported, p.dir, p.provider, p.home)
		if child == nil {
			// Failure is data: the warning is re-injected at the same
			// position so it passes the mapper chain like any other
			// directive.
			src.stream.push(position, directive.NewWarning("could not source/import/lines "+d.Text))
			return actionNone, nil
		}
		p.pushed = child
		return actionPush, nil

	case directive.Multiple:
		// Reverse order on the pushback stack, original order on read.
		for i := len(d.Batch) - 1; i >= 0; i-- {
			src.stream.push(position, d.Batch[i])
		}
	}

	return actionNone, nil
}

// endMap closes the top mapper frame, but only when the directive's
// automatic flag matches the frame's: a manual end cannot close an
// automatically installed frame and vice versa.
func (p *interp) endMap(src *Source, position int, automatic bool) {
	if src.chain.Len() == 0 {
		if automatic {
			p.pushWarning(src, position, "automatic end issued with no active mapper")
		} else {
			p.pushWarning(src, position, "end directive used with nothing to end")
		}
		return
	}

	switch {
	case src.chain.TopAutomatic() == automatic:
		src.chain.Pop()
	case automatic:
		p.pushWarning(src, position, "automatic end issued while a manual end directive was required")
	default:
		p.pushWarning(src, position, "end directive was given when an automatic end was required")
	}
}
