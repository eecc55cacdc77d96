package mapper

import (
	"github.com/charmbracelet/log"

	"github.com/bianoble/line-view/internal/directive"
)

func (f frame) apply(d directive.Directive, depth int) directive.Directive {
	switch f.kind {
	case frameThen:
		return f.applyThen(d, depth)
	case frameElse:
		return f.applyElse(d, depth)
	case frameIgnoreWarnings:
		if d.Kind == directive.Warning {
			return directive.Directive{Kind: directive.Noop}
		}
		return d
	case frameIgnoreText:
		if d.Kind == directive.Text {
			return directive.Directive{Kind: directive.Noop}
		}
		return d
	case frameDebug:
		log.Debug("directive", "map", f.kind.String(), "depth", depth, "directive", d.String())
		return d
	case frameTextOnly:
		switch d.Kind {
		case directive.Close, directive.Empty, directive.Text:
			return d
		default:
			return directive.Directive{Kind: directive.Noop}
		}
	}
	return d
}

// applyThen implements the then half of a watch block. An else directive
// always hands over to a sibling else frame: the then frame re-closes
// itself, re-arms the watch, replays the collected warnings into it and
// re-issues the else so the new frame is seeded identically.
func (f frame) applyThen(d directive.Directive, depth int) directive.Directive {
	if d.Kind == directive.Else {
		batch := make([]directive.Directive, 0, len(f.warnings)+3)
		batch = append(batch, directive.NewEndMap(false), directive.Directive{Kind: directive.Watch})
		for _, w := range f.warnings {
			batch = append(batch, directive.NewWarning(w))
		}
		batch = append(batch, directive.Directive{Kind: directive.Else})
		return directive.NewMultiple(batch)
	}

	// No warnings were collected: the block body applies unmodified.
	if len(f.warnings) == 0 {
		return d
	}

	switch {
	case d.Kind == directive.Close:
		// Close pops the source and must always get through.
		return d
	case d.Kind == directive.EndMap && depth == 0:
		// Only the end that closes this very frame may pass, otherwise
		// the block could never terminate.
		return d
	default:
		return directive.Directive{Kind: directive.Noop}
	}
}

// applyElse implements the else half. With warnings collected the body
// applies and display-warnings replays them; without warnings the body is
// suppressed apart from Close and the frame's own end.
func (f frame) applyElse(d directive.Directive, depth int) directive.Directive {
	if len(f.warnings) > 0 {
		if d.Kind == directive.DisplayWarnings {
			batch := make([]directive.Directive, len(f.warnings))
			for i, w := range f.warnings {
				batch[i] = directive.NewWarning(w)
			}
			return directive.NewMultiple(batch)
		}
		return d
	}

	switch {
	case d.Kind == directive.Close:
		return d
	case d.Kind == directive.EndMap && depth == 0:
		return d
	default:
		return directive.Directive{Kind: directive.Noop}
	}
}
