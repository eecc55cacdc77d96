package view

import (
	"bufio"
	"io"

	"github.com/bianoble/line-view/internal/directive"
)

// readerState tracks how far through its underlying reader a lineReader
// has progressed once EOF is reached.
type readerState int

const (
	stateReading readerState = iota
	stateSeparator
	stateClosed
)

// lineReader yields one parsed directive per physical line, with 1-based
// positions. At EOF it yields a single synthetic Empty on the EOF position
// and then Close forever; every file therefore ends with exactly one blank
// separator line before it is popped.
type lineReader struct {
	reader   *bufio.Reader
	closer   io.Closer
	position int
	state    readerState
}

func newLineReader(r io.ReadCloser) *lineReader {
	return &lineReader{reader: bufio.NewReader(r), closer: r}
}

func (lr *lineReader) read() (int, directive.Directive, error) {
	switch lr.state {
	case stateSeparator:
		lr.state = stateClosed
		lr.position++
		return lr.position, directive.Directive{Kind: directive.Empty}, nil
	case stateClosed:
		return lr.position, directive.Directive{Kind: directive.Close}, nil
	}

	line, err := lr.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return lr.position + 1, directive.Directive{}, err
	}
	if line == "" && err == io.EOF {
		lr.state = stateClosed
		lr.position++
		return lr.position, directive.Directive{Kind: directive.Empty}, nil
	}

	lr.position++
	if err == io.EOF {
		// Last line arrived without a terminator; the separator follows
		// on the next read.
		lr.state = stateSeparator
	}
	return lr.position, directive.ParseLine(line), nil
}

func (lr *lineReader) close() error {
	if lr.closer == nil {
		return nil
	}
	err := lr.closer.Close()
	lr.closer = nil
	return err
}

// pending is a re-injected directive waiting to be read back.
type pending struct {
	position  int
	directive directive.Directive
}

// stream is the per-source directive stream: a pushback stack over an
// optional lineReader. Synthesized directives (warnings for failed
// includes, Multiple expansions, the then/else handoff) are pushed here
// and drained before the underlying reader is consulted again.
type stream struct {
	stack  []pending
	reader *lineReader
}

func newStream(r io.ReadCloser) *stream {
	return &stream{reader: newLineReader(r)}
}

func (s *stream) push(position int, d directive.Directive) {
	s.stack = append(s.stack, pending{position: position, directive: d})
}

func (s *stream) read() (int, directive.Directive, error) {
	if n := len(s.stack); n > 0 {
		p := s.stack[n-1]
		s.stack = s.stack[:n-1]
		return p.position, p.directive, nil
	}
	if s.reader == nil {
		return 0, directive.Directive{Kind: directive.Close}, nil
	}
	return s.reader.read()
}

// position reports the most recent line number, for error reporting.
func (s *stream) position() int {
	if s.reader == nil {
		return 0
	}
	return s.reader.position
}

func (s *stream) close() error {
	if s.reader == nil {
		return nil
	}
	return s.reader.close()
}
