// Package processor prefixes every line of a byte stream with a timestamp.
package processor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"tslog/internal/config"
	"tslog/internal/prefix"
)

// Output receives the processed stream. *sink.Set implements it.
type Output interface {
	WriteByte(c byte) error
	WriteString(s string) error
	Flush() error
}

type boundary int

const (
	atLineStart boundary = iota
	midLine
)

// Option configures a Processor.
type Option func(*Processor)

// WithClock replaces time.Now as the source of prefix timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// Processor tracks whether the next byte starts a line. It is not safe for
// concurrent use.
type Processor struct {
	cfg   config.Config
	out   Output
	now   func() time.Time
	state boundary
}

// New creates a Processor that writes to out.
func New(cfg config.Config, out Output, opts ...Option) *Processor {
	p := &Processor{
		cfg:   cfg,
		out:   out,
		now:   time.Now,
		state: atLineStart,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes r until EOF. Output is flushed whenever the input has no
// more buffered data and once more at EOF.
func (p *Processor) Run(r io.Reader) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	for {
		if br.Buffered() == 0 {
			if err := p.out.Flush(); err != nil {
				return err
			}
		}

		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return p.out.Flush()
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := p.Step(c); err != nil {
			return err
		}
	}
}

// Step feeds a single input byte through the line state machine.
func (p *Processor) Step(c byte) error {
	isBreak := c == '\n' || c == '\r'

	if !p.cfg.LineBreak.Normalizes() {
		if isBreak {
			p.state = atLineStart
		} else if p.state == atLineStart {
			if err := p.writePrefix(); err != nil {
				return err
			}
			p.state = midLine
		}
		return p.out.WriteByte(c)
	}

	// Normalized mode: input breaks are swallowed and the configured
	// sequence is emitted once at the start of each line.
	if p.state == atLineStart {
		if err := p.out.WriteString(p.cfg.LineBreak.Sequence()); err != nil {
			return err
		}
		if err := p.writePrefix(); err != nil {
			return err
		}
		p.state = midLine
		if isBreak {
			return nil
		}
		return p.out.WriteByte(c)
	}

	if isBreak {
		p.state = atLineStart
		return nil
	}
	return p.out.WriteByte(c)
}

func (p *Processor) writePrefix() error {
	return p.out.WriteString(prefix.Format(p.now(), p.cfg))
}
