// Package sink broadcasts the prefixed stream to every configured destination.
package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// WriteError reports which destination failed.
type WriteError struct {
	Sink string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("sink %s: %v", e.Sink, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type sink struct {
	name string
	w    *bufio.Writer
	// closer is nil for destinations the Set does not own.
	closer io.Closer
}

// Set is an ordered collection of destinations. Every write reaches the
// destinations in the order they were added. A Set is not safe for
// concurrent use.
type Set struct {
	sinks []*sink
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add registers a destination owned by the caller. Close flushes it but
// leaves it open.
func (s *Set) Add(name string, w io.Writer) {
	s.sinks = append(s.sinks, &sink{name: name, w: bufio.NewWriter(w)})
}

// AddOwned registers a destination the Set closes in Close.
func (s *Set) AddOwned(name string, w io.WriteCloser) {
	s.sinks = append(s.sinks, &sink{name: name, w: bufio.NewWriter(w), closer: w})
}

// Len returns the number of destinations.
func (s *Set) Len() int {
	return len(s.sinks)
}

// Names returns the destination names in registration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.sinks))
	for i, sk := range s.sinks {
		names[i] = sk.name
	}
	return names
}

// WriteByte writes c to every destination. It stops at the first failure.
func (s *Set) WriteByte(c byte) error {
	for _, sk := range s.sinks {
		if err := sk.w.WriteByte(c); err != nil {
			return &WriteError{Sink: sk.name, Err: err}
		}
	}
	return nil
}

// WriteString writes str to every destination. It stops at the first failure.
func (s *Set) WriteString(str string) error {
	for _, sk := range s.sinks {
		if _, err := sk.w.WriteString(str); err != nil {
			return &WriteError{Sink: sk.name, Err: err}
		}
	}
	return nil
}

// Flush pushes buffered output to every destination.
func (s *Set) Flush() error {
	for _, sk := range s.sinks {
		if err := sk.w.Flush(); err != nil {
			return &WriteError{Sink: sk.name, Err: err}
		}
	}
	return nil
}

// Close flushes every destination and closes the owned ones. All
// destinations are visited even when some fail.
func (s *Set) Close() error {
	var errs []error
	for _, sk := range s.sinks {
		if err := sk.w.Flush(); err != nil {
			errs = append(errs, &WriteError{Sink: sk.name, Err: err})
		}
		if sk.closer == nil {
			continue
		}
		if err := sk.closer.Close(); err != nil {
			errs = append(errs, &WriteError{Sink: sk.name, Err: fmt.Errorf("close: %w", err)})
		}
	}
	return errors.Join(errs...)
}
