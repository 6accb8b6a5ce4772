package client

import "errors"

// ErrConnClosed indicates the connection was already closed by this side.
var ErrConnClosed = errors.New("connection is closed")

// multiErr is a simple error accumulator.
type multiErr []error

func (m *multiErr) add(err error) { *m = append(*m, err) }

func (m multiErr) Error() string {
	if len(m) == 0 {
		return ""
	}
	if len(m) == 1 {
		return m[0].Error()
	}
	msg := "multiple errors:"
	for _, e := range m {
		msg += "\n - " + e.Error()
	}
	return msg
}

func (m multiErr) Unwrap() []error { return m }
