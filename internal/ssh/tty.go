// Package ssh lets a tcell screen run over an SSH session.
package ssh

import (
	"errors"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned for sessions opened without a pseudo-terminal.
var ErrNoPty = errors.New("session has no pty")

// Session is the part of a gliderlabs session the Tty needs.
type Session interface {
	io.ReadWriteCloser
	Pty() (gossh.Pty, <-chan gossh.Window, bool)
}

// Tty implements tcell.Tty on top of an SSH session. Window changes sent by
// the client are forwarded to tcell as resize notifications.
type Tty struct {
	session Session
	term    string
	winCh   <-chan gossh.Window
	done    chan struct{}
	once    sync.Once

	mu     sync.Mutex
	window gossh.Window
	resize func()
}

// NewTty wraps s. It fails with ErrNoPty when the client did not request one.
func NewTty(s Session) (*Tty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	return &Tty{
		session: s,
		term:    pty.Term,
		winCh:   winCh,
		window:  pty.Window,
		done:    make(chan struct{}),
	}, nil
}

// Term is the terminal type the client announced.
func (t *Tty) Term() string { return t.term }

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close stops resize forwarding and closes the session.
func (t *Tty) Close() error {
	t.once.Do(func() { close(t.done) })
	return t.session.Close()
}

// Start, Stop and Drain have nothing to do: the channel is already in raw mode
// on the client side and writes are not buffered.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize reports the most recent client window.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts forwarding window changes until the
// channel closes or the Tty is closed.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	go t.forward()
}

func (t *Tty) forward() {
	for {
		select {
		case <-t.done:
			return
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.mu.Lock()
			t.window = win
			cb := t.resize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}
}
