// shadowdelve-server serves one independent dungeon to every SSH session.
//
//	go build -o shadowdelve-server ./cmd/server
//	./shadowdelve-server [-port 2222] [-key server_host_key]
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"shadowdelve/internal/config"
	"shadowdelve/internal/game"
	"shadowdelve/internal/logger"
	internalssh "shadowdelve/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	flag.IntVar(&cfg.SSHPort, "port", cfg.SSHPort, "SSH server port")
	flag.StringVar(&cfg.SSHHostKey, "key", cfg.SSHHostKey, "PEM host key path (generated if absent)")
	maxSessions := flag.Int("max-sessions", 32, "concurrent sessions allowed")
	flag.Parse()

	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	log := logger.Log
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid settings")
	}

	signer, err := loadOrCreateHostKey(cfg.SSHHostKey)
	if err != nil {
		log.WithError(err).Fatal("host key")
	}

	h := &handler{cfg: cfg, slots: make(chan struct{}, *maxSessions)}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", cfg.SSHPort),
		Handler:     h.serve,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.WithField("port", cfg.SSHPort).Info("listening")
	log.Fatal(srv.ListenAndServe())
}

// handler runs one game per session. slots bounds how many run at once.
type handler struct {
	cfg   config.Config
	slots chan struct{}
}

func (h *handler) serve(s gossh.Session) {
	log := logger.Log.WithFields(logrus.Fields{
		"user":   sanitizeName(s.User()),
		"remote": s.RemoteAddr().String(),
	})

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	default:
		fmt.Fprintln(s, "The dungeon is full, try again later.")
		log.Warn("rejected: no free slot")
		return
	}

	screen, err := newSessionScreen(s)
	if err != nil {
		fmt.Fprintf(s, "Cannot start: %v\n", err)
		log.WithError(err).Warn("screen setup failed")
		return
	}
	defer screen.Fini()

	// Every session explores its own dungeon.
	cfg := h.cfg
	cfg.Seed = 0
	g, err := game.New(cfg)
	if err != nil {
		log.WithError(err).Error("generate")
		return
	}
	log.WithField("seed", g.Seed()).Info("session started")
	g.Run(screen)
	log.WithField("turns", g.Turn()).Info("session closed")
}

// allowedTerms lists the TERM values accepted from clients. The value ends up
// in the process environment, so anything else falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// termMu serializes os.Setenv("TERM") with terminfo lookup.
var termMu sync.Mutex

func newSessionScreen(s gossh.Session) (tcell.Screen, error) {
	tty, err := internalssh.NewTty(s)
	if err != nil {
		if errors.Is(err, internalssh.ErrNoPty) {
			return nil, fmt.Errorf("%w (connect with ssh -t)", err)
		}
		return nil, err
	}
	term := tty.Term()
	if !allowedTerms[term] {
		term = "xterm-256color"
	}

	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal %q: %w", term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

const maxNameBytes = 16

// sanitizeName drops control characters and truncates to maxNameBytes without
// splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey reads a PEM private key from path, or generates an
// ed25519 key and writes it there for the next start.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Log.WithField("path", path).Info("loaded host key")
			return signer, nil
		}
	}

	logger.Log.WithField("path", path).Info("generating host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "shadowdelve server")
	if err != nil {
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		logger.Log.WithError(err).Warn("could not persist host key")
	}
	return signer, nil
}
