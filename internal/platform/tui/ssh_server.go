package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/acorn-drop/internal/core"
	"github.com/vovakirdan/acorn-drop/internal/registry"
	"github.com/vovakirdan/acorn-drop/internal/storage"
)

// SSHServerConfig configures the game server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // Empty means ~/.arcade/host_key, generated on first start
	DBPath      string        // Shared scores database
	IdleTimeout time.Duration // Idle connections are closed after this long
	GameID      string        // Registered game every connection plays
	TickRate    int
	HoldWindow  time.Duration // How long a key press counts as held
	Logger      *log.Logger   // Defaults to stderr
}

// DefaultSSHServerConfig returns the settings `acorns serve` starts from.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		IdleTimeout: 30 * time.Minute,
		GameID:      "acorns",
		TickRate:    60,
		HoldWindow:  DefaultHoldWindow,
	}
}

// SSHServer serves one game per SSH connection. All players share the
// score store, so the scoreboard is a server-wide leaderboard.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer validates cfg, opens the score store and prepares the
// listener. A store that cannot be opened only disables saving.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("unknown game %q", cfg.GameID)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "acorns-ssh",
		})
	}

	keyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, logger: logger}

	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("scores will not be saved", "db", cfg.DBPath, "error", err)
		s.store = nil
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newProgram),
			s.trackConnection,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// resolveHostKeyPath returns the key file to use and makes sure its
// directory exists; wish generates the key itself when it is missing.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// newProgram builds the game session for one connection.
func (s *SSHServer) newProgram(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	user := sess.User()
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("connection without a terminal", "user", user)
		wish.Fatalln(sess, "Acorn Drop needs a terminal: connect with ssh -t")
		return nil, nil
	}

	game, err := registry.Create(s.cfg.GameID)
	if err != nil {
		s.logger.Error("cannot create game", "game", s.cfg.GameID, "error", err)
		return nil, nil
	}

	runtime := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(game, s.store, runtime,
		WithPlayer(user),
		WithHoldWindow(s.cfg.HoldWindow),
		WithLogger(s.logger.With("user", user)),
	)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// trackConnection logs each connection with its duration and the number
// of players online.
func (s *SSHServer) trackConnection(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		online := s.active.Add(1)
		s.logger.Info("player connected",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"online", online,
		)

		next(sess)

		online = s.active.Add(-1)
		s.logger.Info("player left",
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Second),
			"online", online,
		)
	}
}

// Online returns the number of connected players.
func (s *SSHServer) Online() int {
	return int(s.active.Load())
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.cfg.Address, "game", s.cfg.GameID)
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "online", s.Online())
		return s.Shutdown()
	}
}

// Shutdown waits up to ten seconds for sessions to end, then closes the
// store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
