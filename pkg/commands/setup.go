package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/callsheet/callsheet/pkg/client"
	"github.com/callsheet/callsheet/pkg/session"
	"github.com/callsheet/callsheet/pkg/store"
)

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if os.Getenv("CALLSHEET_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	noColor := !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}).
		Level(level).
		With().Timestamp().Logger()
}

func newClient() (*client.Client, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.Backend(), client.WithLogger(newLogger())), nil
}

// newSession builds the draft-backed editing session every draft command
// shares. The draft under the configured base path carries the working
// document between invocations.
func newSession() (*session.Session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	drafts, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	log := newLogger()
	c := client.New(cfg.Backend(), client.WithLogger(log))
	return session.New(c, session.WithDrafts(drafts), session.WithLogger(log)), nil
}
