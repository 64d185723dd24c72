package session

import (
	"log/slog"

	"github.com/google/uuid"

	"enigma/internal/domain"
	"enigma/internal/keysheet"
	"enigma/internal/machine"
)

// Service opens operator sessions.
type Service struct {
	log *slog.Logger
}

// New returns a session service logging to log. A nil logger discards.
func New(log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{log: log}
}

// Open builds a fresh machine for cfg. No state is shared between sessions.
func (s *Service) Open(cfg domain.Config, opts domain.TextOptions) (domain.Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m, err := machine.New(cfg)
	if err != nil {
		return nil, err
	}
	fp, err := keysheet.Fingerprint(cfg)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log := s.log.With(slog.String("session", id))
	log.Info("session opened",
		slog.String("sheet", fp.String()),
		slog.Int("rotors", m.NumRotors()),
		slog.Int("plug_leads", len(cfg.PlugLeads)),
		slog.Bool("continuous", opts.Continuous),
	)
	return &Session{id: id, machine: m, opts: opts, log: log}, nil
}

// Session is one operator at one machine.
type Session struct {
	id      string
	machine *machine.Machine
	opts    domain.TextOptions
	log     *slog.Logger
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Machine exposes the session's machine for key-by-key use.
func (s *Session) Machine() domain.Encoder { return s.machine }

// EncodeMessage prepares, encodes and formats one message.
func (s *Session) EncodeMessage(text string) (string, error) {
	prepared := Prepare(text, s.opts.LettersOnly)
	out, err := s.machine.EncodeText(prepared)
	if err != nil {
		s.log.Warn("message rejected", slog.Any("error", err))
		return "", err
	}
	if !s.opts.Continuous {
		if err := s.machine.Reset(s.machine.Config()); err != nil {
			return "", err
		}
	}
	s.log.Debug("message encoded", slog.Int("letters", len(out)))
	return Group(out, s.opts.Group), nil
}

// Compile-time assertions that the types implement the domain contracts.
var (
	_ domain.SessionService = (*Service)(nil)
	_ domain.Session        = (*Session)(nil)
	_ domain.Encoder        = (*machine.Machine)(nil)
)
