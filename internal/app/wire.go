package app

import (
	"log/slog"

	"enigma/internal/domain"
	"enigma/internal/keysheet"
	keysheetsvc "enigma/internal/services/keysheet"
	sessionsvc "enigma/internal/services/session"
)

// Wire bundles the logger, stores and services for the CLI.
type Wire struct {
	Log       *slog.Logger
	Store     domain.KeySheetStore
	KeySheets domain.KeySheetService
	Sessions  domain.SessionService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	// File-based key sheet store
	store := keysheet.NewFileStore()

	// High-level services
	keysheetSvc := keysheetsvc.New(store)
	sessionSvc := sessionsvc.New(log)

	return &Wire{
		Log:       log,
		Store:     store,
		KeySheets: keysheetSvc,
		Sessions:  sessionSvc,
	}, nil
}
