package gamedata

import (
	"context"
	"errors"
	"sync"

	"arkdata/core/source"

	"go.uber.org/zap"
)

// ErrNotLoaded is returned by lookups before Load has completed.
var ErrNotLoaded = errors.New("game data not loaded")

// Service owns the loaded snapshot and serves lookups against it. Reload
// swaps the snapshot atomically, so readers always see a complete one.
type Service struct {
	src    source.Source
	logger *zap.Logger

	mu   sync.RWMutex
	data *GameData
}

// NewService creates a game data service reading from src.
func NewService(src source.Source, logger *zap.Logger) *Service {
	return &Service{src: src, logger: logger}
}

// Load fetches and links a fresh snapshot, replacing the current one.
func (s *Service) Load(ctx context.Context) error {
	gd, err := New(ctx, s.src)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = gd
	s.mu.Unlock()
	s.logger.Info("game data loaded",
		zap.Int("operators", len(gd.operatorIDs)),
		zap.Int("items", len(gd.itemIDs)),
	)
	return nil
}

// Data returns the current snapshot, or ErrNotLoaded.
func (s *Service) Data() (*GameData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, ErrNotLoaded
	}
	return s.data, nil
}
