package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/client/repositories/kv"
	"github.com/dmitrijs2005/relationest/internal/common"
	"github.com/dmitrijs2005/relationest/internal/logging"
)

// Store wraps the key-value repository around the credential slot.
//
// Save, Read and Clear never return errors: storage failures are logged
// and reported as false so callers can fall back to "no credential".
type Store struct {
	repo   kv.Repository
	logger logging.Logger
}

func NewStore(repo kv.Repository, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{repo: repo, logger: logger}
}

// Save overwrites the credential.
func (s *Store) Save(ctx context.Context, token string) bool {
	if err := s.repo.Set(ctx, common.TokenKey, []byte(token)); err != nil {
		s.logger.Warn(ctx, "credential not saved", "error", unavailable(err))
		return false
	}
	return true
}

// Read returns the stored credential. ok is false when the slot is empty or
// the store cannot be read.
func (s *Store) Read(ctx context.Context) (token string, ok bool) {
	v, err := s.repo.Get(ctx, common.TokenKey)
	if err != nil {
		s.logger.Warn(ctx, "credential not readable", "error", unavailable(err))
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

// Clear removes the credential. Clearing an empty slot succeeds.
func (s *Store) Clear(ctx context.Context) bool {
	if err := s.repo.Delete(ctx, common.TokenKey); err != nil {
		s.logger.Warn(ctx, "credential not cleared", "error", unavailable(err))
		return false
	}
	return true
}

// SaveSession writes the credential and the cached profile together. A nil
// user drops any previously cached profile.
func (s *Store) SaveSession(ctx context.Context, token string, user *models.User) error {
	var profile []byte
	if user != nil {
		b, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		profile = b
	}

	err := s.repo.InTx(ctx, func(ctx context.Context, tx kv.Repository) error {
		if err := tx.Set(ctx, common.TokenKey, []byte(token)); err != nil {
			return err
		}
		if profile == nil {
			return tx.Delete(ctx, common.UserProfileKey)
		}
		return tx.Set(ctx, common.UserProfileKey, profile)
	})
	if err != nil {
		return unavailable(err)
	}
	return nil
}

// ClearSession removes the credential and the cached profile.
func (s *Store) ClearSession(ctx context.Context) bool {
	err := s.repo.InTx(ctx, func(ctx context.Context, tx kv.Repository) error {
		if err := tx.Delete(ctx, common.TokenKey); err != nil {
			return err
		}
		return tx.Delete(ctx, common.UserProfileKey)
	})
	if err != nil {
		s.logger.Warn(ctx, "session not cleared", "error", unavailable(err))
		return false
	}
	return true
}

// Profile returns the cached user profile, if any. A corrupt cache entry
// reads as absent.
func (s *Store) Profile(ctx context.Context) (models.User, bool) {
	v, err := s.repo.Get(ctx, common.UserProfileKey)
	if err != nil {
		s.logger.Warn(ctx, "profile not readable", "error", unavailable(err))
		return models.User{}, false
	}
	if len(v) == 0 {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		s.logger.Debug(ctx, "cached profile ignored", "error", err)
		return models.User{}, false
	}
	return u, true
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
}
