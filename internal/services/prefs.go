package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/models"
	"github.com/campusfind/campusfind/internal/storage"
)

// PrefsService stores per-installation preferences. Currently only the UI
// theme, which defaults to light when unset.
type PrefsService interface {
	Theme(ctx context.Context) (models.Theme, error)
	SetTheme(ctx context.Context, t models.Theme) error
}

type prefsService struct {
	store storage.Gateway
}

// NewPrefsService constructs a PrefsService bound to the given gateway.
func NewPrefsService(store storage.Gateway) PrefsService {
	return &prefsService{store: store}
}

func (s *prefsService) Theme(ctx context.Context) (models.Theme, error) {
	c, err := s.store.Read(ctx, storage.KeyTheme)
	if err != nil {
		return models.ThemeLight, err
	}
	if len(c.Data) == 0 {
		return models.ThemeLight, nil
	}

	var t models.Theme
	if err := json.Unmarshal(c.Data, &t); err != nil || !models.ValidTheme(t) {
		return models.ThemeLight, nil
	}
	return t, nil
}

func (s *prefsService) SetTheme(ctx context.Context, t models.Theme) error {
	if !models.ValidTheme(t) {
		return fmt.Errorf("%w: unknown theme %q", common.ErrValidation, t)
	}
	return storage.Update(ctx, s.store, storage.KeyTheme, func([]byte) ([]byte, error) {
		return json.Marshal(t)
	})
}
