package application

import (
	"context"
	"errors"

	"github.com/linskybing/forms-go/internal/antispam"
	"github.com/linskybing/forms-go/internal/config"
	"github.com/linskybing/forms-go/internal/export"
	"github.com/linskybing/forms-go/internal/repository"
)

// SettingsService resolves plugin settings: the loaded base (defaults plus
// the YAML file) overlaid with rows from the settings table.
type SettingsService struct {
	Repos *repository.Repos
	base  config.Settings
	known map[string]bool
}

func NewSettingsService(repos *repository.Repos, base config.Settings) *SettingsService {
	known := make(map[string]bool)
	for _, k := range config.SettingKeys() {
		known[k] = true
	}
	return &SettingsService{
		Repos: repos,
		base:  base,
		known: known,
	}
}

func (s *SettingsService) Get(ctx context.Context) (config.Settings, error) {
	rows, err := s.Repos.Setting.All(ctx)
	if err != nil {
		return s.base, err
	}
	// rows left behind by removed settings are ignored
	for k := range rows {
		if !s.known[k] {
			delete(rows, k)
		}
	}
	return s.base.Apply(rows)
}

// Update validates the overrides against the current settings and stores them.
func (s *SettingsService) Update(ctx context.Context, values map[string]string) (config.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return current, err
	}
	next, err := current.Apply(values)
	if err != nil {
		if errors.Is(err, config.ErrUnknownSetting) || errors.Is(err, config.ErrInvalidSetting) || errors.Is(err, config.ErrInvalidInterval) {
			return current, &ValidationError{Msg: err.Error()}
		}
		return current, err
	}
	if err := s.Repos.Setting.Upsert(ctx, values); err != nil {
		return current, err
	}
	return next, nil
}

func (s *SettingsService) Policy(ctx context.Context) (antispam.Policy, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return antispam.Policy{}, err
	}
	return antispam.Policy{
		HoneypotEnabled:       st.HoneypotEnabled,
		HoneypotName:          st.HoneypotName,
		TimeCheckEnabled:      st.TimeCheckEnabled,
		MinimumSeconds:        st.MinimumTimeInSeconds,
		DuplicateCheckEnabled: st.DuplicateCheckEnabled,
		OriginCheckEnabled:    st.OriginCheckEnabled,
	}, nil
}

func (s *SettingsService) ExportOptions(ctx context.Context) (export.Options, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{
		Delimiter: st.DelimiterRune(),
		Yes:       st.BooleanYes,
		No:        st.BooleanNo,
		Layout: export.LayoutOptions{
			IgnoreBlockNames:   st.IgnoreMatrixFieldAndBlockNames,
			IgnoreMultipleRows: st.IgnoreMatrixMultipleRows,
		},
		BatchSize: st.ExportRowsPerSet,
	}, nil
}
