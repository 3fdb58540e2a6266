package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v2"
)

var (
	ErrUnknownSetting  = errors.New("unknown setting")
	ErrInvalidSetting  = errors.New("invalid setting value")
	ErrInvalidInterval = errors.New("invalid relative interval")
)

// Settings holds the runtime-tunable plugin settings. Values are resolved as
// defaults, then the YAML settings file, then rows stored in the settings table.
type Settings struct {
	PluginName      string `yaml:"pluginName" json:"pluginName"`
	QuietErrors     bool   `yaml:"quietErrors" json:"quietErrors"`
	FieldsPerSet    int    `yaml:"fieldsPerSet" json:"fieldsPerSet"`
	BccEmailAddress string `yaml:"bccEmailAddress" json:"bccEmailAddress"`

	Delimiter                      string `yaml:"delimiter" json:"delimiter"`
	ExportRowsPerSet               int    `yaml:"exportRowsPerSet" json:"exportRowsPerSet"`
	IgnoreMatrixFieldAndBlockNames bool   `yaml:"ignoreMatrixFieldAndBlockNames" json:"ignoreMatrixFieldAndBlockNames"`
	IgnoreMatrixMultipleRows       bool   `yaml:"ignoreMatrixMultipleRows" json:"ignoreMatrixMultipleRows"`
	BooleanYes                     string `yaml:"booleanYes" json:"booleanYes"`
	BooleanNo                      string `yaml:"booleanNo" json:"booleanNo"`

	HoneypotEnabled       bool   `yaml:"honeypotEnabled" json:"honeypotEnabled"`
	HoneypotName          string `yaml:"honeypotName" json:"honeypotName"`
	TimeCheckEnabled      bool   `yaml:"timeCheckEnabled" json:"timeCheckEnabled"`
	MinimumTimeInSeconds  int    `yaml:"minimumTimeInSeconds" json:"minimumTimeInSeconds"`
	DuplicateCheckEnabled bool   `yaml:"duplicateCheckEnabled" json:"duplicateCheckEnabled"`
	OriginCheckEnabled    bool   `yaml:"originCheckEnabled" json:"originCheckEnabled"`

	GoogleRecaptchaEnabled   bool   `yaml:"googleRecaptchaEnabled" json:"googleRecaptchaEnabled"`
	GoogleRecaptchaSiteKey   string `yaml:"googleRecaptchaSiteKey" json:"googleRecaptchaSiteKey"`
	GoogleRecaptchaSecretKey string `yaml:"googleRecaptchaSecretKey" json:"-"`

	CleanUpSubmissions     bool   `yaml:"cleanUpSubmissions" json:"cleanUpSubmissions"`
	CleanUpSubmissionsFrom string `yaml:"cleanUpSubmissionsFrom" json:"cleanUpSubmissionsFrom"`
}

func DefaultSettings() Settings {
	return Settings{
		PluginName:   "Forms",
		FieldsPerSet: 8,

		Delimiter:        ";",
		ExportRowsPerSet: 50,
		BooleanYes:       "Yes",
		BooleanNo:        "No",

		HoneypotEnabled:       true,
		HoneypotName:          "yourssince1615",
		TimeCheckEnabled:      true,
		MinimumTimeInSeconds:  3,
		DuplicateCheckEnabled: true,
		OriginCheckEnabled:    true,

		CleanUpSubmissions:     true,
		CleanUpSubmissionsFrom: "-4 weeks",
	}
}

// LoadSettings returns the defaults overlaid with the YAML file at path.
// An empty path or a missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse settings file: %w", err)
	}
	return s, s.Validate()
}

// Apply overlays key/value overrides, keyed like the YAML file. Values are
// parsed according to the type of the target setting.
func (s Settings) Apply(overrides map[string]string) (Settings, error) {
	if len(overrides) == 0 {
		return s, nil
	}
	fields := settingFields()
	next := s
	v := reflect.ValueOf(&next).Elem()
	for key, raw := range overrides {
		idx, ok := fields[key]
		if !ok {
			return s, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
		}
		f := v.Field(idx)
		switch f.Kind() {
		case reflect.String:
			f.SetString(raw)
		case reflect.Bool:
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return s, fmt.Errorf("%w: %s", ErrInvalidSetting, key)
			}
			f.SetBool(b)
		case reflect.Int:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return s, fmt.Errorf("%w: %s", ErrInvalidSetting, key)
			}
			f.SetInt(int64(n))
		}
	}
	if err := next.Validate(); err != nil {
		return s, err
	}
	return next, nil
}

func (s Settings) Validate() error {
	if utf8.RuneCountInString(s.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter must be a single character", ErrInvalidSetting)
	}
	if s.ExportRowsPerSet <= 0 {
		return fmt.Errorf("%w: exportRowsPerSet must be positive", ErrInvalidSetting)
	}
	if s.MinimumTimeInSeconds < 0 {
		return fmt.Errorf("%w: minimumTimeInSeconds must not be negative", ErrInvalidSetting)
	}
	if s.CleanUpSubmissions {
		if _, err := ParseInterval(s.CleanUpSubmissionsFrom); err != nil {
			return err
		}
	}
	return nil
}

func (s Settings) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	if r == utf8.RuneError {
		return ';'
	}
	return r
}

// CleanUpCutoff returns the creation time at or before which submissions are removed.
func (s Settings) CleanUpCutoff(now time.Time) (time.Time, error) {
	d, err := ParseInterval(s.CleanUpSubmissionsFrom)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(d), nil
}

// SettingKeys lists the override keys accepted by Apply.
func SettingKeys() []string {
	t := reflect.TypeOf(Settings{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, yamlKey(t.Field(i)))
	}
	return keys
}

func settingFields() map[string]int {
	t := reflect.TypeOf(Settings{})
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields[yamlKey(t.Field(i))] = i
	}
	return fields
}

func yamlKey(f reflect.StructField) string {
	return strings.Split(f.Tag.Get("yaml"), ",")[0]
}

var intervalUnits = map[string]time.Duration{
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
}

// ParseInterval parses relative intervals such as "-4 weeks" or "30 days".
func ParseInterval(raw string) (time.Duration, error) {
	parts := strings.Fields(strings.ToLower(raw))
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}
	unit, ok := intervalUnits[strings.TrimSuffix(parts[1], "s")]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, raw)
	}
	return time.Duration(n) * unit, nil
}
