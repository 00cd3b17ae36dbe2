package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	domainerrors "github.com/perkrifj/adif-tools/internal/domain/errors"
)

// EnvPrefix namespaces environment overrides, e.g. LABELER_RENDER__COLUMNS=3
const EnvPrefix = "LABELER_"

// DefaultPath is read when no explicit config file is given
const DefaultPath = "configs/labeler.yaml"

type Config struct {
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	Date   DateConfig   `koanf:"date"`
	Reader ReaderConfig `koanf:"reader"`
	Render RenderConfig `koanf:"render"`
}

type DateConfig struct {
	Layout         string `koanf:"layout" validate:"required"`
	DateOnlyLayout string `koanf:"date_only_layout" validate:"required"`
}

type ReaderConfig struct {
	InferBand   bool `koanf:"infer_band"`
	SkipInvalid bool `koanf:"skip_invalid"`
}

type RenderConfig struct {
	Columns      int  `koanf:"columns" validate:"min=1,max=8"`
	ColumnWidth  int  `koanf:"column_width" validate:"min=16,max=80"`
	ShowOperator bool `koanf:"show_operator"`
	Sort         bool `koanf:"sort"`
}

// Defaults returns the configuration used before any file or env override
func Defaults() *Config {
	return &Config{
		LogLevel: "info",
		Date: DateConfig{
			Layout:         "2006-01-02 15:04",
			DateOnlyLayout: "2006-01-02",
		},
		Reader: ReaderConfig{
			InferBand:   false,
			SkipInvalid: true,
		},
		Render: RenderConfig{
			Columns:      1,
			ColumnWidth:  32,
			ShowOperator: true,
			Sort:         true,
		},
	}
}

// Load layers defaults, the YAML file at path and LABELER_ environment
// variables, then validates the result. An empty path tries DefaultPath and
// tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps LABELER_RENDER__SHOW_OPERATOR to render.show_operator
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

var validate = validator.New()

// Validate checks cfg against its validate tags
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domainerrors.NewInternalError("validating config").WithCause(err)
	}

	fields := make(map[string]interface{}, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Namespace()] = fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return domainerrors.ErrInvalidConfig.New("invalid configuration").
		WithDetails(fields).
		WithCause(err)
}
