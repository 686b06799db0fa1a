package paramlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/shaelmaar/paramlog/logger"
)

// Backends accepted in Config.Backend.
const (
	BackendSimple = "simple"
	BackendLogrus = "logrus"
)

// Config describes a Facade and its backend.
type Config struct {
	Name                 string `toml:"name" validate:"required"`
	Level                string `toml:"level" validate:"required,level"`
	Backend              string `toml:"backend" validate:"oneof=simple logrus"`
	Format               string `toml:"format" validate:"oneof=text json"` // json needs the logrus backend
	Color                bool   `toml:"color"`
	Prefix               string `toml:"prefix,omitempty"`
	WarningsAsExceptions bool   `toml:"warnings_as_exceptions"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseLevel(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(Config)
		if c.Format == "json" && c.Backend != BackendLogrus {
			sl.ReportError(c.Format, "Format", "Format", "json_requires_logrus", "")
		}
	}, Config{})
	return v
}

// DefaultConfig returns the configuration matching logger.Default.
func DefaultConfig() Config {
	return Config{
		Name:    logger.DefaultName,
		Level:   logger.LevelInfo.String(),
		Backend: BackendSimple,
		Format:  "text",
	}
}

// LoadConfig reads and validates a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return ParseConfig(content)
}

// ParseConfig decodes a TOML document over DefaultConfig and validates it.
// Unknown keys are rejected.
func ParseConfig(content []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, errors.Wrapf(ErrInvalidConfig, "line %d, column %d: %s", row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, errors.Wrap(ErrInvalidConfig, serr.String())
		}
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Wrapf(ErrInvalidConfig, "field %s: %q fails %q", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag())
		}
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// Marshal encodes c as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Build returns a Facade writing to w as described by c.
func (c *Config) Build(w io.Writer) (*Facade, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, err := logger.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	var l logger.Logger
	switch c.Backend {
	case BackendLogrus:
		lr := logrus.New()
		lr.SetOutput(w)
		if c.Format == "json" {
			lr.SetFormatter(&logrus.JSONFormatter{})
		} else {
			lr.SetFormatter(&logrus.TextFormatter{DisableColors: !c.Color, FullTimestamp: true})
		}
		l = logger.NewLogrusLogger(c.Name, lr, level)
	default:
		l = logger.NewSimpleLogger(log.New(w, "", 0), level, logger.WithName(c.Name), logger.WithColor(c.Color))
	}

	f := New(WithLogger(l), WithWarningsAsExceptions(c.WarningsAsExceptions))
	if c.Prefix != "" {
		p, err := f.TemplatePrefix(c.Prefix)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidConfig, err.Error())
		}
		f.SetPrefix(p)
	}
	return f, nil
}
