package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-drift/htmllabel/pkg/graphics"
	"github.com/go-drift/htmllabel/pkg/htmlspan"
	"github.com/go-drift/htmllabel/pkg/markup"
	"github.com/go-drift/htmllabel/pkg/widgets"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the current directory
// when no path is given.
const FileName = "htmllabel.yaml"

// Config represents the optional htmllabel.yaml configuration.
type Config struct {
	Label   LabelConfig   `yaml:"label"`
	Convert ConvertConfig `yaml:"convert"`
}

// LabelConfig is the default style of the label conversions render into.
type LabelConfig struct {
	Foreground string  `yaml:"foreground,omitempty" validate:"omitempty,color"`
	Background string  `yaml:"background,omitempty" validate:"omitempty,color"`
	FontFamily string  `yaml:"font_family,omitempty"`
	FontSize   float64 `yaml:"font_size,omitempty" validate:"gte=0,lte=1000"`
	Bold       bool    `yaml:"bold,omitempty"`
	Italic     bool    `yaml:"italic,omitempty"`
	Underline  bool    `yaml:"underline,omitempty"`
}

// ConvertConfig contains conversion switches.
type ConvertConfig struct {
	KeepNewlines       bool `yaml:"keep_newlines,omitempty"`
	IgnoreInlineStyles bool `yaml:"ignore_inline_styles,omitempty"`
	Lenient            bool `yaml:"lenient,omitempty"`
	DropWhitespace     bool `yaml:"drop_whitespace,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path    string
	Label   *widgets.Label
	Options htmlspan.Options
}

// Lenient reports whether markup is parsed with HTML5 rules.
func (r *Resolved) Lenient() bool {
	return r.Options.Markup.Lenient
}

// LoadOptional reads the configuration at path. An empty path means
// FileName in the current directory; a missing file yields an empty Config.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = FileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks field constraints and color values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return validationError(err)
	}
	return nil
}

// Resolve loads the configuration (if present) and resolves defaults.
func Resolve(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(path)
}

// Resolve turns the configuration into a label and conversion options.
// Unset colors default to the terminal's own colors (transparent) and an
// unset size to graphics.DefaultFontSize.
func (c *Config) Resolve(path string) (*Resolved, error) {
	fg, err := parseOptionalColor(c.Label.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseOptionalColor(c.Label.Background)
	if err != nil {
		return nil, err
	}

	label := &widgets.Label{
		BackgroundColor: bg,
		TextColor:       fg,
		FontFamily:      strings.TrimSpace(c.Label.FontFamily),
		FontSize:        c.Label.FontSize,
	}
	if label.FontSize == 0 {
		label.FontSize = graphics.DefaultFontSize
	}
	if c.Label.Bold {
		label.FontAttributes = label.FontAttributes.With(graphics.FontAttributesBold)
	}
	if c.Label.Italic {
		label.FontAttributes = label.FontAttributes.With(graphics.FontAttributesItalic)
	}
	if c.Label.Underline {
		label.TextDecorations = label.TextDecorations.With(graphics.TextDecorationsUnderline)
	}

	return &Resolved{
		Path:  path,
		Label: label,
		Options: htmlspan.Options{
			CollapseNewlines:  !c.Convert.KeepNewlines,
			ApplyInlineStyles: !c.Convert.IgnoreInlineStyles,
			Markup: markup.Options{
				Lenient:        c.Convert.Lenient,
				DropWhitespace: c.Convert.DropWhitespace,
			},
		},
	}, nil
}

func parseOptionalColor(s string) (graphics.Color, error) {
	if strings.TrimSpace(s) == "" {
		return graphics.ColorTransparent, nil
	}
	return graphics.ParseColor(s)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		_, err := graphics.ParseColor(fl.Field().String())
		return err == nil
	})
	return v
}

// validationError converts validator errors into one readable error naming
// each field by its YAML path.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := e.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}

		var msg string
		switch e.Tag() {
		case "gte":
			msg = fmt.Sprintf("%s must be >= %s", field, e.Param())
		case "lte":
			msg = fmt.Sprintf("%s must be <= %s", field, e.Param())
		case "color":
			msg = fmt.Sprintf("%s: invalid color %q", field, e.Value())
		default:
			msg = fmt.Sprintf("%s is invalid", field)
		}
		msgs = append(msgs, msg)
	}
	return errors.New(strings.Join(msgs, "; "))
}
