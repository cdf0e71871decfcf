// Package theme loads semantic tag tables from YAML files. A theme maps
// tag names like "success" or "danger" to style strings ("bold green",
// "#ff8800 on black"); the console turns them into markup aliases.
package theme

import (
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	richerrors "github.com/alexisbeaulieu97/richterm/pkg/errors"
)

var tagNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_.-]*$`)

// Theme is a named set of tag-to-style mappings.
type Theme struct {
	Name    string            `yaml:"name" validate:"required"`
	Aliases map[string]string `yaml:"aliases" validate:"required,min=1,dive,keys,tagname,endkeys,stylespec"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// theme files.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("tagname", func(fl validator.FieldLevel) bool {
			return tagNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("stylespec", func(fl validator.FieldLevel) bool {
			return style.IsValidSpec(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Default returns the built-in theme matching the stock semantic tags.
func Default() *Theme {
	return &Theme{
		Name: "default",
		Aliases: map[string]string{
			"success":   "green",
			"error":     "red",
			"warning":   "yellow",
			"info":      "blue",
			"danger":    "bright_red",
			"highlight": "bright_yellow",
			"muted":     "dim bright_black",
			"primary":   "cyan",
			"secondary": "magenta",
		},
	}
}

// Load reads and validates a theme file from disk.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, richerrors.NewValidationError("theme", "cannot read theme file", err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, richerrors.NewValidationError("theme", "invalid theme YAML", err)
	}

	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks a theme's structure and every style string in it.
func Validate(t *Theme) error {
	if err := validatorInstance().Struct(t); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// MarkupAliases compiles the theme's style strings into the SGR code
// table the markup processor consumes. The built-in tags are included
// as a base so a theme only has to override what it changes.
func (t *Theme) MarkupAliases() map[string]string {
	aliases := style.DefaultAliases()
	for tag, spec := range t.Aliases {
		st := style.ParseStyle(spec)
		if codes := st.SGR(); codes != "" {
			aliases[tag] = codes
		}
	}
	return aliases
}

// convertValidationError normalizes validator errors into this module's
// validation errors, surfacing the first failing field.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		return richerrors.NewValidationError(ve.StructNamespace(),
			"failed validation for tag '"+ve.Tag()+"'", err)
	}
	return richerrors.NewValidationError("theme", err.Error(), err)
}
