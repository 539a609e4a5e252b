package messages

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"zolve/formkit/internal/validation"
)

var defaultText = map[validation.MessageKey]string{
	validation.MessageRequired:          "This field is required",
	validation.MessageEmail:             "Please enter a valid email address",
	validation.MessagePassword:          "Use 8+ characters with upper and lower case letters, a number and one of #?!@$%^&*-",
	validation.MessageOTP:               "Please enter the code you received",
	validation.MessagePhone:             "Please enter a valid phone number",
	validation.MessageZipCode:           "Please enter a valid zip code",
	validation.MessagePAN:               "Please enter a valid PAN",
	validation.MessageSSN:               "SSN must be 9 digits",
	validation.MessageLastName:          "Last name cannot exceed 24 characters",
	validation.MessageSpecialCharacters: "Special characters are not allowed",
	validation.MessageNumeric:           "Numbers are not allowed",
}

// Catalog maps message keys to the text shown under a field
type Catalog struct {
	text map[validation.MessageKey]string
}

// Default returns the built-in English catalog
func Default() *Catalog {
	text := make(map[validation.MessageKey]string, len(defaultText))
	for key, msg := range defaultText {
		text[key] = msg
	}
	return &Catalog{text: text}
}

// Load reads overrides from a YAML (.yaml, .yml) or TOML (.toml) file and
// layers them over the default catalog. Unknown keys are rejected so that a
// typo in the file does not silently fall back to the default text.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message file: %w", err)
	}

	overrides := make(map[string]string)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &overrides)
	case ".toml":
		err = toml.Unmarshal(data, &overrides)
	default:
		return nil, fmt.Errorf("unsupported message file format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse message file %s: %w", path, err)
	}

	catalog := Default()
	for key, msg := range overrides {
		if _, ok := catalog.text[validation.MessageKey(key)]; !ok {
			return nil, fmt.Errorf("unknown message key %q in %s", key, path)
		}
		catalog.text[validation.MessageKey(key)] = msg
	}
	return catalog, nil
}

// Text returns the message for key. The empty key maps to empty text.
func (c *Catalog) Text(key validation.MessageKey) string {
	if key == validation.MessageNone {
		return ""
	}
	if msg, ok := c.text[key]; ok {
		return msg
	}
	return string(key)
}

// Describe renders a result for display, empty when the result is valid
func (c *Catalog) Describe(result validation.Result) string {
	if result.Valid {
		return ""
	}
	return c.Text(result.Message)
}
