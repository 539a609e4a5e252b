package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMask(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		raw     string
		want    string
	}{
		{"empty pattern", "", "abc", "abc"},
		{"ssn full", "999 99 9999", "123456789", "123 45 6789"},
		{"ssn partial has no trailing separator", "999 99 9999", "123", "123"},
		{"ssn partial after separator", "999 99 9999", "1234", "123 4"},
		{"remask is stable", "999 99 9999", "123 45 6789", "123 45 6789"},
		{"skips runes that do not fit", "999", "1a2b3", "123"},
		{"truncates overflow", "99", "12345", "12"},
		{"letters and digits", "aaaaa9999a", "ABCDE1234F", "ABCDE1234F"},
		{"any slot", "**-**", "ab12", "ab-12"},
		{"any slot remask", "**-**", "ab-12", "ab-12"},
		{"digit literals keep typed digits", "+1 (999) 999-9999", "2125551234", "+1 (212) 555-1234"},
		{"digit literals remask", "+1 (999) 999-9999", "+1 (212) 555-1234", "+1 (212) 555-1234"},
		{"digit literals partial", "+1 (999) 999-9999", "2125", "+1 (212) 5"},
		{"digit literals edit after mask", "+1 (999) 999-9999", "+1 (212) 5556", "+1 (212) 555-6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyMask(tt.pattern, tt.raw))
		})
	}
}

func TestUpperCase(t *testing.T) {
	assert.Equal(t, "ABCDE1234F", UpperCase("abcde1234f"))
	assert.Equal(t, "STRASSE", UpperCase("straße"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12025550143", DigitsOnly("+1 (202) 555-0143"))
	assert.Equal(t, "", DigitsOnly("abc"))
}

func TestMaskSensitive(t *testing.T) {
	assert.Equal(t, "•••••6789", MaskSensitive("123456789", 4))
	assert.Equal(t, "•••", MaskSensitive("abc", 4))
	assert.Equal(t, "••••", MaskSensitive("abcd", -1))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "a long...", TruncateString("a long sentence", 9))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestPadString(t *testing.T) {
	assert.Equal(t, "ab...", PadString("ab", 5, '.'))
	assert.Equal(t, "abcdef", PadString("abcdef", 3, ' '))
}

func TestFormatStepIndicator(t *testing.T) {
	assert.Equal(t, "3/10", FormatStepIndicator(2, 10))
	assert.Equal(t, "", FormatStepIndicator(0, 0))
}
