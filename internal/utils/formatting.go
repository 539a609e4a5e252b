package utils

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mask slot characters
const (
	MaskDigit  = '9'
	MaskLetter = 'a'
	MaskAny    = '*'
)

// ApplyMask lays raw input over a mask pattern. Slots take the next input
// rune of the matching kind; input runes that do not fit a slot are skipped.
// An input rune equal to the literal at the current pattern position is taken
// as that literal, so re-masking an already masked value is stable. Literals
// are written only when more input follows them, so a partially typed value
// never ends with a dangling separator.
func ApplyMask(pattern, raw string) string {
	if pattern == "" {
		return raw
	}

	input := []rune(raw)
	var result strings.Builder
	var pending strings.Builder
	i := 0

	for _, slot := range pattern {
		if i >= len(input) {
			break
		}

		if !isSlot(slot) {
			pending.WriteRune(slot)
			if input[i] == slot {
				i++
			}
			continue
		}

		for i < len(input) && !fitsSlot(slot, input[i]) {
			i++
		}
		if i >= len(input) {
			break
		}
		result.WriteString(pending.String())
		pending.Reset()
		result.WriteRune(input[i])
		i++
	}

	return result.String()
}

func isSlot(r rune) bool {
	return r == MaskDigit || r == MaskLetter || r == MaskAny
}

func fitsSlot(slot, r rune) bool {
	switch slot {
	case MaskDigit:
		return r >= '0' && r <= '9'
	case MaskLetter:
		return unicode.IsLetter(r)
	default:
		return true
	}
}

var upper = cases.Upper(language.Und)

// UpperCase converts text for caps-only fields
func UpperCase(s string) string {
	return upper.String(s)
}

// DigitsOnly drops every rune that is not an ASCII digit
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// MaskSensitive hides all but the last visible runes of a value
func MaskSensitive(value string, visible int) string {
	runes := []rune(value)
	if visible < 0 {
		visible = 0
	}
	if len(runes) <= visible {
		return strings.Repeat("•", len(runes))
	}
	hidden := len(runes) - visible
	return strings.Repeat("•", hidden) + string(runes[hidden:])
}

// TruncateString truncates a string to a maximum length with ellipsis
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// PadString pads a string to a specific width
func PadString(s string, width int, padChar rune) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}

	return s + strings.Repeat(string(padChar), width-n)
}

// FormatStepIndicator renders the position of the focused field, e.g. "3/10"
func FormatStepIndicator(current, total int) string {
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", current+1, total)
}
