package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex   = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+\w{2,4}$`)
	numericRegex = regexp.MustCompile(`^[0-9]*$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

const (
	specialCharacters = "`!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~"
	passwordSymbols   = "#?!@$%^&*-"
	digits            = "0123456789"

	minPasswordLength = 8
	minOTPLength      = 4
	minZipCodeLength  = 5
	minPhoneLength    = 8
	panLength         = 10
	ssnLength         = 9
	maxLastNameLength = 24
)

// Countries whose format template is trusted for the expected phone length.
// Every other country falls back to minPhoneLength plus the dial code.
var commonCountries = map[string]bool{
	"in": true,
	"mx": true,
	"us": true,
	"pk": true,
}

func length(value string) int {
	return utf8.RuneCountInString(value)
}

func isNumeric(value string) bool {
	return numericRegex.MatchString(value)
}

// Email requires a local@domain.tld address
func Email(value string, _ *Country) Result {
	if value == "" {
		return invalid(MessageRequired)
	}
	if !emailRegex.MatchString(value) {
		return invalid(MessageEmail)
	}
	return valid()
}

// Password requires at least eight characters with an upper case letter, a
// lower case letter, a digit and one symbol from passwordSymbols.
func Password(value string, _ *Country) Result {
	if value == "" {
		return invalid(MessageRequired)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, char := range value {
		switch {
		case char >= 'A' && char <= 'Z':
			hasUpper = true
		case char >= 'a' && char <= 'z':
			hasLower = true
		case char >= '0' && char <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, char):
			hasSymbol = true
		}
	}

	if length(value) < minPasswordLength || !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return invalid(MessagePassword)
	}
	return valid()
}

// OTP requires at least four digits
func OTP(value string, _ *Country) Result {
	if value == "" {
		return invalid(MessageRequired)
	}
	if !isNumeric(value) || length(value) < minOTPLength {
		return invalid(MessageOTP)
	}
	return valid()
}

// ZipCode requires at least five digits
func ZipCode(value string, _ *Country) Result {
	if value == "" {
		return invalid(MessageRequired)
	}
	if !isNumeric(value) || length(value) < minZipCodeLength {
		return invalid(MessageZipCode)
	}
	return valid()
}

// PhoneNumber checks the digit count against the selected country. The value
// is expected to include the dial code, so a value holding only the dial code
// is rejected without a message.
func PhoneNumber(value string, country *Country) Result {
	if value == "" {
		return invalid(MessageRequired)
	}

	var c Country
	if country != nil {
		c = *country
	}

	if value == c.DialCode {
		return invalid(MessageNone)
	}

	expected := strings.Count(c.Format, ".")
	if !commonCountries[c.CountryCode] {
		expected = minPhoneLength + length(c.DialCode)
	}

	if !isNumeric(value) || length(value) < expected {
		return invalid(MessagePhone)
	}
	return valid()
}

// PAN requires a ten character Indian tax ID: five letters, four digits, one letter
func PAN(value string, _ *Country) Result {
	if value == "" {
		return invalid(MessageRequired)
	}
	if length(value) != panLength || !panRegex.MatchString(value) {
		return invalid(MessagePAN)
	}
	return valid()
}

// SSN requires nine characters once spaces are removed
func SSN(value string, _ *Country) Result {
	value = strings.ReplaceAll(value, " ", "")
	if value == "" {
		return invalid(MessageRequired)
	}
	if length(value) != ssnLength {
		return invalid(MessageSSN)
	}
	return valid()
}

// Required rejects empty text and text containing special characters or digits
func Required(value string, _ *Country) Result {
	switch {
	case value == "":
		return invalid(MessageRequired)
	case strings.ContainsAny(value, specialCharacters):
		return invalid(MessageSpecialCharacters)
	case strings.ContainsAny(value, digits):
		return invalid(MessageNumeric)
	}
	return valid()
}

// FirstName applies the generic required-text rule
func FirstName(value string, country *Country) Result {
	return Required(value, country)
}

// LastName caps the length before applying the generic required-text rule
func LastName(value string, country *Country) Result {
	if value != "" && length(value) > maxLastNameLength {
		return invalid(MessageLastName)
	}
	return Required(value, country)
}

// Amount requires a whole number of at least one
func Amount(value string, _ *Country) Result {
	if value == "" || !isNumeric(value) || strings.TrimLeft(value, "0") == "" {
		return invalid(MessageRequired)
	}
	return valid()
}

// Optional accepts every value
func Optional(string, *Country) Result {
	return valid()
}
