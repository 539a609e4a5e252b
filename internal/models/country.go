package models

import (
	"fmt"
	"strings"

	"zolve/formkit/internal/validation"
)

// Country describes a selectable phone country. Format is a dot template in
// which each '.' is one digit of a full number including the dial code.
type Country struct {
	Name     string `json:"name" yaml:"name"`
	Code     string `json:"code" yaml:"code"`
	DialCode string `json:"dial_code" yaml:"dial_code"`
	Format   string `json:"format" yaml:"format"`
}

var countries = []Country{
	{Name: "United States", Code: "us", DialCode: "1", Format: "+. (...) ...-...."},
	{Name: "India", Code: "in", DialCode: "91", Format: "+.. .....-....."},
	{Name: "Mexico", Code: "mx", DialCode: "52", Format: "+.. ... ... ...."},
	{Name: "Pakistan", Code: "pk", DialCode: "92", Format: "+.. ...-......."},
	{Name: "Canada", Code: "ca", DialCode: "1", Format: "+. (...) ...-...."},
	{Name: "United Kingdom", Code: "gb", DialCode: "44", Format: "+.. .... ......"},
	{Name: "Germany", Code: "de", DialCode: "49", Format: "+.. .... ........"},
	{Name: "Singapore", Code: "sg", DialCode: "65", Format: "+.. ....-...."},
	{Name: "United Arab Emirates", Code: "ae", DialCode: "971", Format: "+... .. ... ...."},
}

// Countries returns the selectable countries in picker order
func Countries() []Country {
	list := make([]Country, len(countries))
	copy(list, countries)
	return list
}

// FindCountry looks a country up by its ISO 3166 alpha-2 code
func FindCountry(code string) (Country, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, c := range countries {
		if c.Code == code {
			return c, nil
		}
	}
	return Country{}, fmt.Errorf("unknown country code %q", code)
}

// NextCountry returns the country after code in picker order, wrapping around.
// Unknown codes start from the first country.
func NextCountry(code string) Country {
	for i, c := range countries {
		if c.Code == code {
			return countries[(i+1)%len(countries)]
		}
	}
	return countries[0]
}

// Context converts the country into the phone validation context
func (c Country) Context() *validation.Country {
	return &validation.Country{
		Format:      c.Format,
		CountryCode: c.Code,
		DialCode:    c.DialCode,
	}
}

// DigitCount returns the number of digits the format template expects
func (c Country) DigitCount() int {
	return strings.Count(c.Format, ".")
}

func (c Country) String() string {
	return fmt.Sprintf("%s (+%s)", c.Name, c.DialCode)
}
