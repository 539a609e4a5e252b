package validation

import (
	"fmt"
	"strconv"
)

var rules = [purposeCount]Rule{
	PurposeEmail:        Email,
	PurposePassword:     Password,
	PurposeDefault:      Required,
	PurposeReferralCode: Optional,
	PurposeOTP:          OTP,
	PurposePhone:        PhoneNumber,
	PurposeFirstName:    FirstName,
	PurposeMiddleName:   Optional,
	PurposeLastName:     LastName,
	PurposeFullName:     Required,
	PurposeZipCode:      ZipCode,
	PurposeCity:         Required,
	PurposeState:        Required,
	PurposeDate:         Required,
	PurposeGender:       Required,
	PurposePAN:          PAN,
	PurposeSSN:          SSN,
	PurposeCTC:          Amount,
	PurposeAmount:       Amount,
	PurposeWorkExp:      Required,
	PurposeLengthOfStay: Required,
	PurposeEduLoan:      Required,
	PurposeCompany:      Required,
	PurposeCountry:      Required,
	PurposeDegree:       Required,
	PurposeUniversity:   Required,
	PurposeRadio:        Required,
	PurposeChips:        Required,
	PurposeVisaType:     Required,
}

func init() {
	for p, rule := range rules {
		if rule == nil {
			panic(fmt.Sprintf("validation: no rule registered for purpose %s", Purpose(p)))
		}
	}
}

// Lookup returns the rule for a purpose. A purpose outside the enumeration
// is a programming error and panics.
func Lookup(p Purpose) Rule {
	if !p.valid() {
		panic(fmt.Sprintf("validation: unmapped purpose %s", p))
	}
	return rules[p]
}

// Validate runs the rule registered for p against value. country is only
// consulted by the phone rule and may be nil.
func Validate(p Purpose, value string, country *Country) Result {
	return Lookup(p)(value, country)
}

// ValidateNumber validates a numeric value, as entered into amount fields.
// The number is rendered without exponent before the rule runs.
func ValidateNumber(p Purpose, n float64, country *Country) Result {
	return Validate(p, strconv.FormatFloat(n, 'f', -1, 64), country)
}
