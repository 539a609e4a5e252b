package validation

import (
	"fmt"
)

// Purpose identifies the semantic role of a form field and selects its rule
type Purpose int

const (
	PurposeEmail Purpose = iota
	PurposePassword
	PurposeDefault
	PurposeReferralCode
	PurposeOTP
	PurposePhone
	PurposeFirstName
	PurposeMiddleName
	PurposeLastName
	PurposeFullName
	PurposeZipCode
	PurposeCity
	PurposeState
	PurposeDate
	PurposeGender
	PurposePAN
	PurposeSSN
	PurposeCTC
	PurposeAmount
	PurposeWorkExp
	PurposeLengthOfStay
	PurposeEduLoan
	PurposeCompany
	PurposeCountry
	PurposeDegree
	PurposeUniversity
	PurposeRadio
	PurposeChips
	PurposeVisaType

	purposeCount
)

var purposeNames = [purposeCount]string{
	PurposeEmail:        "email",
	PurposePassword:     "password",
	PurposeDefault:      "default",
	PurposeReferralCode: "referralCode",
	PurposeOTP:          "otp",
	PurposePhone:        "phone",
	PurposeFirstName:    "firstName",
	PurposeMiddleName:   "middleName",
	PurposeLastName:     "lastName",
	PurposeFullName:     "fullName",
	PurposeZipCode:      "zipCode",
	PurposeCity:         "city",
	PurposeState:        "state",
	PurposeDate:         "date",
	PurposeGender:       "gender",
	PurposePAN:          "pan",
	PurposeSSN:          "ssn",
	PurposeCTC:          "ctc",
	PurposeAmount:       "amount",
	PurposeWorkExp:      "workExp",
	PurposeLengthOfStay: "lengthOfStay",
	PurposeEduLoan:      "eduLoan",
	PurposeCompany:      "company",
	PurposeCountry:      "country",
	PurposeDegree:       "degree",
	PurposeUniversity:   "university",
	PurposeRadio:        "radio",
	PurposeChips:        "chips",
	PurposeVisaType:     "visaType",
}

func (p Purpose) String() string {
	if !p.valid() {
		return fmt.Sprintf("Purpose(%d)", int(p))
	}
	return purposeNames[p]
}

func (p Purpose) valid() bool {
	return p >= 0 && p < purposeCount
}

// ParsePurpose converts an external tag such as a CLI flag into a Purpose.
// Tags are matched exactly as returned by Purpose.String.
func ParsePurpose(tag string) (Purpose, error) {
	for i, name := range purposeNames {
		if name == tag {
			return Purpose(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field purpose %q", tag)
}

// Purposes returns every purpose in declaration order
func Purposes() []Purpose {
	all := make([]Purpose, 0, purposeCount)
	for p := Purpose(0); p < purposeCount; p++ {
		all = append(all, p)
	}
	return all
}

// MessageKey names a user-facing validation message. The text itself lives
// in the message catalog.
type MessageKey string

const (
	MessageNone              MessageKey = ""
	MessageRequired          MessageKey = "REQUIRED"
	MessageEmail             MessageKey = "EMAIL"
	MessagePassword          MessageKey = "PASSWORD"
	MessageOTP               MessageKey = "OTP"
	MessagePhone             MessageKey = "PHONE"
	MessageZipCode           MessageKey = "ZIP_CODE"
	MessagePAN               MessageKey = "PAN"
	MessageSSN               MessageKey = "SSN"
	MessageLastName          MessageKey = "LAST_NAME"
	MessageSpecialCharacters MessageKey = "SPECIAL_CHARACTERS"
	MessageNumeric           MessageKey = "NUMERIC"
)

// MessageKeys lists every non-empty message key
func MessageKeys() []MessageKey {
	return []MessageKey{
		MessageRequired,
		MessageEmail,
		MessagePassword,
		MessageOTP,
		MessagePhone,
		MessageZipCode,
		MessagePAN,
		MessageSSN,
		MessageLastName,
		MessageSpecialCharacters,
		MessageNumeric,
	}
}

// Result is the outcome of validating one field value
type Result struct {
	Valid   bool
	Message MessageKey
}

// Country carries the locale metadata needed for phone length checks.
// Format is a dot template where every '.' stands for one expected digit.
type Country struct {
	Format      string
	CountryCode string
	DialCode    string
}

// Rule validates a single raw value. Rules never fail; invalid input is
// reported through the returned Result.
type Rule func(value string, country *Country) Result

func valid() Result {
	return Result{Valid: true}
}

func invalid(key MessageKey) Result {
	return Result{Valid: false, Message: key}
}
