package meetsetup

import (
	"strconv"
	"unicode/utf8"
)

const genderClassExpected = "3 characters: MSR, MJS, KSR, KJR, XSR, XJR, or M/K followed by a two digit birth year"

// GenderClass is the three character gender and class code used in entry
// files, e.g. "MSR" or "K95".
type GenderClass struct {
	Gender GenderGroup
	Class  Class
}

var fixedGenderClasses = map[string]GenderClass{
	"MSR": {Male, SeniorClass()},
	"MJS": {Male, JuniorClass()},
	"KSR": {Female, SeniorClass()},
	"KJR": {Female, JuniorClass()},
	"XSR": {Mixed, SeniorClass()},
	"XJR": {Mixed, JuniorClass()},
}

// ParseGenderClass decodes a gender class token. Birth years are kept as the
// two digits written in the token.
func ParseGenderClass(s string) (GenderClass, error) {
	if utf8.RuneCountInString(s) != 3 {
		return GenderClass{}, invalid(ErrInvalidStrLen, s, genderClassExpected, nil)
	}
	if gc, ok := fixedGenderClasses[s]; ok {
		return gc, nil
	}

	var gender GenderGroup
	switch s[0] {
	case 'M':
		gender = Male
	case 'K':
		gender = Female
	default:
		return GenderClass{}, invalid(ErrInvalidGender, s, "'M' or 'K'", nil)
	}
	digits := s[1:]
	if !isDigits(digits) {
		return GenderClass{}, invalid(ErrInvalidValue, s, genderClassExpected, nil)
	}
	// two digit years keep their leading zero, "M09"
	year, err := strconv.Atoi(digits)
	if err != nil {
		return GenderClass{}, invalid(ErrInvalidValue, s, genderClassExpected, err)
	}
	return GenderClass{Gender: gender, Class: JuniorClassBorn(Year(year))}, nil
}

func (g GenderClass) String() string {
	return g.Gender.String() + " " + g.Class.String()
}
