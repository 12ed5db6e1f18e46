package meetsetup

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	classExpected      = "'SR', 'JR', 'Sx', 'SBx', 'SMx' where x is between 1 and 15, or a four digit birth year"
	maxBirthYearOffset = 100
)

type ClassKind uint8

const (
	// Senior athletes are older than 19.
	Senior ClassKind = iota + 1
	// Junior athletes are 9 to 19. Junior relays are not bound to a year.
	JuniorKind
	HandicapKind
)

// Class is the group an athlete competes in. Athletes only compete against
// athletes of the same class.
type Class struct {
	kind         ClassKind
	birthYear    Year
	hasBirthYear bool
	handicap     Handicap
}

func SeniorClass() Class {
	return Class{kind: Senior}
}

// JuniorClass is the class of junior relays, which have no birth year.
func JuniorClass() Class {
	return Class{kind: JuniorKind}
}

func JuniorClassBorn(year Year) Class {
	return Class{kind: JuniorKind, birthYear: year, hasBirthYear: true}
}

func HandicapClass(h Handicap) Class {
	return Class{kind: HandicapKind, handicap: h}
}

func (c Class) Kind() ClassKind {
	return c.kind
}

func (c Class) BirthYear() (Year, bool) {
	return c.birthYear, c.hasBirthYear
}

func (c Class) Handicap() (Handicap, bool) {
	return c.handicap, c.kind == HandicapKind
}

// ParseClass decodes a class token. Birth years further than 100 years from
// referenceYear are rejected.
func ParseClass(s string, referenceYear Year) (Class, error) {
	switch s {
	case "SR":
		return SeniorClass(), nil
	case "JR":
		return JuniorClass(), nil
	case "":
		return Class{}, invalid(ErrInvalidClass, s, classExpected, nil)
	}

	switch first := s[0]; {
	case first == 'S' || first == 's':
		h, err := ParseHandicap(strings.ToUpper(s))
		if err != nil {
			return Class{}, invalid(ErrInvalidClass, s, classExpected, err)
		}
		return HandicapClass(h), nil
	case first >= '0' && first <= '9':
		if len(s) != 4 || !isDigits(s) {
			return Class{}, invalid(ErrInvalidClass, s, classExpected, nil)
		}
		year, err := ParseYear(s)
		if err != nil {
			return Class{}, invalid(ErrInvalidClass, s, classExpected, err)
		}
		if absDiff(year, referenceYear) > maxBirthYearOffset {
			return Class{}, invalid(ErrInvalidClass, s, classExpected,
				fmt.Errorf("more than %d years away from %d", maxBirthYearOffset, referenceYear))
		}
		return JuniorClassBorn(year), nil
	default:
		return Class{}, invalid(ErrInvalidClass, s, classExpected, nil)
	}
}

// JuniorGroup resolves the junior age class of c at a meet held in meetYear.
func (c Class) JuniorGroup(meetYear Year) (Junior, error) {
	if c.kind != JuniorKind {
		return 0, ErrNotJuniorVariant
	}
	if !c.hasBirthYear {
		return 0, ErrNoJuniorBirthYear
	}
	return JuniorFromAgeDifference(absDiff(meetYear, c.birthYear))
}

func (c Class) String() string {
	switch c.kind {
	case Senior:
		return "senior"
	case JuniorKind:
		if c.hasBirthYear {
			return "junior " + strconv.Itoa(int(c.birthYear))
		}
		return "junior"
	case HandicapKind:
		return "handicap " + c.handicap.String()
	default:
		return "unknown"
	}
}

func absDiff(a, b Year) uint32 {
	if a > b {
		return uint32(int32(a) - int32(b))
	}
	return uint32(int32(b) - int32(a))
}
