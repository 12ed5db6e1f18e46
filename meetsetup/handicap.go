package meetsetup

import (
	"fmt"
	"strconv"
	"strings"
)

const handicapExpected = "Sx, SBx or SMx where x is a number between 1 and 15"

// StyleGroup is the range of strokes a disability classification covers.
type StyleGroup uint8

const (
	StyleGroupFreestyleBackstrokeButterfly StyleGroup = iota + 1
	StyleGroupBreaststroke
	StyleGroupMedley
)

func (g StyleGroup) Prefix() string {
	switch g {
	case StyleGroupFreestyleBackstrokeButterfly:
		return "S"
	case StyleGroupBreaststroke:
		return "SB"
	case StyleGroupMedley:
		return "SM"
	default:
		return "?"
	}
}

func (g StyleGroup) String() string {
	switch g {
	case StyleGroupFreestyleBackstrokeButterfly:
		return "freestyle, backstroke and butterfly"
	case StyleGroupBreaststroke:
		return "breaststroke"
	case StyleGroupMedley:
		return "medley"
	default:
		return "unknown"
	}
}

// Handicap is a disability classification.
//
// Disability types:
//   - 1-10: movement disability, higher means more severe.
//   - 11-13: reduced eye sight up to full blindness.
//   - 14: mental disability.
//   - 15: hearing loss.
type Handicap struct {
	StyleGroup     StyleGroup
	DisabilityType uint8
}

func ParseHandicap(s string) (Handicap, error) {
	var group StyleGroup
	var rest string
	switch {
	case strings.HasPrefix(s, "SB"):
		group, rest = StyleGroupBreaststroke, s[2:]
	case strings.HasPrefix(s, "SM"):
		group, rest = StyleGroupMedley, s[2:]
	case strings.HasPrefix(s, "S"):
		group, rest = StyleGroupFreestyleBackstrokeButterfly, s[1:]
	default:
		return Handicap{}, invalid(ErrInvalidHandicapStyleGroup, s, handicapExpected, nil)
	}

	// String() writes a comma between prefix and grade.
	rest = strings.TrimPrefix(rest, ",")
	grade, err := strconv.ParseUint(rest, 10, 8)
	if err != nil {
		return Handicap{}, invalid(ErrInvalidValue, s, handicapExpected, err)
	}
	if grade < 1 || grade > 15 {
		return Handicap{}, invalid(ErrInvalidDisabilityGrade, s, handicapExpected, nil)
	}
	return Handicap{StyleGroup: group, DisabilityType: uint8(grade)}, nil
}

func (h Handicap) String() string {
	return fmt.Sprintf("%s,%d", h.StyleGroup.Prefix(), h.DisabilityType)
}

// Explain describes the classification in plain words.
func (h Handicap) Explain() (string, error) {
	var disability string
	switch {
	case h.DisabilityType >= 1 && h.DisabilityType <= 10:
		disability = "movement and mobility"
	case h.DisabilityType >= 11 && h.DisabilityType <= 13:
		disability = "reduced eye sight or blind"
	case h.DisabilityType == 14:
		disability = "mental disability"
	case h.DisabilityType == 15:
		disability = "deaf"
	default:
		return "", invalid(ErrInvalidDisabilityGrade, strconv.Itoa(int(h.DisabilityType)), "a grade between 1 and 15", nil)
	}
	return fmt.Sprintf("%s in %s", disability, h.StyleGroup), nil
}
