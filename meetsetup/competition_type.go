package meetsetup

import (
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// CompetitionType decides which rules apply to a meet: which age groups may
// compete and whether entries need qualification times.
//
// The vendor identifies them by numeric code. The code is kept in a table
// instead of the constant values so that reordering the constants can never
// change what a code means.
type CompetitionType uint8

const (
	MentallyDisabledMeet CompetitionType = iota + 1
	NationalMeetWithForeignAthletes
	International
	Unofficial
	NorwegianChampionship
	RegionalWithoutQualification
	RegionalAgeGroupMeet
	DistrictRegionalMeet
	NonNorwegianMeet
)

var competitionTypeCodes = map[CompetitionType]uint8{
	MentallyDisabledMeet:            3,
	NationalMeetWithForeignAthletes: 4,
	International:                   5,
	Unofficial:                      6,
	NorwegianChampionship:           8,
	RegionalWithoutQualification:    15,
	RegionalAgeGroupMeet:            16,
	DistrictRegionalMeet:            18,
	NonNorwegianMeet:                19,
}

func CompetitionTypeFromCode(code uint8) (CompetitionType, error) {
	for t, c := range competitionTypeCodes {
		if c == code {
			return t, nil
		}
	}
	return 0, &UnknownVariantError{Input: strconv.Itoa(int(code)), Allowed: competitionTypeTokens()}
}

func ParseCompetitionType(s string) (CompetitionType, error) {
	if !isCanonicalNumber(s) {
		return 0, &UnknownVariantError{Input: s, Allowed: competitionTypeTokens()}
	}
	code, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, &UnknownVariantError{Input: s, Allowed: competitionTypeTokens()}
	}
	return CompetitionTypeFromCode(uint8(code))
}

func (c CompetitionType) Code() uint8 {
	return competitionTypeCodes[c]
}

func (c CompetitionType) String() string {
	switch c {
	case MentallyDisabledMeet:
		return "meet for mentally disabled athletes"
	case NationalMeetWithForeignAthletes:
		return "national meet with athletes from foreign nations"
	case International:
		return "international championship"
	case Unofficial:
		return "unofficial"
	case NorwegianChampionship:
		return "Norwegian championship"
	case RegionalWithoutQualification:
		return "regional without qualifications"
	case RegionalAgeGroupMeet:
		return "regional age group meet"
	case DistrictRegionalMeet:
		return "district / regional meet"
	case NonNorwegianMeet:
		return "non Norwegian meet"
	default:
		return "unknown"
	}
}

func competitionTypeTokens() []string {
	codes := lo.Values(competitionTypeCodes)
	slices.Sort(codes)
	return lo.Map(codes, func(c uint8, _ int) string {
		return strconv.Itoa(int(c))
	})
}
