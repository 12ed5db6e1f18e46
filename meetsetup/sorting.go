package meetsetup

// Sorting names the method used to distribute athletes across the heats of
// an event. Athletes are sorted within their class and classes are sorted
// against each other; the methods themselves are applied by the scheduling
// software.
type Sorting uint8

const (
	// SortFinal puts the fastest entry time in the center lanes of the last
	// heat.
	SortFinal Sorting = iota + 1
	// SortFinalAgeGroupTime sorts by age and then time, the default for
	// unofficial meets.
	SortFinalAgeGroupTime
	SortFinalTimeAgeGroup
	SortPartFinal
	SortAlternative
	SortFinalAgeGroupTimeSplitYF
	SortHCFinSRPreJRFin
	SortPreliminary
	SortHCPreSRPreJRFin
	SortHCFinSRFin
	SortAgeGroupedFinal
)

var sortings = vocabulary[Sorting]{
	{SortFinal, []string{"FINAL"}},
	{SortFinalAgeGroupTime, []string{"FINALAGEGROUPTIME"}},
	{SortFinalTimeAgeGroup, []string{"FINALTIMEAGEGROUP"}},
	{SortPartFinal, []string{"PARTFINAL"}},
	{SortAlternative, []string{"ALTERNATIVE"}},
	{SortFinalAgeGroupTimeSplitYF, []string{"FINALAGEGROUPTIMESPLITYF"}},
	{SortHCFinSRPreJRFin, []string{"HCFINSRPREJRFIN"}},
	{SortPreliminary, []string{"PRELIMINARY"}},
	{SortHCPreSRPreJRFin, []string{"HCPRESRPREJRFIN"}},
	{SortHCFinSRFin, []string{"HCFINSRFIN"}},
	{SortAgeGroupedFinal, []string{"AGEGROUPEDFINAL"}},
}

func ParseSorting(s string) (Sorting, error) {
	return sortings.parse(s)
}

func (s Sorting) String() string {
	switch s {
	case SortFinal:
		return "final"
	case SortFinalAgeGroupTime:
		return "final, age then time"
	case SortFinalTimeAgeGroup:
		return "final, time then age"
	case SortPartFinal:
		return "part final"
	case SortAlternative:
		return "alternative"
	case SortFinalAgeGroupTimeSplitYF:
		return "final, age then time, split youngest final"
	case SortHCFinSRPreJRFin:
		return "handicap final, senior preliminary, junior final"
	case SortPreliminary:
		return "preliminary"
	case SortHCPreSRPreJRFin:
		return "handicap preliminary, senior preliminary, junior final"
	case SortHCFinSRFin:
		return "handicap final, senior final"
	case SortAgeGroupedFinal:
		return "age grouped final"
	default:
		return "unknown"
	}
}
