package meetsetup

// AustralianRank is how the australian model ranks athletes across classes.
// Both upper and lower case spellings exist in the vendor history.
type AustralianRank uint8

const (
	RankPercent AustralianRank = iota + 1
)

var australianRanks = vocabulary[AustralianRank]{
	{RankPercent, []string{"PERCENT", "percent"}},
}

func ParseAustralianRank(s string) (AustralianRank, error) {
	return australianRanks.parse(s)
}

func (a AustralianRank) String() string {
	if a == RankPercent {
		return "percent"
	}
	return "unknown"
}

// AustralianWorldRecord selects which world records the australian model
// compares against.
type AustralianWorldRecord uint8

const (
	RecordLongCourse AustralianWorldRecord = iota + 1
	RecordSame
)

var australianWorldRecords = vocabulary[AustralianWorldRecord]{
	{RecordLongCourse, []string{"LONGCOURSE", "LONG COURSE", "long course"}},
	{RecordSame, []string{"SAME", "same"}},
}

func ParseAustralianWorldRecord(s string) (AustralianWorldRecord, error) {
	return australianWorldRecords.parse(s)
}

func (a AustralianWorldRecord) String() string {
	switch a {
	case RecordLongCourse:
		return "long course"
	case RecordSame:
		return "same"
	default:
		return "unknown"
	}
}
