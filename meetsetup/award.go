package meetsetup

// Award is the prize policy of an event or a whole meet.
type Award uint8

const (
	// AwardDefault defers to the meet level setting.
	AwardDefault Award = iota + 1
	AwardMedals
	AwardNone
	// AwardTopThird gives prizes to the best third of the field.
	AwardTopThird
)

var awards = vocabulary[Award]{
	{AwardDefault, []string{"DEFAULT"}},
	{AwardMedals, []string{"MEDALS"}},
	{AwardNone, []string{"NO"}},
	{AwardTopThird, []string{"3"}},
}

func ParseAward(s string) (Award, error) {
	return awards.parse(s)
}

func (a Award) String() string {
	switch a {
	case AwardDefault:
		return "events default"
	case AwardMedals:
		return "medals"
	case AwardNone:
		return "none"
	case AwardTopThird:
		return "top 1/3"
	default:
		return "unknown"
	}
}
