package meetsetup

// GenderGroup restricts who can enter an event.
type GenderGroup uint8

const (
	Male GenderGroup = iota + 1
	Female
	// Mixed lets both genders enroll freely on individual events.
	Mixed
)

var genderGroups = vocabulary[GenderGroup]{
	{Male, []string{"MALE"}},
	{Female, []string{"FEMALE"}},
	{Mixed, []string{"MIXED"}},
}

func ParseGenderGroup(s string) (GenderGroup, error) {
	return genderGroups.parse(s)
}

func (g GenderGroup) Token() string {
	return genderGroups.token(g)
}

func (g GenderGroup) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}
