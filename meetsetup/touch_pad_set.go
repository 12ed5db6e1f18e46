package meetsetup

type TouchPadSet uint8

const (
	OneSet TouchPadSet = iota + 1
	TwoSet
	NoTouchPads
)

var touchPadSets = vocabulary[TouchPadSet]{
	{OneSet, []string{"ONE SET"}},
	{TwoSet, []string{"TWO SET"}},
	{NoTouchPads, []string{"NO"}},
}

func ParseTouchPadSet(s string) (TouchPadSet, error) {
	return touchPadSets.parse(s)
}

func (t TouchPadSet) String() string {
	switch t {
	case OneSet:
		return "one set"
	case TwoSet:
		return "two sets"
	case NoTouchPads:
		return "none"
	default:
		return "unknown"
	}
}
