package meetsetup

type PoolLength uint8

const (
	// PoolLength25 is often called short course.
	PoolLength25 PoolLength = 25
	// PoolLength50 is often called long course.
	PoolLength50 PoolLength = 50
)

var poolLengths = vocabulary[PoolLength]{
	{PoolLength25, []string{"25"}},
	{PoolLength50, []string{"50"}},
}

func ParsePoolLength(s string) (PoolLength, error) {
	return poolLengths.parse(s)
}

func (p PoolLength) Meters() int {
	return int(p)
}

func (p PoolLength) String() string {
	switch p {
	case PoolLength25:
		return "25m"
	case PoolLength50:
		return "50m"
	default:
		return "unknown"
	}
}

type PoolCategory uint8

const (
	Meters PoolCategory = iota + 1
)

var poolCategories = vocabulary[PoolCategory]{
	{Meters, []string{"METERS"}},
}

func ParsePoolCategory(s string) (PoolCategory, error) {
	return poolCategories.parse(s)
}

func (p PoolCategory) String() string {
	if p == Meters {
		return "meters"
	}
	return "unknown"
}
