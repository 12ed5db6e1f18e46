package meetsetup

import "fmt"

// Junior is the age class of a junior athlete, A for 9 year olds up to K
// for 19 year olds.
type Junior uint8

const (
	JuniorA Junior = iota + 9
	JuniorB
	JuniorC
	JuniorD
	JuniorE
	JuniorF
	JuniorG
	JuniorH
	JuniorI
	JuniorJ
	JuniorK
)

func JuniorFromAgeDifference(diff uint32) (Junior, error) {
	if diff < uint32(JuniorA) || diff > uint32(JuniorK) {
		return 0, fmt.Errorf("%w: got %d", ErrAgeNotJunior, diff)
	}
	return Junior(diff), nil
}

func (j Junior) Age() int {
	return int(j)
}

func (j Junior) String() string {
	if j < JuniorA || j > JuniorK {
		return "unknown"
	}
	return string(rune('A' + int(j-JuniorA)))
}
