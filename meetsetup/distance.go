package meetsetup

import (
	"fmt"
	"strconv"
	"strings"
)

type Individual uint16

const (
	Distance25   Individual = 25
	Distance50   Individual = 50
	Distance100  Individual = 100
	Distance150  Individual = 150
	Distance200  Individual = 200
	Distance400  Individual = 400
	Distance800  Individual = 800
	Distance1500 Individual = 1500
)

var individualDistances = []Individual{
	Distance25, Distance50, Distance100, Distance150, Distance200, Distance400, Distance800, Distance1500,
}

type Team uint8

const (
	Distance4x25 Team = iota + 1
	Distance4x50
	Distance6x50
	Distance4x100
	Distance8x50
	Distance4x200
	Distance4x400
	// Distance1000 is an unofficial relay written as a plain total.
	Distance1000
)

type teamLayout struct {
	team  Team
	token string
	legs  int
	leg   int
}

var teamLayouts = []teamLayout{
	{Distance4x25, "4*25", 4, 25},
	{Distance4x50, "4*50", 4, 50},
	{Distance6x50, "6*50", 6, 50},
	{Distance4x100, "4*100", 4, 100},
	{Distance8x50, "8*50", 8, 50},
	{Distance4x200, "4*200", 4, 200},
	{Distance4x400, "4*400", 4, 400},
	{Distance1000, "1000", 5, 200},
}

// Bare totals that an older revision of the format used for relays and that
// collide with an individual distance.
var ambiguousTotals = map[int]bool{400: true, 800: true}

// Distance is either an individual distance or a relay distance.
type Distance struct {
	individual Individual
	team       Team
}

func IndividualDistance(d Individual) Distance {
	return Distance{individual: d}
}

func TeamDistance(t Team) Distance {
	return Distance{team: t}
}

func (d Distance) IsTeam() bool {
	return d.team != 0
}

func (d Distance) Individual() (Individual, bool) {
	return d.individual, d.team == 0 && d.individual != 0
}

func (d Distance) Team() (Team, bool) {
	return d.team, d.team != 0
}

func (d Distance) IsOfficial() bool {
	if t, ok := d.Team(); ok {
		return t == Distance4x50 || t == Distance4x100 || t == Distance4x200
	}
	switch d.individual {
	case Distance50, Distance100, Distance200, Distance400, Distance800, Distance1500:
		return true
	default:
		return false
	}
}

// Meters is the total distance swum, all legs included.
func (d Distance) Meters() int {
	if t, ok := d.Team(); ok {
		l := layoutOf(t)
		return l.legs * l.leg
	}
	return int(d.individual)
}

// Token is the canonical spelling in meetsetup.xml.
func (d Distance) Token() string {
	if t, ok := d.Team(); ok {
		return layoutOf(t).token
	}
	return strconv.Itoa(int(d.individual))
}

func (d Distance) String() string {
	return d.Token() + "m"
}

func ParseDistance(s string) (Distance, error) {
	if strings.Contains(s, "*") {
		for _, l := range teamLayouts {
			if l.token == s {
				return TeamDistance(l.team), nil
			}
		}
		return Distance{}, distanceError(s, ErrInvalidDistance)
	}

	if !isCanonicalNumber(s) {
		return Distance{}, invalid(ErrInvalidDistance, s, "one of "+strings.Join(DistanceTokens(), ", "), ErrInvalidValue)
	}
	total, err := strconv.Atoi(s)
	if err != nil {
		return Distance{}, distanceError(s, ErrInvalidDistance)
	}
	if ambiguousTotals[total] {
		return Distance{}, distanceError(s, ErrIndistinguishableDistance)
	}
	if s == layoutOf(Distance1000).token {
		return TeamDistance(Distance1000), nil
	}
	for _, ind := range individualDistances {
		if strconv.Itoa(int(ind)) == s {
			return IndividualDistance(ind), nil
		}
	}
	return Distance{}, distanceError(s, ErrInvalidDistance)
}

// DistanceTokens lists every token ParseDistance accepts.
func DistanceTokens() []string {
	tokens := []string{}
	for _, ind := range individualDistances {
		if !ambiguousTotals[int(ind)] {
			tokens = append(tokens, strconv.Itoa(int(ind)))
		}
	}
	for _, l := range teamLayouts {
		tokens = append(tokens, l.token)
	}
	return tokens
}

func layoutOf(t Team) teamLayout {
	for _, l := range teamLayouts {
		if l.team == t {
			return l
		}
	}
	return teamLayout{team: t, token: fmt.Sprintf("team(%d)", t)}
}

func distanceError(s string, kind error) error {
	return invalid(kind, s, "one of "+strings.Join(DistanceTokens(), ", "), nil)
}
