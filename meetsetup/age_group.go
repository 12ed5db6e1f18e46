package meetsetup

import (
	"strings"

	"github.com/Nydauron/moisty/parsers"
)

// AgeGroup is a named set of birth years, e.g. "Klasse 04-05". Groups
// without years are allowed.
type AgeGroup struct {
	Name  string
	Years []Year
}

func DecodeAgeGroup(el *parsers.Element) (AgeGroup, error) {
	group := AgeGroup{}
	if name := el.Child("AgeGroupName"); name != nil {
		group.Name = name.Text
	}
	for _, y := range el.ChildrenNamed("Year") {
		// Years are written space padded, " 2004".
		raw := strings.TrimSpace(y.Text)
		year, err := ParseYear(raw)
		if err != nil {
			return AgeGroup{}, &DecodeError{Record: "AgeGroup", Field: "Year", Input: raw, Err: err}
		}
		group.Years = append(group.Years, year)
	}
	return group, nil
}

func decodeAgeGroups(el *parsers.Element) ([]AgeGroup, error) {
	return decodeList(el, "AgeGroup", DecodeAgeGroup)
}
