package meetsetup

import "github.com/Nydauron/moisty/parsers"

var personSchema = newSchema("Person", false,
	f("LastName"),
	f("FirstName"),
	f("Sex"),
	f("BirthDate"),
	f("Club"),
)

// Person is a meet official such as the entry or competition manager.
type Person struct {
	LastName    string
	FirstName   string
	GenderGroup GenderGroup
	// BirthYear is nil when the vendor wrote a class (SR or JR) instead.
	BirthYear *Year
	Club      string
}

func DecodePerson(el *parsers.Element) (Person, error) {
	d := newRecordDecoder(personSchema, el)
	p := Person{
		LastName:    required(d, "LastName", parseString),
		FirstName:   required(d, "FirstName", parseString),
		GenderGroup: required(d, "Sex", ParseGenderGroup),
		BirthYear:   withDefault(d, "BirthDate", parseBirthDate, (*Year)(nil)),
		Club:        required(d, "Club", parseString),
	}
	if err := d.finish(); err != nil {
		return Person{}, err
	}
	return p, nil
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func parseBirthDate(s string) (*Year, error) {
	if s == "SR" || s == "JR" {
		return nil, nil
	}
	y, err := ParseYear(s)
	if err != nil {
		return nil, err
	}
	return &y, nil
}
