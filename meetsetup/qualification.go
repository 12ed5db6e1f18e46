package meetsetup

import (
	"time"

	"github.com/Nydauron/moisty/parsers"
)

var qualificationSchema = newSchema("Qualification", false,
	f("Class"),
	f("QualificationTime"),
	f("PoolLength"),
	f("Sex"),
	f("DistanceLength"),
	f("Distanceart"),
)

// Qualification is the slowest entry time accepted for one class, gender,
// pool length, distance and style.
type Qualification struct {
	Class       Class
	Time        time.Duration
	PoolLength  PoolLength
	GenderGroup GenderGroup
	Distance    Distance
	Style       Style
}

func DecodeQualification(el *parsers.Element, opts Options) (Qualification, error) {
	d := newRecordDecoder(qualificationSchema, el)
	q := Qualification{
		Class:       required(d, "Class", opts.parseClass),
		Time:        required(d, "QualificationTime", ParseQualificationDuration),
		PoolLength:  required(d, "PoolLength", ParsePoolLength),
		GenderGroup: required(d, "Sex", ParseGenderGroup),
		Distance:    required(d, "DistanceLength", ParseDistance),
		Style:       required(d, "Distanceart", ParseStyle),
	}
	if err := d.finish(); err != nil {
		return Qualification{}, err
	}
	return q, nil
}

var qualificationSetSchema = newSchema("QualificationSet", false,
	f("SetName"),
	many("Qualification"),
)

type QualificationSet struct {
	Name           string
	Qualifications []Qualification
}

func DecodeQualificationSet(el *parsers.Element, opts Options) (QualificationSet, error) {
	d := newRecordDecoder(qualificationSetSchema, el)
	name := withDefault(d, "SetName", parseString, "")
	if err := d.finish(); err != nil {
		return QualificationSet{}, err
	}
	qualifications, err := decodeList(el, "Qualification", func(el *parsers.Element) (Qualification, error) {
		return DecodeQualification(el, opts)
	})
	if err != nil {
		return QualificationSet{}, &DecodeError{Record: "QualificationSet", Field: "Qualification", Err: err}
	}
	return QualificationSet{Name: name, Qualifications: qualifications}, nil
}
