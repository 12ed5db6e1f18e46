package meetsetup

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Nydauron/moisty/parsers"
)

// RootElement is the document element of meetsetup.xml.
const RootElement = "MeetSetUp"

const otherPayments = 8

// Options carries what decoding needs from outside the document.
type Options struct {
	// ReferenceYear bounds birth years found in classes, usually the current
	// year. Decoding never reads the clock.
	ReferenceYear Year
}

func (o Options) parseClass(s string) (Class, error) {
	return ParseClass(s, o.ReferenceYear)
}

var meetSchema = newSchema("Meet", true, meetFields()...)

func meetFields() []field {
	fields := []field{
		f("NsfVersion"),
		f("Creator"),
		f("NSFMeetId"),
		f("MeetName"),
		f("MeetDate"),
		f("MeetPlace"),
		f("PoolCategory"),
		f("PoolLength"),
		f("StartWithLane"),
		f("Lanes"),
		f("IndividualPrice"),
		f("TeamPrice"),
		f("IndividualPrice2"),
		f("TeamPrice2"),
		f("OnePriceAll"),
		f("OnePriceAllClasses"),
		f("AustralianModel"),
		f("AustralianRank"),
		f("AustralianWorldRecord"),
		f("HCSingleAgeGroup"),
		f("WomenSenior"),
		f("ExtraTimeBackstroke"),
		f("MenSenior", "menSenior"),
		f("WomenJunior"),
		f("MenJunior"),
		f("WomenJunior2"),
		f("MenJunior2"),
		f("WomenYoungestFinal"),
		f("MenYoungestFinal"),
		f("PrimaryMasters"),
		f("FinalEntryDate"),
		f("FirstEntryDate"),
		f("LastEntryDate"),
		f("NoQualHC"),
		f("StartDate"),
		f("EndDate"),
		f("HostClub"),
		f("HostClubOrganizationNo"),
		f("CompetitionTypeId"),
		f("Community"),
		f("CompetitionType"),
		f("ResultWebaddress"),
		f("Homepage"),
		f("EntryEmail", "EntryMail", "MailPameldinger"),
		f("PayAccount"),
		f("GeneralSenior"),
		f("GeneralJunior"),
		f("GeneralHC"),
		f("PoolLengthStartHeat"),
		f("LCMEntrytimes"),
		f("SCMEntrytimesIfLCMDoesNotExist"),
		f("SortLCMBeforeSCM"),
		f("GeneralMasters"),
		f("NoPool"),
		f("Cancelled"),
		f("Info"),
		f("WriteCountry"),
		f("RecordsInHeatlist"),
		f("WriteFirstLap"),
		f("PageNumberInHeatlist"),
		f("WriteFirstStage", "Skriv1etappe"),
		f("UseGroupText"),
		f("ShowTimeSchedule"),
		f("ShowTimeOnlyHeatOne"),
		f("ShowHeatText"),
		f("Touchpads"),
		f("WriteOtherPrices"),
		f("Unofficial"),
		f("WriteDateTime"),
		f("Header"),
		f("Footer"),
		f("Prizes"),
		f("StartOnMinute"),
		f("TimeBetween"),
		f("ExtraTime"),
		f("Sessions"),
		f("QualificationSet"),
		f("EntryManager"),
		f("DefinedAgeGroups"),
		f("CompetitionManager"),
		f("Events"),
	}
	for i := 1; i <= otherPayments; i++ {
		fields = append(fields, f(fmt.Sprintf("OtherPayment%d", i)), f(fmt.Sprintf("OtherPrice%d", i)))
	}
	return fields
}

// OtherPayment is an extra product sold with the entries, like a meal or a
// banquet ticket. Prices are in NOK.
type OtherPayment struct {
	Name  string
	Price *uint16
}

// Meet is the configuration of one swim meet as written to meetsetup.xml.
// Prices are whole NOK.
type Meet struct {
	NsfVersion string
	Creator    string
	// NsfMeetID is the federation meet id. Unofficial and foreign meets
	// have none.
	NsfMeetID *uint32
	Name      string
	// Date is the human readable date range, e.g. "12.-14. mai 2023".
	Date     string
	Location string

	PoolCategory  PoolCategory
	PoolLength    PoolLength
	StartWithLane *uint8
	Lanes         uint8

	IndividualPrice  uint16
	TeamPrice        uint16
	IndividualPrice2 uint16
	TeamPrice2       uint16
	OnePriceAll      uint16
	// OnePriceAllClasses are the birth years paying OnePriceAll for
	// unlimited entries.
	OnePriceAllClasses []Year
	OtherPayments      []OtherPayment
	WriteOtherPrices   bool
	PayAccount         string

	AustralianModel       bool
	AustralianRank        AustralianRank
	AustralianWorldRecord AustralianWorldRecord

	// HCSingleAgeGroup merges every handicap class into one.
	HCSingleAgeGroup bool
	PrimaryMasters   bool
	NoQualHC         bool

	// Athletes born this year or earlier compete as seniors.
	WomenSenior *Year
	MenSenior   *Year

	WomenJunior        *Year
	MenJunior          *Year
	WomenJunior2       *Year
	MenJunior2         *Year
	WomenYoungestFinal *Year
	MenYoungestFinal   *Year

	ExtraTimeBackstroke *uint8

	FinalEntryDate time.Time
	FirstEntryDate time.Time
	LastEntryDate  time.Time
	StartDate      *time.Time
	EndDate        *time.Time

	HostClub               *string
	HostClubOrganizationNo *string
	Community              *string

	CompetitionTypeID CompetitionType
	CompetitionType   string

	ResultWebAddress *url.URL
	HomePage         *url.URL
	EntryEmail       *string

	GeneralSenior  *bool
	GeneralJunior  *bool
	GeneralHC      *bool
	GeneralMasters *bool
	NoPool         *bool

	PoolLengthStartHeat            *string
	LCMEntryTimes                  *string
	SCMEntryTimesIfLCMDoesNotExist *string
	SortLCMBeforeSCM               *string

	Cancelled  bool
	Unofficial bool
	Info       *string

	WriteCountry         bool
	RecordsInHeatList    bool
	WriteFirstLap        *bool
	PageNumberInHeatList bool
	WriteFirstStage      *bool
	UseGroupText         bool
	ShowTimeSchedule     bool
	ShowTimeOnlyHeatOne  bool
	ShowHeatText         bool
	WriteDateTime        bool
	Header               *string
	Footer               *string

	TouchPads TouchPadSet
	// Award is the default for events using AwardDefault.
	Award *Award

	StartOnMinute *bool
	TimeBetween   *uint16
	ExtraTime     *uint16

	Sessions           []Session
	QualificationSet   *QualificationSet
	EntryManager       *Person
	CompetitionManager *Person
	AgeGroups          []AgeGroup
	Events             []Event
}

// DecodeMeet decodes a MeetSetUp element. Unknown fields are rejected.
func DecodeMeet(root *parsers.Element, opts Options) (*Meet, error) {
	if root.Name != RootElement {
		return nil, &DecodeError{Record: "Meet", Field: root.Name, Err: fmt.Errorf("%w: expected root element %s", ErrUnknownField, RootElement)}
	}
	d := newRecordDecoder(meetSchema, root)
	m := &Meet{
		NsfVersion: required(d, "NsfVersion", parseString),
		Creator:    required(d, "Creator", parseString),
		NsfMeetID:  optional(d, "NSFMeetId", parseUint[uint32](32)),
		Name:       required(d, "MeetName", parseString),
		Date:       required(d, "MeetDate", parseString),
		Location:   required(d, "MeetPlace", parseString),

		PoolCategory:  required(d, "PoolCategory", ParsePoolCategory),
		PoolLength:    required(d, "PoolLength", ParsePoolLength),
		StartWithLane: optional(d, "StartWithLane", parseUint[uint8](8)),
		Lanes:         required(d, "Lanes", parseUint[uint8](8)),

		IndividualPrice:  required(d, "IndividualPrice", parseUint[uint16](16)),
		TeamPrice:        required(d, "TeamPrice", parseUint[uint16](16)),
		IndividualPrice2: required(d, "IndividualPrice2", parseUint[uint16](16)),
		TeamPrice2:       required(d, "TeamPrice2", parseUint[uint16](16)),
		OnePriceAll:      required(d, "OnePriceAll", parseUint[uint16](16)),
	}
	m.OnePriceAllClasses, _ = nested(d, "OnePriceAllClasses", false, decodeBirthYears)
	m.OtherPayments = decodeOtherPayments(d)
	m.WriteOtherPrices = required(d, "WriteOtherPrices", ParseBool)
	m.PayAccount = withDefault(d, "PayAccount", parseString, "")

	m.AustralianModel = required(d, "AustralianModel", ParseBool)
	m.AustralianRank = required(d, "AustralianRank", ParseAustralianRank)
	m.AustralianWorldRecord = required(d, "AustralianWorldRecord", ParseAustralianWorldRecord)
	m.HCSingleAgeGroup = required(d, "HCSingleAgeGroup", ParseBool)
	m.PrimaryMasters = required(d, "PrimaryMasters", ParseBool)
	m.NoQualHC = required(d, "NoQualHC", ParseBool)

	m.WomenSenior = optional(d, "WomenSenior", ParseYear)
	m.MenSenior = optional(d, "MenSenior", ParseYear)
	m.WomenJunior = optional(d, "WomenJunior", ParseYear)
	m.MenJunior = optional(d, "MenJunior", ParseYear)
	m.WomenJunior2 = optional(d, "WomenJunior2", ParseYear)
	m.MenJunior2 = optional(d, "MenJunior2", ParseYear)
	m.WomenYoungestFinal = optional(d, "WomenYoungestFinal", ParseYear)
	m.MenYoungestFinal = optional(d, "MenYoungestFinal", ParseYear)
	m.ExtraTimeBackstroke = optional(d, "ExtraTimeBackstroke", parseUint[uint8](8))

	m.FinalEntryDate = required(d, "FinalEntryDate", ParseDate)
	m.FirstEntryDate = required(d, "FirstEntryDate", ParseDate)
	m.LastEntryDate = required(d, "LastEntryDate", ParseDate)
	m.StartDate = optional(d, "StartDate", ParseDate)
	m.EndDate = optional(d, "EndDate", ParseDate)

	m.HostClub = optional(d, "HostClub", parseString)
	m.HostClubOrganizationNo = optional(d, "HostClubOrganizationNo", parseString)
	m.Community = optional(d, "Community", parseString)
	m.CompetitionTypeID = required(d, "CompetitionTypeId", ParseCompetitionType)
	m.CompetitionType = required(d, "CompetitionType", parseString)

	m.ResultWebAddress = withDefault(d, "ResultWebaddress", url.Parse, (*url.URL)(nil))
	m.HomePage = withDefault(d, "Homepage", url.Parse, (*url.URL)(nil))
	m.EntryEmail = optional(d, "EntryEmail", parseString)

	m.GeneralSenior = optional(d, "GeneralSenior", ParseBool)
	m.GeneralJunior = optional(d, "GeneralJunior", ParseBool)
	m.GeneralHC = optional(d, "GeneralHC", ParseBool)
	m.GeneralMasters = optional(d, "GeneralMasters", ParseBool)
	m.NoPool = optional(d, "NoPool", ParseBool)
	m.PoolLengthStartHeat = optional(d, "PoolLengthStartHeat", parseString)
	m.LCMEntryTimes = optional(d, "LCMEntrytimes", parseString)
	m.SCMEntryTimesIfLCMDoesNotExist = optional(d, "SCMEntrytimesIfLCMDoesNotExist", parseString)
	m.SortLCMBeforeSCM = optional(d, "SortLCMBeforeSCM", parseString)

	m.Cancelled = required(d, "Cancelled", ParseBool)
	m.Unofficial = required(d, "Unofficial", ParseBool)
	m.Info = optional(d, "Info", parseString)

	m.WriteCountry = required(d, "WriteCountry", ParseBool)
	m.RecordsInHeatList = required(d, "RecordsInHeatlist", ParseBool)
	m.WriteFirstLap = optional(d, "WriteFirstLap", ParseBool)
	m.PageNumberInHeatList = required(d, "PageNumberInHeatlist", ParseBool)
	m.WriteFirstStage = optional(d, "WriteFirstStage", ParseBool)
	m.UseGroupText = required(d, "UseGroupText", ParseBool)
	m.ShowTimeSchedule = required(d, "ShowTimeSchedule", ParseBool)
	m.ShowTimeOnlyHeatOne = required(d, "ShowTimeOnlyHeatOne", ParseBool)
	m.ShowHeatText = required(d, "ShowHeatText", ParseBool)
	m.WriteDateTime = required(d, "WriteDateTime", ParseBool)
	m.Header = optional(d, "Header", parseString)
	m.Footer = optional(d, "Footer", parseString)

	m.TouchPads = required(d, "Touchpads", ParseTouchPadSet)
	m.Award = optional(d, "Prizes", ParseAward)
	m.StartOnMinute = optional(d, "StartOnMinute", ParseBool)
	m.TimeBetween = optional(d, "TimeBetween", parseUint[uint16](16))
	m.ExtraTime = optional(d, "ExtraTime", parseUint[uint16](16))

	m.Sessions, _ = nested(d, "Sessions", true, decodeSessions)
	m.QualificationSet = optionalNested(d, "QualificationSet", func(el *parsers.Element) (QualificationSet, error) {
		return DecodeQualificationSet(el, opts)
	})
	m.EntryManager = optionalNested(d, "EntryManager", DecodePerson)
	m.CompetitionManager = optionalNested(d, "CompetitionManager", DecodePerson)
	m.AgeGroups, _ = nested(d, "DefinedAgeGroups", false, decodeAgeGroups)
	m.Events, _ = nested(d, "Events", true, decodeEvents)

	if err := d.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadMeet parses and decodes a meetsetup.xml document.
func ReadMeet(r io.Reader, opts Options) (*Meet, error) {
	root, err := parsers.ParseXML(r)
	if err != nil {
		return nil, err
	}
	return DecodeMeet(root, opts)
}

func ReadMeetFile(path string, opts Options) (*Meet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	meet, err := ReadMeet(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return meet, nil
}

// Year is the calendar year the meet starts in, taken from StartDate, or the
// last entry date when the meet has no start date.
func (m *Meet) Year() Year {
	if m.StartDate != nil {
		return Year(m.StartDate.Year())
	}
	return Year(m.LastEntryDate.Year())
}

// ExplicitAward resolves the award policy of e against the meet default.
func (m *Meet) ExplicitAward(e Event) Award {
	if e.Award != nil && *e.Award != AwardDefault {
		return *e.Award
	}
	if m.Award != nil {
		return *m.Award
	}
	return AwardDefault
}

func optionalNested[T any](d *recordDecoder, name string, decode func(*parsers.Element) (T, error)) *T {
	v, ok := nested(d, name, false, decode)
	if !ok {
		return nil
	}
	return &v
}

func decodeOtherPayments(d *recordDecoder) []OtherPayment {
	payments := []OtherPayment{}
	for i := 1; i <= otherPayments; i++ {
		name := optional(d, fmt.Sprintf("OtherPayment%d", i), parseString)
		price := optional(d, fmt.Sprintf("OtherPrice%d", i), parseUint[uint16](16))
		if name == nil {
			continue
		}
		payments = append(payments, OtherPayment{Name: *name, Price: price})
	}
	return payments
}

// decodeBirthYears reads OnePriceAllClasses, written either as repeated
// child elements or as a single list separated by commas or spaces.
func decodeBirthYears(el *parsers.Element) ([]Year, error) {
	var raw []string
	if el.IsLeaf() {
		raw = strings.FieldsFunc(el.Text, func(r rune) bool {
			return r == ',' || r == ' ' || r == ';'
		})
	} else {
		for _, child := range el.Children {
			raw = append(raw, strings.TrimSpace(child.Text))
		}
	}
	years := make([]Year, 0, len(raw))
	for _, s := range raw {
		y, err := ParseYear(s)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, nil
}
