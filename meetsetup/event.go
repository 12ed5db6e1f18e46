package meetsetup

import (
	"time"

	"github.com/Nydauron/moisty/parsers"
)

var eventSchema = newSchema("Event", false,
	f("EventNumber"),
	f("EventDescription"),
	f("EventLength"),
	f("Eventart", "EventArt"),
	f("Sex"),
	f("Senior"),
	f("Junior"),
	f("JuniorOlder"),
	f("JuniorYounger"),
	f("Youngest"),
	f("Oldest"),
	f("EventPoolLength"),
	f("Date"),
	f("QualLongCourse"),
	f("QualShortCourse"),
	f("Sorting"),
	f("NoQualHcEvent"),
	f("Webheat"),
	f("Sponsor"),
	f("SRJRCOMBI"),
	f("Free", "FREE"),
	f("DontShowAgeGroup"),
	f("ShowEntryTimes"),
	f("Prizes"),
	f("Round"),
	f("PresentationLastHeat"),
	f("Break"),
	f("PrizeCeremony"),
	f("PostponeHeat"),
	f("StartAfterBreak"),
	f("PresentationTime"),
	f("BreakTime"),
	f("PrizeCeremonyTime"),
	f("PrizeCeremonyText"),
	f("PostponeHeatNumber"),
	f("StartAfterBreakMin"),
	f("SesId"),
	f("AltEventId"),
	f("AltSesId"),
	f("AltClassName"),
	f("BreakAlt"),
	f("PrizeCeremonyAlt"),
	f("LenexEventId"),
	f("LenexEventNo"),
	f("LenexEventOrder"),
	f("DEADLINEDATEWITHDRAWALS"),
	f("DEADLINETIMEWITHDRAWALS"),
	f("DEADLINEDATERELAY"),
	f("DEADLINETIMERELAY"),
)

// Event is one race of a meet. Whether the distance and style make up an
// official event is left to Distance.IsOfficial.
type Event struct {
	Number      uint32
	Description string
	Distance    Distance
	Style       Style
	GenderGroup GenderGroup

	Senior        bool
	Junior        bool
	JuniorOlder   bool
	JuniorYounger bool
	Youngest      *Year
	Oldest        *Year

	PoolLength PoolLength
	Date       time.Time

	QualificationLongCourse  *time.Duration
	QualificationShortCourse *time.Duration
	NoQualificationHandicap  bool

	Sorting Sorting
	// Award overrides Meet.Award when set and not AwardDefault.
	Award *Award
	Round *Round

	WebHeat              bool
	Sponsor              *string
	SeniorJuniorCombined bool
	Free                 bool
	DontShowAgeGroup     bool
	ShowEntryTimes       bool

	PresentationLastHeat bool
	Break                bool
	PrizeCeremony        bool
	PostponeHeat         bool
	StartAfterBreak      bool
	// Scheduling hints, kept as written.
	PresentationTime   *string
	BreakTime          *string
	PrizeCeremonyTime  *string
	PrizeCeremonyText  *string
	PostponeHeatNumber *uint8
	StartAfterBreakMin *string

	SessionID        *uint8
	AltEventID       *uint16
	AltSessionID     *uint16
	AltClassName     *bool
	BreakAlt         *bool
	PrizeCeremonyAlt *bool

	LenexEventID    *uint16
	LenexEventNo    *uint16
	LenexEventOrder *uint16

	WithdrawalDeadlineDate *time.Time
	WithdrawalDeadlineTime *TimeOfDay
	RelayDeadlineDate      *time.Time
	RelayDeadlineTime      *TimeOfDay
}

func DecodeEvent(el *parsers.Element) (Event, error) {
	d := newRecordDecoder(eventSchema, el)
	e := Event{
		Number:      required(d, "EventNumber", parseUint[uint32](32)),
		Description: withDefault(d, "EventDescription", parseString, ""),
		Distance:    required(d, "EventLength", ParseDistance),
		Style:       required(d, "Eventart", ParseStyle),
		GenderGroup: required(d, "Sex", ParseGenderGroup),

		Senior:        required(d, "Senior", ParseBool),
		Junior:        required(d, "Junior", ParseBool),
		JuniorOlder:   withDefault(d, "JuniorOlder", ParseBool, false),
		JuniorYounger: withDefault(d, "JuniorYounger", ParseBool, false),
		Youngest:      optional(d, "Youngest", ParseYear),
		Oldest:        optional(d, "Oldest", ParseYear),

		PoolLength: required(d, "EventPoolLength", ParsePoolLength),
		Date:       required(d, "Date", ParseDate),

		QualificationLongCourse:  optional(d, "QualLongCourse", ParseDuration),
		QualificationShortCourse: optional(d, "QualShortCourse", ParseDuration),
		NoQualificationHandicap:  withDefault(d, "NoQualHcEvent", ParseBool, false),

		Sorting: required(d, "Sorting", ParseSorting),
		Award:   optional(d, "Prizes", ParseAward),
		Round:   optional(d, "Round", ParseRound),

		WebHeat:              withDefault(d, "Webheat", ParseBool, false),
		Sponsor:              optional(d, "Sponsor", parseString),
		SeniorJuniorCombined: withDefault(d, "SRJRCOMBI", ParseBool, false),
		Free:                 withDefault(d, "Free", ParseBool, false),
		DontShowAgeGroup:     withDefault(d, "DontShowAgeGroup", ParseBool, false),
		ShowEntryTimes:       withDefault(d, "ShowEntryTimes", ParseBool, false),

		PresentationLastHeat: withDefault(d, "PresentationLastHeat", ParseBool, false),
		Break:                withDefault(d, "Break", ParseBool, false),
		PrizeCeremony:        withDefault(d, "PrizeCeremony", ParseBool, false),
		PostponeHeat:         withDefault(d, "PostponeHeat", ParseBool, false),
		StartAfterBreak:      withDefault(d, "StartAfterBreak", ParseBool, false),
		PresentationTime:     optional(d, "PresentationTime", parseString),
		BreakTime:            optional(d, "BreakTime", parseString),
		PrizeCeremonyTime:    optional(d, "PrizeCeremonyTime", parseString),
		PrizeCeremonyText:    optional(d, "PrizeCeremonyText", parseString),
		PostponeHeatNumber:   optional(d, "PostponeHeatNumber", parseUint[uint8](8)),
		StartAfterBreakMin:   optional(d, "StartAfterBreakMin", parseString),

		SessionID:        optional(d, "SesId", parseUint[uint8](8)),
		AltEventID:       optional(d, "AltEventId", parseUint[uint16](16)),
		AltSessionID:     optional(d, "AltSesId", parseUint[uint16](16)),
		AltClassName:     optional(d, "AltClassName", ParseBool),
		BreakAlt:         optional(d, "BreakAlt", ParseBool),
		PrizeCeremonyAlt: optional(d, "PrizeCeremonyAlt", ParseBool),

		LenexEventID:    optional(d, "LenexEventId", parseUint[uint16](16)),
		LenexEventNo:    optional(d, "LenexEventNo", parseUint[uint16](16)),
		LenexEventOrder: optional(d, "LenexEventOrder", parseUint[uint16](16)),

		WithdrawalDeadlineDate: optional(d, "DEADLINEDATEWITHDRAWALS", ParseDate),
		WithdrawalDeadlineTime: optional(d, "DEADLINETIMEWITHDRAWALS", ParseTime),
		RelayDeadlineDate:      optional(d, "DEADLINEDATERELAY", ParseDate),
		RelayDeadlineTime:      optional(d, "DEADLINETIMERELAY", ParseTime),
	}
	if err := d.finish(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// decodeEvents reads the Event children of the Events wrapper element.
func decodeEvents(el *parsers.Element) ([]Event, error) {
	return decodeList(el, "Event", DecodeEvent)
}

func decodeList[T any](el *parsers.Element, name string, decode func(*parsers.Element) (T, error)) ([]T, error) {
	children := el.ChildrenNamed(name)
	items := make([]T, 0, len(children))
	for i, child := range children {
		item, err := decode(child)
		if err != nil {
			return nil, &listError{Name: name, Index: i, Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}
