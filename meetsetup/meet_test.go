package meetsetup

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Nydauron/moisty/parsers"
)

var testOptions = Options{ReferenceYear: 2023}

func readFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/meetsetup.xml")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	return string(b)
}

func decodeMeetString(t *testing.T, doc string) (*Meet, error) {
	t.Helper()
	root, err := parsers.ParseXML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parsing xml: %v", err)
	}
	return DecodeMeet(root, testOptions)
}

func TestReadMeetFile(t *testing.T) {
	m, err := ReadMeetFile("testdata/meetsetup.xml", testOptions)
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}

	if m.Name != "Bergen Sprint Cup" || m.Location != "AdO Arena" {
		t.Errorf("name, location = %q, %q", m.Name, m.Location)
	}
	if m.NsfMeetID == nil || *m.NsfMeetID != 12345 {
		t.Errorf("NsfMeetID = %v, want 12345", m.NsfMeetID)
	}
	if m.PoolLength != PoolLength50 || m.Lanes != 8 {
		t.Errorf("pool = %v with %d lanes", m.PoolLength, m.Lanes)
	}
	if m.CompetitionTypeID != RegionalAgeGroupMeet {
		t.Errorf("CompetitionTypeID = %v", m.CompetitionTypeID)
	}
	if m.AustralianWorldRecord != RecordLongCourse || m.TouchPads != OneSet {
		t.Errorf("australian world record, touch pads = %v, %v", m.AustralianWorldRecord, m.TouchPads)
	}
	if len(m.OnePriceAllClasses) != 2 || m.OnePriceAllClasses[0] != 2012 {
		t.Errorf("OnePriceAllClasses = %v", m.OnePriceAllClasses)
	}
	if len(m.OtherPayments) != 1 || m.OtherPayments[0].Name != "Bankett" || *m.OtherPayments[0].Price != 350 {
		t.Errorf("OtherPayments = %+v", m.OtherPayments)
	}
	if m.WomenJunior != nil || m.GeneralHC != nil {
		t.Error("empty optional fields decoded as present")
	}
	if m.StartDate == nil || !m.StartDate.Equal(time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", m.StartDate)
	}
	if m.Year() != 2023 {
		t.Errorf("Year() = %d", m.Year())
	}
	if m.HomePage == nil || m.HomePage.Host != "bsk.example.no" {
		t.Errorf("HomePage = %v", m.HomePage)
	}

	if len(m.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(m.Sessions))
	}
	if s := m.Sessions[1]; s.ID != 2 || s.Name != "" || s.StartTime != (TimeOfDay{9, 30}) {
		t.Errorf("second session = %+v", s)
	}

	if m.QualificationSet == nil || len(m.QualificationSet.Qualifications) != 2 {
		t.Fatalf("qualification set = %+v", m.QualificationSet)
	}
	q := m.QualificationSet.Qualifications[1]
	if q.Class != JuniorClassBorn(2009) || q.Style != MedleyStyle(IndividualMedley) || q.Time != 2*time.Minute+500*time.Millisecond {
		t.Errorf("qualification = %+v", q)
	}

	if m.EntryManager == nil || m.EntryManager.BirthYear != nil || m.EntryManager.FullName() != "Kari Hansen" {
		t.Errorf("entry manager = %+v", m.EntryManager)
	}
	if m.CompetitionManager == nil || m.CompetitionManager.BirthYear == nil || *m.CompetitionManager.BirthYear != 1971 {
		t.Errorf("competition manager = %+v", m.CompetitionManager)
	}
	if len(m.AgeGroups) != 2 || len(m.AgeGroups[0].Years) != 2 || m.AgeGroups[0].Years[1] != 2005 || len(m.AgeGroups[1].Years) != 0 {
		t.Errorf("age groups = %+v", m.AgeGroups)
	}

	if len(m.Events) != 3 {
		t.Fatalf("events = %d, want 3", len(m.Events))
	}
}

func TestDecodeMeetAliases(t *testing.T) {
	m, err := decodeMeetString(t, readFixture(t))
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if m.MenSenior == nil || *m.MenSenior != 2005 {
		t.Errorf("MenSenior from menSenior = %v", m.MenSenior)
	}
	if m.WriteFirstStage == nil || *m.WriteFirstStage {
		t.Errorf("WriteFirstStage from Skriv1etappe = %v", m.WriteFirstStage)
	}
	if m.EntryEmail == nil || *m.EntryEmail != "entries@bsk.example.no" {
		t.Errorf("EntryEmail from MailPameldinger = %v", m.EntryEmail)
	}
	e := m.Events[1]
	if e.Style != SingleStyle(FreeStyle) || !e.Free {
		t.Errorf("EventArt and FREE aliases = %v, %v", e.Style, e.Free)
	}
}

func TestDecodeMeetRelayEvent(t *testing.T) {
	m, err := decodeMeetString(t, readFixture(t))
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	e := m.Events[0]
	if e.Distance != TeamDistance(Distance4x50) {
		t.Errorf("distance = %v, want 4*50", e.Distance)
	}
	medley, ok := e.Style.Medley()
	if !ok || medley != (Medley{BackStroke, BreastStroke, Butterfly, FreeStyle}) {
		t.Errorf("style = %v", e.Style)
	}
	if e.GenderGroup != Mixed {
		t.Errorf("gender group = %v, want mixed", e.GenderGroup)
	}
	if e.SessionID == nil || *e.SessionID != 1 {
		t.Errorf("session id = %v", e.SessionID)
	}
}

func TestDecodeMeetEvents(t *testing.T) {
	m, err := decodeMeetString(t, readFixture(t))
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	e := m.Events[1]
	if e.Youngest == nil || *e.Youngest != 2008 || e.Oldest != nil {
		t.Errorf("youngest, oldest = %v, %v", e.Youngest, e.Oldest)
	}
	if e.QualificationLongCourse == nil || *e.QualificationLongCourse != time.Minute+5*time.Second {
		t.Errorf("QualificationLongCourse = %v", e.QualificationLongCourse)
	}
	if e.WithdrawalDeadlineTime == nil || *e.WithdrawalDeadlineTime != (TimeOfDay{20, 0}) {
		t.Errorf("withdrawal deadline = %v", e.WithdrawalDeadlineTime)
	}
	if e.Round == nil || *e.Round != RoundPreliminary {
		t.Errorf("round = %v", e.Round)
	}
	if got := m.ExplicitAward(e); got != AwardMedals {
		t.Errorf("award of event 2 = %v, want meet default", got)
	}
	if got := m.ExplicitAward(m.Events[2]); got != AwardNone {
		t.Errorf("award of event 3 = %v, want none", got)
	}
	if got := m.ExplicitAward(m.Events[0]); got != AwardMedals {
		t.Errorf("award of event 1 = %v, want meet default", got)
	}
}

func TestDecodeMeetStrict(t *testing.T) {
	doc := readFixture(t)
	extra := strings.Replace(doc, "<Lanes>8</Lanes>", "<Lanes>8</Lanes>\n  <SwimmingCap>yellow</SwimmingCap>", 1)

	_, err := decodeMeetString(t, extra)
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Record != "Meet" || de.Field != "SwimmingCap" {
		t.Errorf("err = %#v, want Meet.SwimmingCap", err)
	}

	if _, err := decodeMeetString(t, doc); err != nil {
		t.Errorf("without the extra field: %v", err)
	}
}

func TestDecodeMeetDuplicateFields(t *testing.T) {
	tests := []struct {
		name      string
		old       string
		new       string
		wantField string
	}{
		{"repeated field", "<Lanes>8</Lanes>", "<Lanes>8</Lanes>\n  <Lanes>6</Lanes>", "Meet.Lanes: "},
		{"alias and name", "<menSenior>2005</menSenior>", "<menSenior>2005</menSenior>\n  <MenSenior>2004</MenSenior>", "Meet.MenSenior: "},
		{"nested record", "<SessionName>Fredag</SessionName>", "<SessionName>Fredag</SessionName><SessionName>Lordag</SessionName>", "Session.SessionName: "},
	}
	doc := readFixture(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modified := strings.Replace(doc, tt.old, tt.new, 1)
			if modified == doc {
				t.Fatalf("fixture does not contain %q", tt.old)
			}
			m, err := decodeMeetString(t, modified)
			if m != nil || !errors.Is(err, ErrDuplicateField) {
				t.Fatalf("err = %v, want ErrDuplicateField", err)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("err = %q, want it to contain %q", err.Error(), tt.wantField)
			}
		})
	}
}

func TestDecodeMeetLeafWithAttributes(t *testing.T) {
	doc := strings.Replace(readFixture(t), "<MeetName>", `<MeetName lang="no">`, 1)
	m, err := decodeMeetString(t, doc)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if m.Name != "Bergen Sprint Cup" {
		t.Errorf("name = %q, want Bergen Sprint Cup", m.Name)
	}
}

func TestDecodeMeetErrors(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		want    error
		wantMsg string
	}{
		{"missing required", "<Lanes>8</Lanes>", "", ErrMissingField, "Meet.Lanes: missing field"},
		{"bad bool", "<Cancelled>FALSE</Cancelled>", "<Cancelled>no</Cancelled>", ErrUnknownVariant, "Meet.Cancelled: "},
		{"bad date", "<FinalEntryDate>20230505</FinalEntryDate>", "<FinalEntryDate>20230230</FinalEntryDate>", ErrInvalidDate, "Meet.FinalEntryDate: "},
		{"bad event", `Sex="MIXED"`, `Sex="BOTH"`, ErrUnknownVariant, "Meet.Events: Event #1: Event.Sex: "},
		{"ambiguous distance", "<EventLength>100</EventLength>", "<EventLength>400</EventLength>", ErrIndistinguishableDistance, "Event #2: Event.EventLength: "},
		{"bad qualification class", "<Class>2009</Class>", "<Class>1900</Class>", ErrInvalidClass, "Meet.QualificationSet: QualificationSet.Qualification: Qualification #2: Qualification.Class: "},
		{"bad age group year", "<Year> 2005</Year>", "<Year>two</Year>", ErrInvalidValue, "Meet.DefinedAgeGroups: AgeGroup #1: AgeGroup.Year: "},
		{"renamed events", "<Events>", "<Eventz>", ErrUnknownField, "Meet.Eventz: "},
	}
	doc := readFixture(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modified := strings.Replace(doc, tt.old, tt.new, 1)
			if tt.name == "renamed events" {
				modified = strings.Replace(modified, "</Events>", "</Eventz>", 1)
			}
			m, err := decodeMeetString(t, modified)
			if m != nil {
				t.Error("partial meet returned with an error")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDecodeMeetWrongRoot(t *testing.T) {
	root := &parsers.Element{Name: "MeetResults"}
	if _, err := DecodeMeet(root, testOptions); !errors.Is(err, ErrUnknownField) {
		t.Errorf("err = %v, want ErrUnknownField", err)
	}
}

func TestDecodeEventLenient(t *testing.T) {
	root, err := parsers.ParseXML(strings.NewReader(`<Event EventNumber="7" EventLength="200" Eventart="BR" Sex="FEMALE"
		Senior="TRUE" Junior="FALSE" EventPoolLength="25" Date="20230101" Sorting="PARTFINAL" Unheard="x" />`))
	if err != nil {
		t.Fatal(err)
	}
	e, err := DecodeEvent(root)
	if err != nil {
		t.Fatalf("unknown fields must be ignored on events: %v", err)
	}
	if e.Number != 7 || e.Distance != IndividualDistance(Distance200) || e.Sorting != SortPartFinal {
		t.Errorf("event = %+v", e)
	}
	if e.Award != nil || e.JuniorOlder {
		t.Errorf("defaults = %v, %v", e.Award, e.JuniorOlder)
	}
}

func TestDecodeMeetList(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfStrc_stevneoppsett>
  <strc_stevneoppsett>
    <stevnenavn>Bergen Sprint Cup</stevnenavn>
    <fradato>20230512</fradato>
    <tildato>20230514</tildato>
    <arrangor>Bergen Svommeklubb</arrangor>
    <nsfstevneid>12345</nsfstevneid>
    <xmllink>http://medley.no/stevner/12345/meetsetup.xml</xmllink>
  </strc_stevneoppsett>
  <strc_stevneoppsett>
    <stevnenavn>Klubbmesterskap</stevnenavn>
    <fradato>20230601</fradato>
    <tildato>20230601</tildato>
    <arrangor></arrangor>
    <nsfstevneid></nsfstevneid>
    <xmllink>http://medley.no/stevner/klubb/meetsetup.xml</xmllink>
  </strc_stevneoppsett>
</ArrayOfStrc_stevneoppsett>`
	root, err := parsers.ParseXML(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	infos, err := DecodeMeetList(root)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("infos = %d, want 2", len(infos))
	}
	if infos[0].ID != 12345 || infos[0].MeetSetup.Path != "/stevner/12345/meetsetup.xml" {
		t.Errorf("first = %+v", infos[0])
	}
	if infos[1].ID != 0 || infos[1].Host != "" {
		t.Errorf("second = %+v", infos[1])
	}
}

func TestFilenamePolicy(t *testing.T) {
	tests := []struct {
		policy FilenamePolicy
		name   string
		id     uint32
		want   string
	}{
		{FilenameByID, "Bergen Sprint Cup", 12345, "00000012345.xml"},
		{FilenameByID, "Bergen Sprint Cup", 0, "bergen_sprint_cup.xml"},
		{FilenameByName, "Bergen Sprint Cup", 12345, "bergen_sprint_cup.xml"},
		{FilenameByName, " NM Junior 25/50m ", 0, "nm_junior_25_50m.xml"},
	}
	for _, tt := range tests {
		if got := tt.policy.Filename(tt.name, tt.id); got != tt.want {
			t.Errorf("%v.Filename(%q, %d) = %q, want %q", tt.policy, tt.name, tt.id, got, tt.want)
		}
	}

	m, err := ReadMeetFile("testdata/meetsetup.xml", testOptions)
	if err != nil {
		t.Fatal(err)
	}
	info := MeetInfo{Name: m.Name, ID: *m.NsfMeetID}
	if m.Filename(DefaultFilenamePolicy) != info.Filename(DefaultFilenamePolicy) {
		t.Errorf("meet and meet list disagree: %q, %q", m.Filename(DefaultFilenamePolicy), info.Filename(DefaultFilenamePolicy))
	}
}
