package report

// Report is the presentation model of one decoded meet. Every value is
// preformatted for reading, absent values are left empty.
type Report struct {
	Meet           MeetMetadata    `yaml:"Meet" json:"meet"`
	Sessions       []Session       `yaml:"Sessions,omitempty" json:"sessions,omitempty"`
	Events         []Event         `yaml:"Events" json:"events"`
	Qualifications []Qualification `yaml:"Qualifications,omitempty" json:"qualifications,omitempty"`
	AgeGroups      []AgeGroup      `yaml:"Age groups,omitempty" json:"age_groups,omitempty"`
}

type MeetMetadata struct {
	Name            string `yaml:"name" json:"name"`
	Filename        string `yaml:"filename" json:"filename"`
	NsfID           string `yaml:"nsf id,omitempty" json:"nsf_id,omitempty"`
	Location        string `yaml:"location" json:"location"`
	Host            string `yaml:"host,omitempty" json:"host,omitempty"`
	Dates           string `yaml:"dates" json:"dates"`
	StartDate       string `yaml:"start date,omitempty" json:"start_date,omitempty"`
	EndDate         string `yaml:"end date,omitempty" json:"end_date,omitempty"`
	Year            int    `yaml:"year" json:"year"`
	CompetitionType string `yaml:"competition type" json:"competition_type"`
	Pool            string `yaml:"pool" json:"pool"`
	Lanes           uint8  `yaml:"lanes" json:"lanes"`
	LastEntryDate   string `yaml:"last entry date" json:"last_entry_date"`
	Award           string `yaml:"award,omitempty" json:"award,omitempty"`
	Official        bool   `yaml:"official" json:"official"`
	Cancelled       bool   `yaml:"cancelled" json:"cancelled"`
	EntryManager    string `yaml:"entry manager,omitempty" json:"entry_manager,omitempty"`
	Results         string `yaml:"results,omitempty" json:"results,omitempty"`
}

type Session struct {
	Number    uint8    `yaml:"number" json:"number"`
	Name      string   `yaml:"name,omitempty" json:"name,omitempty"`
	Date      string   `yaml:"date" json:"date"`
	StartTime string   `yaml:"start" json:"start"`
	Events    []uint32 `yaml:"events,flow,omitempty" json:"events,omitempty"`
}

type Event struct {
	Number        uint32   `yaml:"number" json:"number"`
	Name          string   `yaml:"name" json:"name"`
	Gender        string   `yaml:"gender" json:"gender"`
	Classes       []string `yaml:"classes,flow,omitempty" json:"classes,omitempty"`
	Date          string   `yaml:"date" json:"date"`
	Session       uint8    `yaml:"session,omitempty" json:"session,omitempty"`
	Pool          string   `yaml:"pool" json:"pool"`
	Relay         bool     `yaml:"relay" json:"relay"`
	Official      bool     `yaml:"official" json:"official"`
	Sorting       string   `yaml:"sorting" json:"sorting"`
	Round         string   `yaml:"round,omitempty" json:"round,omitempty"`
	Award         string   `yaml:"award" json:"award"`
	QualLongPool  string   `yaml:"qualification 50m,omitempty" json:"qualification_lcm,omitempty"`
	QualShortPool string   `yaml:"qualification 25m,omitempty" json:"qualification_scm,omitempty"`
}

type Qualification struct {
	Set     string `yaml:"set" json:"set"`
	Class   string `yaml:"class" json:"class"`
	Junior  string `yaml:"junior,omitempty" json:"junior,omitempty"`
	Explain string `yaml:"explain,omitempty" json:"explain,omitempty"`
	Gender  string `yaml:"gender" json:"gender"`
	Event   string `yaml:"event" json:"event"`
	Pool    string `yaml:"pool" json:"pool"`
	Time    string `yaml:"time" json:"time"`
}

type AgeGroup struct {
	Name  string `yaml:"name" json:"name"`
	Years []int  `yaml:"years,flow,omitempty" json:"years,omitempty"`
}
