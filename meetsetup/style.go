package meetsetup

type Stroke uint8

const (
	BackStroke Stroke = iota + 1
	BreastStroke
	FreeStyle
	Butterfly
)

var strokes = vocabulary[Stroke]{
	{BackStroke, []string{"BACKSTROKE"}},
	{BreastStroke, []string{"BREASTSTROKE"}},
	{FreeStyle, []string{"FREESTYLE"}},
	{Butterfly, []string{"BUTTERFLY"}},
}

func ParseStroke(s string) (Stroke, error) {
	return strokes.parse(s)
}

func (s Stroke) String() string {
	switch s {
	case BackStroke:
		return "backstroke"
	case BreastStroke:
		return "breaststroke"
	case FreeStyle:
		return "freestyle"
	case Butterfly:
		return "butterfly"
	default:
		return "unknown"
	}
}

// Medley is four strokes swum in order.
type Medley [4]Stroke

var (
	IndividualMedley = Medley{Butterfly, BackStroke, BreastStroke, FreeStyle}
	TeamMedley       = Medley{BackStroke, BreastStroke, Butterfly, FreeStyle}
)

// Style is either a single stroke or a medley. Individual and team medley
// share strokes but not their order, and are never interchangeable.
type Style struct {
	stroke Stroke
	medley Medley
}

func SingleStyle(s Stroke) Style {
	return Style{stroke: s}
}

func MedleyStyle(m Medley) Style {
	return Style{medley: m}
}

func (s Style) IsMedley() bool {
	return s.stroke == 0
}

func (s Style) Stroke() (Stroke, bool) {
	return s.stroke, s.stroke != 0
}

func (s Style) Medley() (Medley, bool) {
	return s.medley, s.stroke == 0
}

var styles = vocabulary[Style]{
	{SingleStyle(FreeStyle), []string{"FREESTYLE", "FR"}},
	{SingleStyle(Butterfly), []string{"BUTTERFLY", "BU"}},
	{SingleStyle(BackStroke), []string{"BACKSTROKE", "RY"}},
	{SingleStyle(BreastStroke), []string{"BREASTSTROKE", "BR"}},
	// IM is also used for handicap individual medley relays.
	{MedleyStyle(IndividualMedley), []string{"INDIVIDUALMEDLEY", "IM"}},
	{MedleyStyle(TeamMedley), []string{"MEDLEYRELAY", "LM"}},
}

func ParseStyle(s string) (Style, error) {
	return styles.parse(s)
}

func (s Style) Token() string {
	return styles.token(s)
}

func (s Style) String() string {
	if st, ok := s.Stroke(); ok {
		return st.String()
	}
	switch s.medley {
	case IndividualMedley:
		return "individual medley"
	case TeamMedley:
		return "team medley"
	default:
		return "medley"
	}
}
