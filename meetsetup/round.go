package meetsetup

type Round uint8

const (
	RoundFinal Round = iota + 1
	RoundFinal8
	RoundDirectFinal
	RoundQuarterFinal
	RoundSemiFinal
	RoundPreliminary
	RoundUndefined
)

var rounds = vocabulary[Round]{
	{RoundFinal, []string{"FINAL"}},
	{RoundFinal8, []string{"8FINAL"}},
	{RoundDirectFinal, []string{"DIRECTFINAL"}},
	{RoundQuarterFinal, []string{"QUARTERFINAL"}},
	{RoundSemiFinal, []string{"SEMIFINAL"}},
	{RoundPreliminary, []string{"PRELIMINARY"}},
	{RoundUndefined, []string{"UNDEFINED"}},
}

func ParseRound(s string) (Round, error) {
	return rounds.parse(s)
}

func (r Round) String() string {
	switch r {
	case RoundFinal:
		return "final"
	case RoundFinal8:
		return "8 final"
	case RoundDirectFinal:
		return "direct final"
	case RoundQuarterFinal:
		return "quarter final"
	case RoundSemiFinal:
		return "semi final"
	case RoundPreliminary:
		return "preliminary"
	case RoundUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}
