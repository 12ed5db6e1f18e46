package meetsetup

import (
	"errors"
	"slices"
	"testing"
)

func TestCompetitionTypeCodes(t *testing.T) {
	codes := []uint8{3, 4, 5, 6, 8, 15, 16, 18, 19}
	for _, code := range codes {
		ct, err := CompetitionTypeFromCode(code)
		if err != nil {
			t.Fatalf("code %d: %v", code, err)
		}
		if ct.Code() != code {
			t.Errorf("Code() = %d, want %d", ct.Code(), code)
		}
	}
	for _, code := range []uint8{0, 1, 2, 7, 9, 17, 20, 255} {
		_, err := CompetitionTypeFromCode(code)
		var uv *UnknownVariantError
		if !errors.As(err, &uv) {
			t.Errorf("code %d err = %v, want UnknownVariantError", code, err)
			continue
		}
		if !slices.Equal(uv.Allowed, []string{"3", "4", "5", "6", "8", "15", "16", "18", "19"}) {
			t.Errorf("allowed = %v", uv.Allowed)
		}
	}
	if _, err := ParseCompetitionType("abc"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("err = %v, want ErrUnknownVariant", err)
	}
	for _, in := range []string{"+16", "016", " 16"} {
		if _, err := ParseCompetitionType(in); !errors.Is(err, ErrUnknownVariant) {
			t.Errorf("ParseCompetitionType(%q) err = %v, want ErrUnknownVariant", in, err)
		}
	}
	if ct, err := ParseCompetitionType("16"); err != nil || ct != RegionalAgeGroupMeet {
		t.Errorf("ParseCompetitionType(16) = %v, %v", ct, err)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want Style
	}{
		{"FREESTYLE", SingleStyle(FreeStyle)},
		{"FR", SingleStyle(FreeStyle)},
		{"BU", SingleStyle(Butterfly)},
		{"RY", SingleStyle(BackStroke)},
		{"BREASTSTROKE", SingleStyle(BreastStroke)},
		{"IM", MedleyStyle(IndividualMedley)},
		{"INDIVIDUALMEDLEY", MedleyStyle(IndividualMedley)},
		{"LM", MedleyStyle(TeamMedley)},
		{"MEDLEYRELAY", MedleyStyle(TeamMedley)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := ParseStyle("fr"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("err = %v, want ErrUnknownVariant", err)
	}
}

func TestMedleyOrders(t *testing.T) {
	if IndividualMedley == TeamMedley {
		t.Fatal("individual and team medley share their order")
	}
	if IndividualMedley != (Medley{Butterfly, BackStroke, BreastStroke, FreeStyle}) {
		t.Errorf("individual medley = %v", IndividualMedley)
	}
	if TeamMedley != (Medley{BackStroke, BreastStroke, Butterfly, FreeStyle}) {
		t.Errorf("team medley = %v", TeamMedley)
	}
	im, _ := ParseStyle("IM")
	lm, _ := ParseStyle("LM")
	if im == lm {
		t.Error("IM and LM decode to the same style")
	}
	if im.Token() != "INDIVIDUALMEDLEY" || lm.Token() != "MEDLEYRELAY" {
		t.Errorf("tokens = %q, %q", im.Token(), lm.Token())
	}
	if !im.IsMedley() {
		t.Error("IM is not a medley")
	}
}

func TestEnumVocabularies(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
		valid []string
	}{
		{"gender group", discard(ParseGenderGroup), []string{"MALE", "FEMALE", "MIXED"}},
		{"pool length", discard(ParsePoolLength), []string{"25", "50"}},
		{"pool category", discard(ParsePoolCategory), []string{"METERS"}},
		{"stroke", discard(ParseStroke), []string{"BACKSTROKE", "BREASTSTROKE", "FREESTYLE", "BUTTERFLY"}},
		{"award", discard(ParseAward), []string{"DEFAULT", "MEDALS", "NO", "3"}},
		{"touch pads", discard(ParseTouchPadSet), []string{"ONE SET", "TWO SET", "NO"}},
		{"round", discard(ParseRound), []string{"FINAL", "8FINAL", "DIRECTFINAL", "QUARTERFINAL", "SEMIFINAL", "PRELIMINARY", "UNDEFINED"}},
		{"sorting", discard(ParseSorting), []string{
			"FINAL", "FINALAGEGROUPTIME", "FINALTIMEAGEGROUP", "PARTFINAL", "ALTERNATIVE",
			"FINALAGEGROUPTIMESPLITYF", "HCFINSRPREJRFIN", "PRELIMINARY", "HCPRESRPREJRFIN",
			"HCFINSRFIN", "AGEGROUPEDFINAL",
		}},
		{"australian rank", discard(ParseAustralianRank), []string{"PERCENT", "percent"}},
		{"australian world record", discard(ParseAustralianWorldRecord), []string{"LONGCOURSE", "LONG COURSE", "long course", "SAME", "same"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, token := range tt.valid {
				if err := tt.parse(token); err != nil {
					t.Errorf("%q: %v", token, err)
				}
			}
			err := tt.parse("NOT A TOKEN")
			var uv *UnknownVariantError
			if !errors.As(err, &uv) {
				t.Fatalf("err = %v, want UnknownVariantError", err)
			}
			if uv.Input != "NOT A TOKEN" {
				t.Errorf("input = %q", uv.Input)
			}
			for _, token := range tt.valid {
				if !slices.Contains(uv.Allowed, token) {
					t.Errorf("allowed %v is missing %q", uv.Allowed, token)
				}
			}
		})
	}
}

func TestTokensRoundTrip(t *testing.T) {
	for _, g := range []GenderGroup{Male, Female, Mixed} {
		if got, err := ParseGenderGroup(g.Token()); err != nil || got != g {
			t.Errorf("gender %v round trip = %v, %v", g, got, err)
		}
	}
	for _, s := range []Style{SingleStyle(FreeStyle), MedleyStyle(IndividualMedley), MedleyStyle(TeamMedley)} {
		if got, err := ParseStyle(s.Token()); err != nil || got != s {
			t.Errorf("style %v round trip = %v, %v", s, got, err)
		}
	}
}

func discard[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}
