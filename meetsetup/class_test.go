package meetsetup

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseHandicap(t *testing.T) {
	prefixes := map[string]StyleGroup{
		"S":  StyleGroupFreestyleBackstrokeButterfly,
		"SB": StyleGroupBreaststroke,
		"SM": StyleGroupMedley,
	}
	for prefix, group := range prefixes {
		for grade := 1; grade <= 15; grade++ {
			in := fmt.Sprintf("%s%d", prefix, grade)
			t.Run(in, func(t *testing.T) {
				h, err := ParseHandicap(in)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if h.StyleGroup != group || int(h.DisabilityType) != grade {
					t.Errorf("got %+v, want %v grade %d", h, group, grade)
				}
				display := fmt.Sprintf("%s,%d", prefix, grade)
				if h.String() != display {
					t.Errorf("String() = %q, want %q", h.String(), display)
				}
				again, err := ParseHandicap(h.String())
				if err != nil || again != h {
					t.Errorf("ParseHandicap(%q) = %+v, %v, want %+v", h.String(), again, err, h)
				}
				if _, err := h.Explain(); err != nil {
					t.Errorf("Explain(): %v", err)
				}
			})
		}
	}
}

func TestParseHandicapInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"S0", ErrInvalidDisabilityGrade},
		{"SB16", ErrInvalidDisabilityGrade},
		{"SM99", ErrInvalidDisabilityGrade},
		{"X7", ErrInvalidHandicapStyleGroup},
		{"", ErrInvalidHandicapStyleGroup},
		{"S", ErrInvalidValue},
		{"SBx", ErrInvalidValue},
		{"SQ7", ErrInvalidValue},
		{"S-1", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseHandicap(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHandicapExplain(t *testing.T) {
	tests := []struct {
		h    Handicap
		want string
	}{
		{Handicap{StyleGroupMedley, 3}, "movement and mobility in medley"},
		{Handicap{StyleGroupBreaststroke, 12}, "reduced eye sight or blind in breaststroke"},
		{Handicap{StyleGroupFreestyleBackstrokeButterfly, 14}, "mental disability in freestyle, backstroke and butterfly"},
		{Handicap{StyleGroupMedley, 15}, "deaf in medley"},
	}
	for _, tt := range tests {
		got, err := tt.h.Explain()
		if err != nil {
			t.Fatalf("Explain(%v): %v", tt.h, err)
		}
		if got != tt.want {
			t.Errorf("Explain(%v) = %q, want %q", tt.h, got, tt.want)
		}
	}

	for _, grade := range []uint8{0, 16, 255} {
		if _, err := (Handicap{StyleGroupMedley, grade}).Explain(); !errors.Is(err, ErrInvalidDisabilityGrade) {
			t.Errorf("Explain grade %d err = %v, want ErrInvalidDisabilityGrade", grade, err)
		}
	}
}

func TestParseClass(t *testing.T) {
	const ref Year = 2023
	tests := []struct {
		in   string
		want Class
	}{
		{"SR", SeniorClass()},
		{"JR", JuniorClass()},
		{"2009", JuniorClassBorn(2009)},
		{"1923", JuniorClassBorn(1923)},
		{"2123", JuniorClassBorn(2123)},
		{"SB7", HandicapClass(Handicap{StyleGroupBreaststroke, 7})},
		{"sm3", HandicapClass(Handicap{StyleGroupMedley, 3})},
		{"S,12", HandicapClass(Handicap{StyleGroupFreestyleBackstrokeButterfly, 12})},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClass(tt.in, ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseClassInvalid(t *testing.T) {
	const ref Year = 2023
	for _, in := range []string{"", "sr", "XX", "1922", "2124", "200", "20090", "2O09", "S16", "SX1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseClass(in, ref)
			if !errors.Is(err, ErrInvalidClass) {
				t.Errorf("err = %v, want ErrInvalidClass", err)
			}
		})
	}
}

func TestParseClassReferenceYear(t *testing.T) {
	if _, err := ParseClass("1950", 2023); err != nil {
		t.Fatalf("1950 against 2023: %v", err)
	}
	if _, err := ParseClass("1950", 2051); !errors.Is(err, ErrInvalidClass) {
		t.Errorf("1950 against 2051 err = %v, want ErrInvalidClass", err)
	}
}

func TestClassJuniorGroup(t *testing.T) {
	tests := []struct {
		name     string
		class    Class
		meetYear Year
		want     Junior
		wantErr  error
	}{
		{"nine years", JuniorClassBorn(2014), 2023, JuniorA, nil},
		{"nineteen years", JuniorClassBorn(2004), 2023, JuniorK, nil},
		{"birth year after meet year", JuniorClassBorn(2032), 2023, JuniorA, nil},
		{"too young", JuniorClassBorn(2015), 2023, 0, ErrAgeNotJunior},
		{"too old", JuniorClassBorn(2003), 2023, 0, ErrAgeNotJunior},
		{"relay junior", JuniorClass(), 2023, 0, ErrNoJuniorBirthYear},
		{"senior", SeniorClass(), 2023, 0, ErrNotJuniorVariant},
		{"handicap", HandicapClass(Handicap{StyleGroupMedley, 1}), 2023, 0, ErrNotJuniorVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.class.JuniorGroup(tt.meetYear)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJuniorFromAgeDifference(t *testing.T) {
	letters := "ABCDEFGHIJK"
	for diff := uint32(9); diff <= 19; diff++ {
		j, err := JuniorFromAgeDifference(diff)
		if err != nil {
			t.Fatalf("diff %d: %v", diff, err)
		}
		if want := string(letters[diff-9]); j.String() != want {
			t.Errorf("diff %d = %v, want %s", diff, j, want)
		}
		if j.Age() != int(diff) {
			t.Errorf("Age() = %d, want %d", j.Age(), diff)
		}
	}
	for _, diff := range []uint32{0, 8, 20, 100} {
		if _, err := JuniorFromAgeDifference(diff); !errors.Is(err, ErrAgeNotJunior) {
			t.Errorf("diff %d err = %v, want ErrAgeNotJunior", diff, err)
		}
	}
}

func TestParseGenderClass(t *testing.T) {
	tests := []struct {
		in   string
		want GenderClass
	}{
		{"MSR", GenderClass{Male, SeniorClass()}},
		{"MJS", GenderClass{Male, JuniorClass()}},
		{"KSR", GenderClass{Female, SeniorClass()}},
		{"KJR", GenderClass{Female, JuniorClass()}},
		{"XSR", GenderClass{Mixed, SeniorClass()}},
		{"XJR", GenderClass{Mixed, JuniorClass()}},
		{"M95", GenderClass{Male, JuniorClassBorn(95)}},
		{"K07", GenderClass{Female, JuniorClassBorn(7)}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGenderClass(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseGenderClassInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidStrLen},
		{"MS", ErrInvalidStrLen},
		{"MSRR", ErrInvalidStrLen},
		{"M1995", ErrInvalidStrLen},
		{"X95", ErrInvalidGender},
		{"D07", ErrInvalidGender},
		{"MJR", ErrInvalidValue},
		{"K9x", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseGenderClass(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
