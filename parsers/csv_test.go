package parsers

import (
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	input := "Bergen SK\r\n1,100, FR ,Hansen\r\n\r\n2,200,BR,Nilsen"
	table, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}
	if table.Club != "Bergen SK" {
		t.Errorf("club = %q", table.Club)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0].Line != 2 || table.Rows[1].Line != 4 {
		t.Errorf("lines = %d, %d", table.Rows[0].Line, table.Rows[1].Line)
	}
	if got := strings.Join(table.Rows[0].Cells, "|"); got != "1|100|FR|Hansen" {
		t.Errorf("cells = %q", got)
	}
}

func TestParseCSVClubOnly(t *testing.T) {
	table, err := ParseCSV(strings.NewReader("Bergen SK"))
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}
	if table.Club != "Bergen SK" || len(table.Rows) != 0 {
		t.Errorf("table = %+v", table)
	}
}

func TestParseCSVNoClub(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Error("expected an error for an empty file")
	}
}
