package parsers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const CELL_SEPARATOR = ","

// ParseCSV splits a uni_p.txt enrollment file. The first line holds the club
// name, every other non-blank line is one entry.
func ParseCSV(r io.Reader) (*Table, error) {
	buf := bufio.NewReader(r)
	club, err := buf.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	club = strings.TrimSpace(club)
	if club == "" {
		return nil, fmt.Errorf("enrollment file does not start with a club name")
	}

	parsedTable := Table{
		Club: club,
		Rows: []Row{},
	}
	if err == io.EOF {
		return &parsedTable, nil
	}

	lineNumber := 1
	for {
		row, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		lineNumber++
		trimmedRow := strings.TrimRight(row, "\r\n")
		if strings.TrimSpace(trimmedRow) != "" {
			cells := strings.Split(trimmedRow, CELL_SEPARATOR)
			for i, cell := range cells {
				cells[i] = strings.Trim(cell, " ")
			}
			parsedTable.Rows = append(parsedTable.Rows, Row{Line: lineNumber, Cells: cells})
		}
		if err == io.EOF {
			break
		}
	}

	return &parsedTable, nil
}
