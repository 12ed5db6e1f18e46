// Package unip reads uni_p.txt, the club entry file exported by the
// enrollment software.
//
// The layout of the middle columns (gender, class and birth year) has not
// been pinned down, so they are kept as written in Entry.Unresolved.
package unip

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Nydauron/moisty/meetsetup"
	"github.com/Nydauron/moisty/parsers"
)

const (
	colEventNumber = iota
	colDistance
	colStyle
	colLastName
	colFirstName

	// entry time and pool length close every row
	trailingColumns = 2
	minColumns      = colFirstName + 1 + trailingColumns
)

var (
	ErrTooFewColumns   = errors.New("too few columns")
	ErrInvalidDuration = errors.New("invalid entry time")
)

// Error locates a failure in the entry file.
type Error struct {
	Line   int
	Column string
	Input  string
	Err    error
}

func (e *Error) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Column, e.Input, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Entry struct {
	Line        int
	EventNumber uint8
	Distance    meetsetup.Distance
	Style       meetsetup.Style
	Name        string
	EntryTime   time.Duration
	PoolLength  meetsetup.PoolLength
	// Unresolved are the columns between the name and the entry time.
	Unresolved []string
}

type Enrollment struct {
	Club    string
	Entries []Entry
}

func Decode(table *parsers.Table) (*Enrollment, error) {
	enrollment := &Enrollment{Club: table.Club, Entries: make([]Entry, 0, len(table.Rows))}
	for _, row := range table.Rows {
		entry, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		enrollment.Entries = append(enrollment.Entries, entry)
	}
	return enrollment, nil
}

func Read(r io.Reader) (*Enrollment, error) {
	table, err := parsers.ParseCSV(r)
	if err != nil {
		return nil, err
	}
	return Decode(table)
}

func ReadFile(path string) (*Enrollment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

func decodeRow(row parsers.Row) (Entry, error) {
	cells := row.Cells
	if len(cells) < minColumns {
		return Entry{}, &Error{Line: row.Line, Err: fmt.Errorf("%w: got %d, want at least %d", ErrTooFewColumns, len(cells), minColumns)}
	}
	fail := func(column string, input string, err error) (Entry, error) {
		return Entry{}, &Error{Line: row.Line, Column: column, Input: input, Err: err}
	}

	number, err := strconv.ParseUint(cells[colEventNumber], 10, 8)
	if err != nil {
		return fail("event number", cells[colEventNumber], err)
	}
	distance, err := meetsetup.ParseDistance(cells[colDistance])
	if err != nil {
		return fail("distance", cells[colDistance], err)
	}
	style, err := meetsetup.ParseStyle(cells[colStyle])
	if err != nil {
		return fail("style", cells[colStyle], err)
	}

	timeCol := len(cells) - trailingColumns
	entryTime, err := ParseEntryTime(cells[timeCol])
	if err != nil {
		return fail("entry time", cells[timeCol], err)
	}
	poolLength, err := parsePoolLength(cells[timeCol+1])
	if err != nil {
		return fail("pool length", cells[timeCol+1], err)
	}

	return Entry{
		Line:        row.Line,
		EventNumber: uint8(number),
		Distance:    distance,
		Style:       style,
		Name:        strings.TrimSpace(cells[colLastName] + " " + cells[colFirstName]),
		EntryTime:   entryTime,
		PoolLength:  poolLength,
		Unresolved:  append([]string{}, cells[colFirstName+1:timeCol]...),
	}, nil
}

// ParseEntryTime reads "mm:ss.hh". An empty time means no entry time.
func ParseEntryTime(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	minutes, rest, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: expected mm:ss.hh", ErrInvalidDuration)
	}
	seconds, hundredths, ok := strings.Cut(rest, ".")
	if !ok {
		return 0, fmt.Errorf("%w: expected mm:ss.hh", ErrInvalidDuration)
	}
	parts := make([]uint64, 0, 3)
	for _, p := range []string{minutes, seconds, hundredths} {
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidDuration, err)
		}
		parts = append(parts, v)
	}
	if parts[1] > 59 || parts[2] > 99 {
		return 0, fmt.Errorf("%w: expected mm:ss.hh", ErrInvalidDuration)
	}
	ms := parts[0]*60*1000 + parts[1]*1000 + parts[2]*10
	return time.Duration(ms) * time.Millisecond, nil
}

// K is kortbane (25m), L is langbane (50m).
func parsePoolLength(s string) (meetsetup.PoolLength, error) {
	switch s {
	case "K":
		return meetsetup.PoolLength25, nil
	case "L":
		return meetsetup.PoolLength50, nil
	default:
		return 0, &meetsetup.UnknownVariantError{Input: s, Allowed: []string{"K", "L"}}
	}
}
