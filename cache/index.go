package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("meet not in cache")

// Entry is one downloaded meet.
type Entry struct {
	Filename string
	Name     string
	NsfID    *uint32
	// Dates are YYYY-MM-DD, empty when unknown.
	StartDate    string
	EndDate      string
	Host         string
	SourceURL    string
	Policy       string
	DownloadedAt time.Time
	ParsedAt     *time.Time
	// ParseError is the last decode failure, nil when decoding succeeded or
	// has not been tried.
	ParseError *string
}

const entryColumns = `filename, name, nsf_id, start_date, end_date, host, source_url, policy,
	downloaded_at, parsed_at, parse_error`

// Upsert records a download. Earlier parse results of the same file are
// dropped since the content may have changed.
func (i *Index) Upsert(ctx context.Context, e Entry) error {
	if e.DownloadedAt.IsZero() {
		e.DownloadedAt = time.Now().UTC()
	}
	var nsfID sql.NullInt64
	if e.NsfID != nil {
		nsfID = sql.NullInt64{Int64: int64(*e.NsfID), Valid: true}
	}
	_, err := i.db.ExecContext(ctx, `
		INSERT INTO meets (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, NULL)
		ON CONFLICT(filename) DO UPDATE SET
			name = excluded.name,
			nsf_id = excluded.nsf_id,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			host = excluded.host,
			source_url = excluded.source_url,
			policy = excluded.policy,
			downloaded_at = excluded.downloaded_at,
			parsed_at = NULL,
			parse_error = NULL
	`,
		e.Filename, e.Name, nsfID, e.StartDate, e.EndDate, e.Host, e.SourceURL, e.Policy,
		e.DownloadedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", e.Filename, err)
	}
	return nil
}

func (i *Index) Get(ctx context.Context, filename string) (*Entry, error) {
	row := i.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM meets WHERE filename = ?`, filename)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", filename, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", filename, err)
	}
	return e, nil
}

// List returns every entry ordered by start date and name.
func (i *Index) List(ctx context.Context) ([]Entry, error) {
	rows, err := i.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM meets ORDER BY start_date, name`)
	if err != nil {
		return nil, fmt.Errorf("querying meets: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning meet: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// MarkParsed stores the outcome of decoding filename. A nil parseErr marks
// the file as decoded successfully.
func (i *Index) MarkParsed(ctx context.Context, filename string, parseErr error) error {
	var msg sql.NullString
	if parseErr != nil {
		msg = sql.NullString{String: parseErr.Error(), Valid: true}
	}
	res, err := i.db.ExecContext(ctx,
		`UPDATE meets SET parsed_at = ?, parse_error = ? WHERE filename = ?`,
		time.Now().UTC(), msg, filename,
	)
	if err != nil {
		return fmt.Errorf("marking %s parsed: %w", filename, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", filename, ErrNotFound)
	}
	return nil
}

// Clear removes every entry.
func (i *Index) Clear(ctx context.Context) error {
	if _, err := i.db.ExecContext(ctx, `DELETE FROM meets`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var (
		e          Entry
		nsfID      sql.NullInt64
		parsedAt   sql.NullTime
		parseError sql.NullString
	)
	if err := s.Scan(
		&e.Filename, &e.Name, &nsfID, &e.StartDate, &e.EndDate, &e.Host, &e.SourceURL, &e.Policy,
		&e.DownloadedAt, &parsedAt, &parseError,
	); err != nil {
		return nil, err
	}
	if nsfID.Valid {
		id := uint32(nsfID.Int64)
		e.NsfID = &id
	}
	if parsedAt.Valid {
		e.ParsedAt = &parsedAt.Time
	}
	if parseError.Valid {
		e.ParseError = &parseError.String
	}
	return &e, nil
}
