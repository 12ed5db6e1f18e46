package meetsetup

import (
	"time"

	"github.com/Nydauron/moisty/parsers"
)

var sessionSchema = newSchema("Session", false,
	f("SessionId"),
	f("SessionName"),
	f("SessionDate"),
	f("SessionStartTime"),
)

// Session is a run of events held without a break.
type Session struct {
	ID        uint8
	Name      string
	Date      time.Time
	StartTime TimeOfDay
}

func DecodeSession(el *parsers.Element) (Session, error) {
	d := newRecordDecoder(sessionSchema, el)
	s := Session{
		ID:        required(d, "SessionId", parseUint[uint8](8)),
		Name:      withDefault(d, "SessionName", parseString, ""),
		Date:      required(d, "SessionDate", ParseDate),
		StartTime: required(d, "SessionStartTime", ParseTime),
	}
	if err := d.finish(); err != nil {
		return Session{}, err
	}
	return s, nil
}

func decodeSessions(el *parsers.Element) ([]Session, error) {
	return decodeList(el, "Session", DecodeSession)
}
