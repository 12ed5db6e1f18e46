package meetsetup

import (
	"fmt"
	"strings"
)

// FilenamePolicy names the local copy of a meet. Two policies have been used
// for cache directories over time.
type FilenamePolicy uint8

const (
	// FilenameByName lowercases the meet name and replaces spaces with
	// underscores. Meets reusing a name across years collide.
	FilenameByName FilenamePolicy = iota + 1
	// FilenameByID uses the federation id padded to 11 digits and falls back
	// to FilenameByName for meets without an id.
	FilenameByID
)

// DefaultFilenamePolicy is used for every new cache entry.
const DefaultFilenamePolicy = FilenameByID

const idFilenameDigits = 11

func (p FilenamePolicy) Filename(name string, id uint32) string {
	if p == FilenameByID && id != 0 {
		return fmt.Sprintf("%0*d.xml", idFilenameDigits, id)
	}
	return normalizeName(name) + ".xml"
}

func (p FilenamePolicy) String() string {
	switch p {
	case FilenameByName:
		return "v1"
	case FilenameByID:
		return "v2"
	default:
		return "unknown"
	}
}

func (m *Meet) Filename(p FilenamePolicy) string {
	var id uint32
	if m.NsfMeetID != nil {
		id = *m.NsfMeetID
	}
	return p.Filename(m.Name, id)
}

func (i MeetInfo) Filename(p FilenamePolicy) string {
	return p.Filename(i.Name, i.ID)
}

func normalizeName(name string) string {
	return strings.ToLower(nameReplacer.Replace(strings.TrimSpace(name)))
}

var nameReplacer = strings.NewReplacer(" ", "_", "/", "_", `\`, "_")
