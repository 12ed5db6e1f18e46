package meetsetup

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Nydauron/moisty/parsers"
)

// MeetListElement is the element wrapping one meet in the medley meet list.
const MeetListElement = "strc_stevneoppsett"

var meetInfoSchema = newSchema("MeetInfo", false,
	f("stevnenavn"),
	f("fradato"),
	f("tildato"),
	f("arrangor"),
	f("nsfstevneid"),
	f("xmllink"),
)

// MeetInfo is one entry of the medley meet list, pointing at the
// meetsetup.xml of an upcoming meet.
type MeetInfo struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	// Host is usually the organizing swimming club.
	Host string
	// ID is the federation meet id, zero for meets without one.
	ID        uint32
	MeetSetup *url.URL
}

func DecodeMeetInfo(el *parsers.Element) (MeetInfo, error) {
	d := newRecordDecoder(meetInfoSchema, el)
	info := MeetInfo{
		Name:      required(d, "stevnenavn", parseString),
		StartDate: required(d, "fradato", ParseDate),
		EndDate:   required(d, "tildato", ParseDate),
		Host:      withDefault(d, "arrangor", parseString, ""),
		ID:        withDefault(d, "nsfstevneid", parseUint[uint32](32), 0),
		MeetSetup: required(d, "xmllink", parseAbsoluteURL),
	}
	if err := d.finish(); err != nil {
		return MeetInfo{}, err
	}
	return info, nil
}

// DecodeMeetList decodes every meet below the list root.
func DecodeMeetList(root *parsers.Element) ([]MeetInfo, error) {
	return decodeList(root, MeetListElement, DecodeMeetInfo)
}

func parseAbsoluteURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q is not an absolute url", ErrInvalidValue, s)
	}
	return u, nil
}
