package report

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/Nydauron/moisty/meetsetup"
	"github.com/samber/lo"
)

const dateLayout = time.DateOnly

// GenerateReport fails for handicap classes whose grade has no explanation.
func GenerateReport(meet *meetsetup.Meet, policy meetsetup.FilenamePolicy) (Report, error) {
	events := make([]Event, 0, len(meet.Events))
	for _, e := range meet.Events {
		events = append(events, generateEvent(meet, e))
	}
	slices.SortStableFunc(events, func(a, b Event) int {
		return int(a.Number) - int(b.Number)
	})

	eventsBySession := lo.GroupBy(lo.Filter(meet.Events, func(e meetsetup.Event, _ int) bool {
		return e.SessionID != nil
	}), func(e meetsetup.Event) uint8 {
		return *e.SessionID
	})
	sessions := lo.Map(meet.Sessions, func(s meetsetup.Session, _ int) Session {
		numbers := lo.Map(eventsBySession[s.ID], func(e meetsetup.Event, _ int) uint32 {
			return e.Number
		})
		slices.Sort(numbers)
		return Session{
			Number:    s.ID,
			Name:      s.Name,
			Date:      s.Date.Format(dateLayout),
			StartTime: s.StartTime.String(),
			Events:    numbers,
		}
	})

	var qualifications []Qualification
	if set := meet.QualificationSet; set != nil {
		for i, q := range set.Qualifications {
			out, err := generateQualification(set.Name, meet.Year(), q)
			if err != nil {
				return Report{}, fmt.Errorf("qualification #%d: %w", i+1, err)
			}
			qualifications = append(qualifications, out)
		}
	}

	ageGroups := lo.Map(meet.AgeGroups, func(g meetsetup.AgeGroup, _ int) AgeGroup {
		return AgeGroup{Name: g.Name, Years: lo.Map(g.Years, func(y meetsetup.Year, _ int) int {
			return int(y)
		})}
	})

	return Report{
		Meet:           generateMetadata(meet, policy),
		Sessions:       sessions,
		Events:         events,
		Qualifications: qualifications,
		AgeGroups:      ageGroups,
	}, nil
}

func generateMetadata(meet *meetsetup.Meet, policy meetsetup.FilenamePolicy) MeetMetadata {
	md := MeetMetadata{
		Name:            meet.Name,
		Filename:        meet.Filename(policy),
		Location:        meet.Location,
		Host:            deref(meet.HostClub),
		Dates:           meet.Date,
		StartDate:       formatDate(meet.StartDate),
		EndDate:         formatDate(meet.EndDate),
		Year:            int(meet.Year()),
		CompetitionType: meet.CompetitionTypeID.String(),
		Pool:            meet.PoolLength.String(),
		Lanes:           meet.Lanes,
		LastEntryDate:   meet.LastEntryDate.Format(dateLayout),
		Official:        !meet.Unofficial,
		Cancelled:       meet.Cancelled,
	}
	if meet.NsfMeetID != nil {
		md.NsfID = strconv.FormatUint(uint64(*meet.NsfMeetID), 10)
	}
	if meet.Award != nil {
		md.Award = meet.Award.String()
	}
	if meet.EntryManager != nil {
		md.EntryManager = meet.EntryManager.FullName()
	}
	if meet.ResultWebAddress != nil {
		md.Results = meet.ResultWebAddress.String()
	}
	return md
}

func generateEvent(meet *meetsetup.Meet, e meetsetup.Event) Event {
	ev := Event{
		Number:        e.Number,
		Name:          EventName(e),
		Gender:        e.GenderGroup.String(),
		Classes:       eventClasses(e),
		Date:          e.Date.Format(dateLayout),
		Pool:          e.PoolLength.String(),
		Relay:         e.Distance.IsTeam(),
		Official:      e.Distance.IsOfficial(),
		Sorting:       e.Sorting.String(),
		Award:         meet.ExplicitAward(e).String(),
		QualLongPool:  formatOptionalDuration(e.QualificationLongCourse),
		QualShortPool: formatOptionalDuration(e.QualificationShortCourse),
	}
	if e.SessionID != nil {
		ev.Session = *e.SessionID
	}
	if e.Round != nil {
		ev.Round = e.Round.String()
	}
	return ev
}

// EventName is the description written in the file, or distance and style
// when it is empty, e.g. "4*50m team medley".
func EventName(e meetsetup.Event) string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("%v %v", e.Distance, e.Style)
}

func eventClasses(e meetsetup.Event) []string {
	classes := []string{}
	if e.Senior {
		classes = append(classes, meetsetup.SeniorClass().String())
	}
	if e.Junior {
		classes = append(classes, meetsetup.JuniorClass().String())
	}
	return classes
}

func generateQualification(set string, meetYear meetsetup.Year, q meetsetup.Qualification) (Qualification, error) {
	out := Qualification{
		Set:    set,
		Class:  q.Class.String(),
		Gender: q.GenderGroup.String(),
		Event:  fmt.Sprintf("%v %v", q.Distance, q.Style),
		Pool:   q.PoolLength.String(),
		Time:   FormatDuration(q.Time),
	}
	if junior, err := q.Class.JuniorGroup(meetYear); err == nil {
		out.Junior = junior.String()
	}
	if h, ok := q.Class.Handicap(); ok {
		explain, err := h.Explain()
		if err != nil {
			return Qualification{}, err
		}
		out.Explain = explain
	}
	return out, nil
}

// FormatDuration writes d as "m:ss.hh".
func FormatDuration(d time.Duration) string {
	hundredths := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", hundredths/6000, hundredths/100%60, hundredths%100)
}

func formatOptionalDuration(d *time.Duration) string {
	if d == nil {
		return ""
	}
	return FormatDuration(*d)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
