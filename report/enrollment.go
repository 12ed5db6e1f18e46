package report

import (
	"fmt"
	"io"

	"github.com/Nydauron/moisty/unip"
	"gopkg.in/yaml.v3"
)

// Enrollment is the presentation model of one club entry file.
type Enrollment struct {
	Club    string  `yaml:"club" json:"club"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

type Entry struct {
	Line      int      `yaml:"line" json:"line"`
	Event     uint8    `yaml:"event" json:"event"`
	Name      string   `yaml:"name" json:"name"`
	Swim      string   `yaml:"swim" json:"swim"`
	Relay     bool     `yaml:"relay" json:"relay"`
	EntryTime string   `yaml:"entry time,omitempty" json:"entry_time,omitempty"`
	Pool      string   `yaml:"pool" json:"pool"`
	Other     []string `yaml:"other,flow,omitempty" json:"other,omitempty"`
}

func GenerateEnrollment(e *unip.Enrollment) Enrollment {
	out := Enrollment{Club: e.Club, Entries: make([]Entry, 0, len(e.Entries))}
	for _, entry := range e.Entries {
		en := Entry{
			Line:  entry.Line,
			Event: entry.EventNumber,
			Name:  entry.Name,
			Swim:  fmt.Sprintf("%v %v", entry.Distance, entry.Style),
			Relay: entry.Distance.IsTeam(),
			Pool:  entry.PoolLength.String(),
			Other: entry.Unresolved,
		}
		if entry.EntryTime > 0 {
			en.EntryTime = FormatDuration(entry.EntryTime)
		}
		out.Entries = append(out.Entries, en)
	}
	return out
}

func EncodeEnrollment(w io.Writer, e Enrollment) error {
	yamlEncoder := yaml.NewEncoder(w)
	yamlEncoder.SetIndent(2)
	if err := yamlEncoder.Encode(&e); err != nil {
		return fmt.Errorf("encoding entries of %s to YAML: %w", e.Club, err)
	}
	if err := yamlEncoder.Close(); err != nil {
		return fmt.Errorf("encoding to YAML failed on close: %w", err)
	}
	return nil
}
