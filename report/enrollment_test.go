package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Nydauron/moisty/unip"
	"gopkg.in/yaml.v3"
)

const entryFile = `Bergen Svommeklubb
1,100,FR,Hansen,Kari,K,JR,2009,01:05.32,L
2,4*50,LM,Bergen SK 1,,X,SR,,02:01.00,K
3,200,IM,Nilsen,Per,M,SR,1995,,L
`

func TestGenerateEnrollment(t *testing.T) {
	e, err := unip.Read(strings.NewReader(entryFile))
	if err != nil {
		t.Fatal(err)
	}
	r := GenerateEnrollment(e)
	if r.Club != "Bergen Svommeklubb" || len(r.Entries) != 3 {
		t.Fatalf("enrollment = %+v", r)
	}

	tests := []struct {
		name  string
		entry Entry
		swim  string
		relay bool
		time  string
		pool  string
	}{
		{"individual", r.Entries[0], "100m freestyle", false, "1:05.32", "50m"},
		{"relay", r.Entries[1], "4*50m team medley", true, "2:01.00", "25m"},
		{"no entry time", r.Entries[2], "200m individual medley", false, "", "50m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.entry.Swim != tt.swim || tt.entry.Relay != tt.relay {
				t.Errorf("swim = %q relay = %v, want %q %v", tt.entry.Swim, tt.entry.Relay, tt.swim, tt.relay)
			}
			if tt.entry.EntryTime != tt.time || tt.entry.Pool != tt.pool {
				t.Errorf("time = %q pool = %q, want %q %q", tt.entry.EntryTime, tt.entry.Pool, tt.time, tt.pool)
			}
		})
	}
	if got := strings.Join(r.Entries[0].Other, "|"); got != "K|JR|2009" {
		t.Errorf("other = %q", got)
	}
}

func TestEncodeEnrollment(t *testing.T) {
	e, err := unip.Read(strings.NewReader(entryFile))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeEnrollment(&buf, GenerateEnrollment(e)); err != nil {
		t.Fatalf("encoding: %v", err)
	}

	var doc struct {
		Club    string           `yaml:"club"`
		Entries []map[string]any `yaml:"entries"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Club != "Bergen Svommeklubb" || len(doc.Entries) != 3 {
		t.Fatalf("doc = %+v", doc)
	}
	if _, ok := doc.Entries[2]["entry time"]; ok {
		t.Errorf("entry without time encodes one: %v", doc.Entries[2])
	}
}
