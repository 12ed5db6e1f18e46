package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Nydauron/moisty/cache"
	"github.com/Nydauron/moisty/meetsetup"
	"github.com/Nydauron/moisty/report"
	"github.com/Nydauron/moisty/writers"
)

func loadFixture(t *testing.T) *meetsetup.Meet {
	t.Helper()
	meet, err := meetsetup.ReadMeetFile(filepath.Join("meetsetup", "testdata", "meetsetup.xml"), meetsetup.Options{ReferenceYear: 2023})
	if err != nil {
		t.Fatal(err)
	}
	return meet
}

func TestPrintMeetLine(t *testing.T) {
	meet := loadFixture(t)
	var buf bytes.Buffer
	printMeetLine(&buf, meet)
	if got, want := buf.String(), "[0000012345] [2023-05-12 2023-05-14] Bergen Sprint Cup\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	meet.NsfMeetID = nil
	meet.StartDate = nil
	buf.Reset()
	printMeetLine(&buf, meet)
	if !strings.HasPrefix(buf.String(), "[0000000000] "+meet.Date+", ") {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrintEventTable(t *testing.T) {
	rep, err := report.GenerateReport(loadFixture(t), meetsetup.DefaultFilenamePolicy)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := printEventTable(&buf, rep); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasPrefix(lines[1], "Event") || !strings.HasPrefix(lines[2], "1 ") {
		t.Errorf("table = %s", buf.String())
	}
}

func TestWriteParsedReport(t *testing.T) {
	dirs := cache.Dirs{Root: t.TempDir()}
	if err := dirs.Ensure(); err != nil {
		t.Fatal(err)
	}
	rep, err := report.GenerateReport(loadFixture(t), meetsetup.DefaultFilenamePolicy)
	if err != nil {
		t.Fatal(err)
	}
	if err := writeParsedReport(dirs, dirs.Download("00000012345.xml"), rep); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dirs.Parsed(), "00000012345.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if meet, ok := doc["Meet"].(map[string]any); !ok || meet["name"] != "Bergen Sprint Cup" {
		t.Errorf("meet = %v", doc["Meet"])
	}
}

func TestWriteEnrollment(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "uni_p.txt")
	entries := "Bergen Svommeklubb\n1,100,FR,Hansen,Kari,K,JR,2009,01:05.32,L\n"
	if err := os.WriteFile(in, []byte(entries), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "entries.yaml")
	if err := writeEnrollment(in, writers.Output(out, nil)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "club: Bergen Svommeklubb") || !strings.Contains(string(data), "swim: 100m freestyle") {
		t.Errorf("output = %s", data)
	}

	missing := filepath.Join(dir, "missing.yaml")
	err = writeEnrollment(filepath.Join(dir, "nope.txt"), writers.Output(missing, nil))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
	if _, err := os.Stat(missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output created for a missing entry file: %v", err)
	}
}
