package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jerryeechan/poachers/internal/domain"
)

func sampleJournal() *domain.Journal {
	j := &domain.Journal{Seed: -77, Timestamp: 1700000000}
	j.Record(domain.InternalCommand{Action: domain.ActionClickTile, Payload: json.RawMessage(`{"x":3,"y":2}`)})
	j.Record(domain.InternalCommand{Action: domain.ActionRest})
	j.Record(domain.InternalCommand{Action: domain.ActionCraft, Payload: json.RawMessage(`{"recipe":"axe"}`)})
	return j
}

func TestJournal_BinaryRoundTrip(t *testing.T) {
	j := sampleJournal()

	var buf bytes.Buffer
	if err := writeBinary(&buf, j); err != nil {
		t.Fatal(err)
	}
	got, err := readBinary(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if got.Seed != j.Seed || got.Timestamp != j.Timestamp {
		t.Errorf("header mismatch: %+v", got)
	}
	if len(got.Entries) != len(j.Entries) {
		t.Fatalf("entries = %d, want %d", len(got.Entries), len(j.Entries))
	}
	for i, e := range got.Entries {
		want := j.Entries[i]
		if e.Step != want.Step || e.Action != want.Action || !bytes.Equal(e.Payload, want.Payload) {
			t.Errorf("entry %d: got %+v, want %+v", i, e, want)
		}
	}
}

func TestJournal_RejectsForeignFile(t *testing.T) {
	_, err := readBinary(bytes.NewReader([]byte("CDRP\x01\x00\x00\x00 and some junk to fill the header")))
	if !errors.Is(err, ErrBadMagic) {
		t.Errorf("expected ErrBadMagic, got %v", err)
	}

	if _, err := readBinary(bytes.NewReader([]byte("RS"))); err == nil {
		t.Error("truncated header must fail")
	}
}

func TestJournalService_SaveLoad(t *testing.T) {
	svc, err := NewJournalService(filepath.Join(t.TempDir(), "journals"))
	if err != nil {
		t.Fatal(err)
	}
	path, err := svc.Save(sampleJournal())
	if err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entries) != 3 || got.Entries[2].Action != domain.ActionCraft {
		t.Errorf("unexpected journal: %+v", got.Entries)
	}
}
