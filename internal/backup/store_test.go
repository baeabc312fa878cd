package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func sampleDirectory(name string, sources ...string) Directory {
	d := NewDirectory()
	d.Name = name
	d.Sources = sources
	return d
}

func TestStoreListReturnsClones(t *testing.T) {
	d := sampleDirectory("Photos", "/a")
	s := NewStoreWith(d)

	snapshot := s.List()
	snapshot[0].Name = "Tampered"
	snapshot[0].Sources[0] = "/tampered"

	got, err := s.Get(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Photos" || got.Sources[0] != "/a" {
		t.Fatalf("store entry was aliased by a snapshot: %#v", got)
	}
}

func TestStoreGetCloneIsolation(t *testing.T) {
	s := NewStoreWith(sampleDirectory("Photos", "/a"))
	draft, err := s.Get(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	draft.Sources = append(draft.Sources, "/b")
	draft.Name = "Edited"

	again, _ := s.Get(0)
	if again.Name != "Photos" || len(again.Sources) != 1 {
		t.Fatalf("editing a draft leaked into the store: %#v", again)
	}
}

func TestStoreIndexOf(t *testing.T) {
	a := sampleDirectory("A")
	b := sampleDirectory("B")
	s := NewStoreWith(a, b)
	if got := s.IndexOf(b.ID); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := s.IndexOf(uuid.New()); got != -1 {
		t.Fatalf("expected -1 for unknown id, got %d", got)
	}
}

func TestStoreReplaceAppendDelete(t *testing.T) {
	s := NewStoreWith(sampleDirectory("A"), sampleDirectory("B"))

	updated := sampleDirectory("B2", "/b2")
	if err := s.Replace(1, updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := s.Get(1)
	if got.Name != "B2" {
		t.Fatalf("expected replaced entry, got %#v", got)
	}

	idx := s.Append(sampleDirectory("C"))
	if idx != 2 || s.Len() != 3 {
		t.Fatalf("expected append at index 2, got %d (len %d)", idx, s.Len())
	}

	if err := s.Delete(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries after delete, got %d", s.Len())
	}
	first, _ := s.Get(0)
	if first.Name != "B2" {
		t.Fatalf("expected later entries to shift down, got %#v", first)
	}

	if err := s.Replace(9, updated); err == nil {
		t.Fatalf("expected out-of-range replace to fail")
	}
	if err := s.Delete(-1); err == nil {
		t.Fatalf("expected out-of-range delete to fail")
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	d := sampleDirectory("Photos", "/home/me/photos")
	d.Excludes = []string{"*.tmp"}
	s := NewStoreWith(d, sampleDirectory("Docs"))

	if err := s.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", loaded.Len())
	}
	got, _ := loaded.Get(0)
	if !got.Equal(d) {
		t.Fatalf("round trip changed the entry:\nwant %#v\ngot  %#v", d, got)
	}
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
