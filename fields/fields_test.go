package fields

import (
	"reflect"
	"testing"
)

// --- Insertion order ---

func TestSetAppendsInOrder(t *testing.T) {
	t.Parallel()
	m := NewMap[string]()
	m.Set("id", "'5'")
	m.Set("name", "@name")
	m.Set("created", "@created")

	want := []string{"id", "name", "created"}
	if got := m.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected field order %v, got %v", want, got)
	}
	if m.Len() != 3 {
		t.Errorf("expected len 3, got %d", m.Len())
	}
}

func TestOverwriteKeepsPosition(t *testing.T) {
	t.Parallel()
	m := NewMap[string]()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")
	m.Set("b", "replaced")

	want := []string{"a", "b", "c"}
	if got := m.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected field order %v after overwrite, got %v", want, got)
	}

	v, ok := m.Get("b")
	if !ok {
		t.Fatal("expected b to be present")
	}
	if v != "replaced" {
		t.Errorf("expected overwritten value %q, got %q", "replaced", v)
	}
	if m.Len() != 3 {
		t.Errorf("expected len 3 after overwrite, got %d", m.Len())
	}
}

// --- Lookup ---

func TestGetMissingField(t *testing.T) {
	t.Parallel()
	m := NewMap[int]()
	m.Set("present", 1)

	if _, ok := m.Get("absent"); ok {
		t.Error("expected lookup of absent field to report false")
	}
	if m.Has("absent") {
		t.Error("expected Has to report false for absent field")
	}
	if !m.Has("present") {
		t.Error("expected Has to report true for present field")
	}
}

func TestValuesMatchesFieldOrder(t *testing.T) {
	t.Parallel()
	m := NewMap[int]()
	m.Set("x", 10)
	m.Set("y", 20)
	m.Set("x", 30)

	if got, want := m.Values(), []int{30, 20}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected values %v, got %v", want, got)
	}
}

func TestEntriesExposesPairs(t *testing.T) {
	t.Parallel()
	m := NewMap[string]()
	m.Set("k", "v")

	entries := m.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Field != "k" || entries[0].Value != "v" {
		t.Errorf("expected entry {k v}, got %+v", entries[0])
	}
}

func TestEmptyMap(t *testing.T) {
	t.Parallel()
	m := NewMap[string]()

	if m.Len() != 0 {
		t.Errorf("expected empty map len 0, got %d", m.Len())
	}
	if got := m.Fields(); len(got) != 0 {
		t.Errorf("expected no fields, got %v", got)
	}
}
