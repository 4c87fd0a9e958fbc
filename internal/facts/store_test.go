package facts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssertReplacesValue(t *testing.T) {
	store := NewStore()
	store.Assert("normalidad", "si")
	store.Assert("normalidad", "no")
	value, ok := store.Get("normalidad")
	if !ok || value != "no" {
		t.Fatalf("expected replaced value, got %q (%v)", value, ok)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one fact, got %d", store.Len())
	}
}

func TestRetractMissingIsNoop(t *testing.T) {
	store := NewStore()
	store.Assert("objetivo", "comparar")
	store.Retract("normalidad")
	if !store.Has("objetivo") || store.Len() != 1 {
		t.Fatalf("expected existing fact to survive")
	}
	store.Retract("objetivo")
	if store.Has("objetivo") {
		t.Fatalf("expected fact to be retracted")
	}
}

func TestRetractAll(t *testing.T) {
	store := NewStore()
	store.Assert("objetivo", "comparar")
	store.Assert("tipo_variable", "cuantitativa")
	store.RetractAll()
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
	store.Assert("objetivo", "predecir")
	if !store.Has("objetivo") {
		t.Fatalf("expected store to accept facts after RetractAll")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	store := NewStore()
	store.Assert("objetivo", "comparar")
	snapshot := store.Snapshot()
	snapshot["objetivo"] = "predecir"
	snapshot["extra"] = "x"
	if diff := cmp.Diff(map[string]string{"objetivo": "comparar"}, store.Snapshot()); diff != "" {
		t.Fatalf("snapshot mutated store (-want +got):\n%s", diff)
	}
}
