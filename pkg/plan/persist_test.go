package plan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	root := buildTree(t, 1024, 768, 256, 5)
	p := &Plan{Width: 1024, Height: 768, Root: root}

	path := filepath.Join(t.TempDir(), "plan.json")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Error("loaded plan differs from saved plan")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing plan file")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"missing tree", `{"width": 64, "height": 64}`},
		{"zero dimensions", `{"width": 0, "height": 64, "plans": {"leaf": {"x1":0,"y1":0,"x2":63,"y2":63,"tileId":"t"}}}`},
		{"empty node", `{"width": 64, "height": 64, "plans": {}}`},
		{"bad axis", `{"width": 64, "height": 64, "plans": {"split": {"axis": "z", "position": 32, "children": [{"leaf":{}},{"leaf":{}}]}}}`},
		{"missing child", `{"width": 64, "height": 64, "plans": {"split": {"axis": "x", "position": 32, "children": [{"leaf":{}}, null]}}}`},
	}

	dir := t.TempDir()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".json")
			if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			if _, err := Load(path); !errors.Is(err, ErrCorruptPlan) {
				t.Errorf("expected ErrCorruptPlan, got %v", err)
			}
		})
	}
}

func TestSaveLoad_LeafOrderPreserved(t *testing.T) {
	root := buildTree(t, 2048, 2048, 256, 23)
	p := &Plan{Width: 2048, Height: 2048, Root: root}

	path := filepath.Join(t.TempDir(), "plan.json")
	if err := Save(path, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Leaves(p.Root)
	have := Leaves(got.Root)
	if len(want) != len(have) {
		t.Fatalf("leaf count %d, want %d", len(have), len(want))
	}
	for i := range want {
		if want[i].TileID != have[i].TileID {
			t.Errorf("leaf %d = %q, want %q", i, have[i].TileID, want[i].TileID)
		}
	}
}
