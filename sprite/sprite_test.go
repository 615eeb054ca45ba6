package sprite

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedPackLoads(t *testing.T) {
	keys := Keys()
	if len(keys) == 0 {
		t.Fatal("Expected embedded pack to register frame keys, got none")
	}

	// Every animated kind must have its frames present.
	required := []string{
		"butterfly_1", "butterfly_2",
		"bird_fly_1", "bird_fly_2", "bird_hop", "bird_peck", "bird_chirp",
		"visitor_swim_1", "visitor_swim_2", "visitor_quack", "visitor_happy", "visitor_gift",
		"shiny_appear", "shiny_shine_1", "shiny_shine_2", "shiny_shine_3", "shiny_pickup",
		"crumbs_1", "crumbs_2", "crumbs_eat_1", "crumbs_eat_2",
		"noise_bang", "noise_shake_1", "noise_shake_2",
		"dream_1", "dream_2", "dream_bad_1", "dream_bad_2",
		"duck_idle_right_1", "duck_idle_left_1", "duck_walk_right_2", "duck_walk_left_2",
	}
	for _, key := range required {
		if !Has(key) {
			t.Errorf("Expected embedded pack to contain %q", key)
		}
	}
}

func TestGetUnknownKey(t *testing.T) {
	if rows := Get("no_such_sprite"); rows != nil {
		t.Errorf("Expected nil for unknown key, got %v", rows)
	}
	if Has("no_such_sprite") {
		t.Error("Expected Has to report false for unknown key")
	}
}

func TestFramesAreNonEmpty(t *testing.T) {
	for _, key := range Keys() {
		rows := Get(key)
		if len(rows) == 0 {
			t.Errorf("Expected frame %q to have at least one row", key)
		}
		for i, row := range rows {
			if len(row) > 12 {
				t.Errorf("Frame %q row %d is %d cells wide; art should stay narrow", key, i, len(row))
			}
		}
	}
}

func TestLoadPackOverlaysAndReset(t *testing.T) {
	defer Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "pack.yaml")
	data := []byte("sprites:\n  butterfly_1:\n    - 'W'\n  custom_glyph:\n    - '@'\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	if err := LoadPack(path); err != nil {
		t.Fatalf("Expected pack to load, got error: %v", err)
	}

	if rows := Get("butterfly_1"); len(rows) != 1 || rows[0] != "W" {
		t.Errorf("Expected overlay to replace butterfly_1, got %v", rows)
	}
	if !Has("custom_glyph") {
		t.Error("Expected overlay to add custom_glyph")
	}
	if !Has("bird_hop") {
		t.Error("Expected untouched embedded keys to survive overlay")
	}

	Reset()
	if rows := Get("butterfly_1"); len(rows) != 1 || rows[0] != `\o/` {
		t.Errorf("Expected Reset to restore embedded butterfly_1, got %v", rows)
	}
	if Has("custom_glyph") {
		t.Error("Expected Reset to drop overlaid keys")
	}
}

func TestLoadPackErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Malformed YAML", "sprites: [this is: not a map"},
		{"Empty pack", "sprites: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("write pack: %v", err)
			}
			if err := LoadPack(path); err == nil {
				t.Error("Expected error for invalid pack, got nil")
			}
		})
	}

	if err := LoadPack(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
