package content

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/evanschultz/folio/internal/domain"
)

func TestDefaultContent(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if p.Owner.Name == "" || p.Owner.Initials != "AR" {
		t.Fatalf("unexpected owner %#v", p.Owner)
	}
	if len(p.Projects) != 6 {
		t.Fatalf("expected 6 projects, got %d", len(p.Projects))
	}
	categories := map[string]struct{}{}
	for _, project := range p.Projects {
		categories[project.Category] = struct{}{}
		if project.ID == "" {
			t.Fatalf("expected stable id for %q", project.Title)
		}
	}
	if len(categories) != 6 {
		t.Fatalf("expected 6 distinct categories, got %d", len(categories))
	}
	if len(p.Skills) != 5 || len(p.Hackathons) != 2 {
		t.Fatalf("unexpected skills/hackathons %d/%d", len(p.Skills), len(p.Hackathons))
	}
	if p.Resume.URL == "" {
		t.Fatal("expected resume link")
	}
}

func TestStableIDDeterministic(t *testing.T) {
	a := StableID("project", "Lane Watch")
	b := StableID("project", "  lane watch ")
	if a != b {
		t.Fatalf("expected normalized ids to match, got %q and %q", a, b)
	}
	if a == StableID("skills", "Lane Watch") {
		t.Fatal("expected kind to change the id")
	}
	first, _ := Default()
	second, _ := Default()
	if first.Projects[0].ID != second.Projects[0].ID {
		t.Fatal("expected ids stable across loads")
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	p, err := Load("  ")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(p.Projects) != 6 {
		t.Fatalf("expected default projects, got %d", len(p.Projects))
	}
}

func TestEncodeRoundTripPerFormat(t *testing.T) {
	original, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		var buf bytes.Buffer
		if err := Encode(&buf, original, format); err != nil {
			t.Fatalf("Encode(%s) error = %v", format, err)
		}
		path := filepath.Join(t.TempDir(), "content."+string(format))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", format, err)
		}
		if len(loaded.Projects) != len(original.Projects) {
			t.Fatalf("%s: project count %d != %d", format, len(loaded.Projects), len(original.Projects))
		}
		if loaded.Projects[0].ID != original.Projects[0].ID {
			t.Fatalf("%s: expected ids preserved", format)
		}
		if loaded.Skills[0].Skills[0].Level != original.Skills[0].Skills[0].Level {
			t.Fatalf("%s: expected skill levels preserved", format)
		}
	}
}

func TestLoadYAMLWithExplicitIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	raw := `owner:
  name: Sam Lee
projects:
  - id: one
    title: First
    category: Web
  - title: Second
    category: ML
skills:
  - name: Tools
    items:
      - name: Git
        level: 70
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Projects[0].ID != "one" {
		t.Fatalf("expected explicit id kept, got %q", p.Projects[0].ID)
	}
	if p.Projects[1].ID != StableID("project", "Second") {
		t.Fatalf("expected derived id, got %q", p.Projects[1].ID)
	}
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[owner]\nname = \"A\"\n[[skills]]\nname = \"X\"\n[[skills.items]]\nname = \"Go\"\nlevel = 150\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(bad); !errors.Is(err, domain.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}

	dup := filepath.Join(dir, "dup.json")
	if err := os.WriteFile(dup, []byte(`{"owner":{"name":"A"},"projects":[{"id":"x","title":"A","category":"c"},{"id":"x","title":"B","category":"c"}]}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(dup); !errors.Is(err, domain.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	if _, err := Load(filepath.Join(dir, "content.ini")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("YML"); err != nil || f != FormatYAML {
		t.Fatalf("expected yaml, got %q %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
