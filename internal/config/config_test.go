package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/fractalqb/strptime"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_yaml(t *testing.T) {
	path := writeFile(t, "strptime.yaml", `# test config
formats:
  iso: "%Y-%m-%d"
  us: "%m/%d/%y"
pivot: 50
output: json
fail_limit: 3
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cfg.Names(), []string{"iso", "us"}) {
		t.Errorf("wrong names %v", cfg.Names())
	}
	if cfg.Pivot != 50 || cfg.Output != OutputJSON || cfg.FailLimit != 3 {
		t.Errorf("wrong config %+v", cfg)
	}
	p, err := cfg.Parser("us")
	if err != nil {
		t.Fatal(err)
	}
	dt, err := p.Parse("04/21/55")
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := dt.Date(); d.Year() != 1955 {
		t.Errorf("pivot not applied: %d", d.Year())
	}
}

func TestLoadFile_jsonc(t *testing.T) {
	path := writeFile(t, "strptime.jsonc", `{
	// named formats
	"formats": {
		"clock": "%H:%M", /* no seconds */
	},
	"output": "cbor",
}`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Formats["clock"] != "%H:%M" || cfg.Output != OutputCBOR {
		t.Errorf("wrong config %+v", cfg)
	}
	if cfg.Pivot != strptime.DefaultPivot {
		t.Errorf("default pivot lost: %d", cfg.Pivot)
	}
}

func TestLoadFile_empty(t *testing.T) {
	cfg, err := LoadFile(writeFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != OutputText || len(cfg.Formats) != 0 {
		t.Errorf("not the default config: %+v", cfg)
	}
}

func TestLoadFile_errors(t *testing.T) {
	t.Run("bad format", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, "bad.yaml", "formats:\n  x: \"%Y-%m\"\n"))
		if !errors.Is(err, strptime.ErrIncompleteDate) {
			t.Errorf("unexpected error %v", err)
		}
	})
	t.Run("unknown key", func(t *testing.T) {
		if _, err := LoadFile(writeFile(t, "bad.json", `{"pivto": 3}`)); err == nil {
			t.Error("unknown key accepted")
		}
	})
	t.Run("bad output", func(t *testing.T) {
		if _, err := LoadFile(writeFile(t, "bad.yaml", "output: xml\n")); err == nil {
			t.Error("bad output accepted")
		}
	})
	t.Run("bad pivot", func(t *testing.T) {
		if _, err := LoadFile(writeFile(t, "bad.yaml", "pivot: 101\n")); err == nil {
			t.Error("bad pivot accepted")
		}
	})
	t.Run("extension", func(t *testing.T) {
		if _, err := LoadFile(writeFile(t, "cfg.toml", "")); err == nil {
			t.Error("toml accepted")
		}
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("unexpected error %v", err)
		}
	})
}

func TestConfig_Parser_unknown(t *testing.T) {
	if _, err := Default().Parser("nope"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unexpected error %v", err)
	}
}
