package internal

import (
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestConfig_MissingNotesPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Notes.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty notes path should fail validation")
	}
}

func TestConfig_MissingOutputPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty output path should fail validation")
	}
}

func TestConfig_SamePathsRejected(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.Path = cfg.Notes.Path
	err := cfg.Validate()
	if err == nil {
		t.Fatal("identical notes and output paths should fail")
	}
	if !strings.Contains(err.Error(), "must differ") {
		t.Errorf("unexpected error: %v", err)
	}
}
