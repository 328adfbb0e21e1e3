package main

import "testing"

func TestParseConfigMinimal(t *testing.T) {
	cfg, err := parseConfig([]string{"-data", "./testdata", "-query", `student(S,SD)`, "-want", "S,SD"})
	if err != nil {
		t.Fatalf("parseConfig: %s", err)
	}
	if cfg.DataDir != "./testdata" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Query != `student(S,SD)` {
		t.Errorf("Query = %q", cfg.Query)
	}
	if len(cfg.Wants) != 2 || cfg.Wants[0] != "S" || cfg.Wants[1] != "SD" {
		t.Errorf("Wants = %v", cfg.Wants)
	}
	if cfg.Engine != "ramsql" {
		t.Errorf("Engine default = %q, want ramsql", cfg.Engine)
	}
}

func TestParseConfigRepeatedBind(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-data", "./testdata",
		"-query", "student(S,*)",
		"-bind", "L=proglang1",
		"-bind", "Y=2016",
	})
	if err != nil {
		t.Fatalf("parseConfig: %s", err)
	}
	if cfg.Bound["L"] != "proglang1" || cfg.Bound["Y"] != "2016" {
		t.Errorf("Bound = %v", cfg.Bound)
	}
}

func TestParseConfigMissingDataDirIsError(t *testing.T) {
	if _, err := parseConfig([]string{"-query", "student(S,SD)"}); err == nil {
		t.Fatal("expected error for missing -data")
	}
}

func TestParseConfigMissingQueryIsError(t *testing.T) {
	if _, err := parseConfig([]string{"-data", "./testdata"}); err == nil {
		t.Fatal("expected error when neither -query nor -query-file is set")
	}
}

func TestParseConfigRejectsUnknownEngine(t *testing.T) {
	_, err := parseConfig([]string{"-data", "./testdata", "-query", "student(S,SD)", "-engine", "postgres"})
	if err == nil {
		t.Fatal("expected error for unknown -engine")
	}
}

func TestParseConfigBindMissingEqualsIsError(t *testing.T) {
	_, err := parseConfig([]string{"-data", "./testdata", "-query", "student(S,SD)", "-bind", "Lproglang1"})
	if err == nil {
		t.Fatal("expected error for malformed -bind value")
	}
}
