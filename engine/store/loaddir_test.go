package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDirOneRelationPerFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "student.tab", "id name\nalice Alice\nbob Bob\n")
	writeFile(t, dir, "lecture.tab", "id title\nproglang1 ProgrammingLanguages\n")

	s, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %s", err)
	}

	student, err := s.Relation("student")
	if err != nil {
		t.Fatalf("relation student: %s", err)
	}
	if len(student.Rows()) != 2 {
		t.Fatalf("expected 2 student rows, got %d", len(student.Rows()))
	}

	lecture, err := s.Relation("lecture")
	if err != nil {
		t.Fatalf("relation lecture: %s", err)
	}
	if len(lecture.Rows()) != 1 {
		t.Fatalf("expected 1 lecture row, got %d", len(lecture.Rows()))
	}
}

func TestLoadDirStripsFileExtensionForRelationName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "teacher.txt", "id name\nalice Alice\n")

	s, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %s", err)
	}
	if _, err := s.Relation("teacher"); err != nil {
		t.Fatalf("expected relation named teacher (extension stripped): %s", err)
	}
}

func TestLoadDirMissingDirectoryIsError(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %s", name, err)
	}
}
