package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// keepLogger restores the standard logger once the test ends
func keepLogger(t *testing.T) {
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

var rotationTime = time.Date(2026, 10, 19, 14, 5, 9, 0, time.UTC)

func TestLoggingDisabledDiscards(t *testing.T) {
	keepLogger(t)
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", log.Writer())
	}
}

func TestRotatedName(t *testing.T) {
	if got := rotatedName(rotationTime); got != "vi-defense-20261019-140509.log" {
		t.Errorf("Expected vi-defense-20261019-140509.log, got %s", got)
	}
}

func TestOpenLogRotatesOversizedFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}

	f, err := openLog(dir, rotationTime)
	if err != nil {
		t.Fatalf("openLog failed: %v", err)
	}
	defer f.Close()

	info, err := os.Stat(filepath.Join(dir, "vi-defense-20261019-140509.log"))
	if err != nil {
		t.Fatalf("Expected rotated file: %v", err)
	}
	if info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated file to keep %d bytes, got %d", maxLogSize+1, info.Size())
	}
	if info, _ := os.Stat(logPath); info == nil || info.Size() != 0 {
		t.Error("Expected a fresh empty log in place")
	}
}

func TestOpenLogAppendsToSmallFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, []byte("earlier run\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}

	f, err := openLog(dir, rotationTime)
	if err != nil {
		t.Fatalf("openLog failed: %v", err)
	}
	if _, err := f.WriteString("this run\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	f.Close()

	data, _ := os.ReadFile(logPath)
	if string(data) != "earlier run\nthis run\n" {
		t.Errorf("Expected appended log, got %q", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected no rotation below the size limit, got %d files", len(entries))
	}
}

func TestOpenLogCapturesLevelLoad(t *testing.T) {
	keepLogger(t)
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	f, err := openLog(dir, rotationTime)
	if err != nil {
		t.Fatalf("openLog failed: %v", err)
	}
	defer f.Close()
	log.SetOutput(f)

	if _, err := newWorld("", 0); err != nil {
		t.Fatalf("newWorld failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, logFileName))
	if !strings.Contains(string(data), `[MAIN] level "Switchback"`) {
		t.Errorf("Expected level load in log, got %q", data)
	}
}

func TestOpenLogFailsOnFileInPlaceOfDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "logs")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("Failed to create blocker: %v", err)
	}
	if f, err := openLog(blocker, rotationTime); err == nil {
		f.Close()
		t.Error("Expected error when the log directory is a file")
	}
}
