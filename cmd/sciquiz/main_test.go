package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "sciquiz/internal/platform/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigShowRendersEffectiveConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "seed: 42\n")

	out, err := execute(t, "", "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "seed: 42") || !strings.Contains(out, "time_limits:") {
		t.Fatalf("unexpected config output:\n%s", out)
	}
}

func TestAskRevealPrintsAnswer(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "seed: 7\n")

	out, err := execute(t, "", "--config", path, "ask", "--subject", "physics", "--difficulty", "hard", "--reveal")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	for _, want := range []string{"[Physics", "A) ", "D) ", "Answer: "} {
		if !strings.Contains(out, want) {
			t.Fatalf("ask output missing %q:\n%s", want, out)
		}
	}
}

func TestAskRejectsUnknownSubject(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "seed: 7\n")

	if _, err := execute(t, "", "--config", path, "ask", "--subject", "biology"); err == nil {
		t.Fatal("expected unsupported subject error")
	}
}

func TestPlainPlayIsRecordedInHistory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeConfig(t, "seed: 3\nhistory:\n  enabled: true\n  db_path: "+filepath.Join(dir, "history.db")+"\n")

	out, err := execute(t, "a\na\na\n", "--config", path, "play", "--subject", "maths", "--difficulty", "easy", "--count", "3", "--ui", "plain")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "FINISHED") || !strings.Contains(out, "/3") {
		t.Fatalf("play output missing results:\n%s", out)
	}

	out, err = execute(t, "", "--config", path, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "Maths") || !strings.Contains(out, "/3") {
		t.Fatalf("history output missing the session:\n%s", out)
	}
}

func TestHistoryDisabledByDefault(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "seed: 1\n")

	_, err := execute(t, "", "--config", path, "history")
	if !errors.Is(err, apperrors.ErrHistoryDisabled) {
		t.Fatalf("expected ErrHistoryDisabled, got %v", err)
	}
}
