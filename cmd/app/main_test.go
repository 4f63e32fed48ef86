package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/tfphases/internal/apperr"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	var out bytes.Buffer
	cmd := newCommand(&out)
	err := cmd.Run(context.Background(), append([]string{"startup-terraform-phases"}, args...))
	return out.String(), err
}

func TestCLI_NoSubcommandShowsUsage(t *testing.T) {
	out, err := runCLI(t)
	if !errors.Is(err, apperr.ErrUsage) {
		t.Fatalf("err = %v, want ErrUsage", err)
	}
	if apperr.ExitCode(err) == 0 {
		t.Error("usage must exit non-zero")
	}
	if !strings.Contains(out, "generate") {
		t.Errorf("usage output missing generate command:\n%s", out)
	}
}

func TestCLI_UnknownSubcommandShowsUsage(t *testing.T) {
	_, err := runCLI(t, "deploy")
	if !errors.Is(err, apperr.ErrUsage) {
		t.Fatalf("err = %v, want ErrUsage", err)
	}
}

func TestCLI_Generate(t *testing.T) {
	templates := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	tf := filepath.Join(templates, "series-b", "main.tf")
	if err := os.MkdirAll(filepath.Dir(tf), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tf, []byte("region = \"{{REGION}}\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, err := runCLI(t, "generate",
		"--phase", "series-b", "--cloud", "AWS", "--region", "ap-south-1",
		"--out", out, "--templates", templates)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(stdout, "OK: generated phase='series-b' to ") {
		t.Errorf("stdout = %q", stdout)
	}
	for _, rel := range []string{"bundle/main.tf", "EVIDENCE/plan.json", "EVIDENCE/policy_report.json", "MANIFEST.json"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s missing: %v", rel, err)
		}
	}
}

func TestCLI_GenerateRejectsCloud(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	_, err := runCLI(t, "generate", "--phase", "seed", "--cloud", "gcp", "--region", "us-east-1", "--out", out, "--templates", t.TempDir())
	if apperr.ExitCode(err) != apperr.ExitValidation {
		t.Fatalf("exit code = %d (err %v), want %d", apperr.ExitCode(err), err, apperr.ExitValidation)
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("output root should not be created")
	}
}
