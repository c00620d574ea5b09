// SPDX-License-Identifier: MPL-2.0

package pygen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEmitWritesAllArtifacts(t *testing.T) {
	t.Parallel()

	outputDir := t.TempDir()
	artifacts, err := NewEmitter().Emit(imgconvertSpec(), outputDir)
	if err != nil {
		t.Fatalf("Emit() returned error: %v", err)
	}

	if len(artifacts) != 4 {
		t.Fatalf("Emit() produced %d artifacts, want 4: %v", len(artifacts), artifacts)
	}

	wantPaths := map[ArtifactKind]string{
		ArtifactEntry:         filepath.Join(outputDir, "imgconvert", "cli.py"),
		ArtifactPackageInit:   filepath.Join(outputDir, "imgconvert", "__init__.py"),
		ArtifactManifest:      filepath.Join(outputDir, "pyproject.toml"),
		ArtifactDocumentation: filepath.Join(outputDir, "README.md"),
	}
	for kind, wantPath := range wantPaths {
		got, ok := artifacts[kind]
		if !ok {
			t.Errorf("artifact %q missing from result", kind)
			continue
		}
		if got != wantPath {
			t.Errorf("artifact %q path = %s, want %s", kind, got, wantPath)
		}
		info, err := os.Stat(got)
		if err != nil {
			t.Errorf("artifact %q not written: %v", kind, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %q is empty", kind)
		}
	}
}

func TestEmitIsDeterministic(t *testing.T) {
	t.Parallel()

	spec := imgconvertSpec()
	spec.Dependencies = []string{"pillow>=10"}

	firstDir := t.TempDir()
	secondDir := t.TempDir()

	first, err := NewEmitter().Emit(spec, firstDir)
	if err != nil {
		t.Fatalf("first Emit() returned error: %v", err)
	}
	second, err := NewEmitter().Emit(spec, secondDir)
	if err != nil {
		t.Fatalf("second Emit() returned error: %v", err)
	}

	for _, kind := range []ArtifactKind{ArtifactEntry, ArtifactPackageInit, ArtifactManifest, ArtifactDocumentation} {
		a, err := os.ReadFile(first[kind])
		if err != nil {
			t.Fatalf("failed to read first %q: %v", kind, err)
		}
		b, err := os.ReadFile(second[kind])
		if err != nil {
			t.Fatalf("failed to read second %q: %v", kind, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("artifact %q differs between emissions:\n--- first\n%s\n--- second\n%s", kind, a, b)
		}
	}
}

func TestEmitFailsOnUnwritableOutput(t *testing.T) {
	t.Parallel()

	// A regular file where the output directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create blocking file: %v", err)
	}

	if _, err := NewEmitter().Emit(imgconvertSpec(), blocker); err == nil {
		t.Fatal("Emit() into a regular file succeeded, want error")
	}
}

func TestEmitOverwritesPreviousRun(t *testing.T) {
	t.Parallel()

	outputDir := t.TempDir()
	spec := imgconvertSpec()

	if _, err := NewEmitter().Emit(spec, outputDir); err != nil {
		t.Fatalf("first Emit() returned error: %v", err)
	}

	spec.Description = "Convert images, now faster"
	artifacts, err := NewEmitter().Emit(spec, outputDir)
	if err != nil {
		t.Fatalf("second Emit() returned error: %v", err)
	}

	entry, err := os.ReadFile(artifacts[ArtifactEntry])
	if err != nil {
		t.Fatalf("failed to read entry module: %v", err)
	}
	if !bytes.Contains(entry, []byte("now faster")) {
		t.Error("second emission did not overwrite the entry module")
	}
}
