package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "rhinozelfant dev")
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-h"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Contains(t, stdout.String(), "RHINOZELFANT_LOG_LEVEL")
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-input", "in", "-output", "out", "-prefix", "img",
		"-first", "2", "-last", "4", "-workers", "3", "-parallel",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "in", cfg.InputDir)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "img", cfg.Prefix)
	assert.Equal(t, ".png", cfg.Ext)
	assert.Equal(t, 2, cfg.First)
	assert.Equal(t, 4, cfg.Last)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Parallel)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := parseFlags([]string{"-nope"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = parseFlags([]string{"stray"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_Batch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(in, 0o755))

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{10, 10, 10, 255})
	img.Set(1, 0, color.RGBA{10, 10, 10, 255})
	img.Set(0, 1, color.RGBA{0, 0, 0, 255})
	img.Set(1, 1, color.RGBA{5, 5, 5, 255})
	f, err := os.Create(filepath.Join(in, "shape1.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", in, "-output", out, "-prefix", "shape", "-last", "1"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.FileExists(t, filepath.Join(out, "shape1.png"))
	assert.Contains(t, stderr.String(), "1 succeeded, 0 failed")

	code = run([]string{"-input", in, "-output", out, "-prefix", "shape", "-last", "2"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-workers", "x"}, &stdout, &stderr))
}
