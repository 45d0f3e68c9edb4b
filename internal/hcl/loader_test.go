package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/speccheck/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "speccheck.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), model)
}

func TestLoad_OverlaysPresentAttributes(t *testing.T) {
	path := writeConfig(t, `
corpus {
  root    = "standards"
  workers = 2
}

dependencies {
  all_mismatches = true
}

sections {
  enabled  = false
  required = ["Synopsis"]
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "standards"), model.Corpus.Root)
	assert.Equal(t, 2, model.Corpus.Workers)
	assert.True(t, model.Dependencies.AllMismatches)
	assert.False(t, model.Sections.Enabled)
	assert.Equal(t, []string{"Synopsis"}, model.Sections.Required)

	// Untouched values keep their defaults.
	def := config.Default()
	assert.Equal(t, def.Corpus.DirPattern, model.Corpus.DirPattern)
	assert.Equal(t, def.Sections.RequiredSub, model.Sections.RequiredSub)
	assert.Equal(t, def.Links, model.Links)
}

func TestLoad_EvalContext(t *testing.T) {
	t.Setenv("SPECCHECK_TEST_TSC", "/opt/bin/tsc")
	path := writeConfig(t, `
corpus {
  root = "${config_dir}/spec"
}

code {
  enabled  = true
  language = lower("TypeScript")
  command  = [env("SPECCHECK_TEST_TSC", "tsc"), env("SPECCHECK_TEST_UNSET", "--strict")]
}
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	abs, err := filepath.Abs(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(abs, "spec"), model.Corpus.Root)
	assert.Equal(t, "typescript", model.Code.Language)
	assert.Equal(t, []string{"/opt/bin/tsc", "--strict"}, model.Code.Command)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		path := writeConfig(t, `corpus {`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to parse HCL file")
	})

	t.Run("unknown block", func(t *testing.T) {
		path := writeConfig(t, `graph { draw = true }`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to decode HCL file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		assert.Error(t, err)
	})
}
