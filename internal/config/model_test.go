package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "spec", cfg.Corpus.Root)
	assert.Equal(t, "requires:", cfg.Dependencies.RequiresMarker)
	assert.Equal(t, "required-by:", cfg.Dependencies.RequiredByMarker)
	assert.False(t, cfg.Code.Enabled, "code check needs an external verifier and is opt-in")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Model)
		wantErr string
	}{
		{
			name:    "missing root",
			modify:  func(m *Model) { m.Corpus.Root = "" },
			wantErr: "corpus.root is required",
		},
		{
			name:    "pattern without groups",
			modify:  func(m *Model) { m.Corpus.DirPattern = `^ics-[0-9]+$` },
			wantErr: "must have a key group and a slug group",
		},
		{
			name:    "broken pattern",
			modify:  func(m *Model) { m.Corpus.DirPattern = `(` },
			wantErr: "corpus.directory_pattern",
		},
		{
			name:    "broken glob",
			modify:  func(m *Model) { m.Corpus.Documents = "[" },
			wantErr: "invalid glob",
		},
		{
			name:    "zero workers",
			modify:  func(m *Model) { m.Corpus.Workers = 0 },
			wantErr: "corpus.workers",
		},
		{
			name: "identical markers",
			modify: func(m *Model) {
				m.Dependencies.RequiredByMarker = m.Dependencies.RequiresMarker
			},
			wantErr: "markers must differ",
		},
		{
			name:    "reference pattern without key group",
			modify:  func(m *Model) { m.Links.ReferencePattern = `\[ICS\]` },
			wantErr: "must capture the key",
		},
		{
			name: "code check without command",
			modify: func(m *Model) {
				m.Code.Enabled = true
				m.Code.Command = nil
			},
			wantErr: "code.command is required",
		},
		{
			name:    "disabled code check still needs a command",
			modify:  func(m *Model) { m.Code.Command = nil },
			wantErr: "code.command is required",
		},
		{
			name:    "zero cache size",
			modify:  func(m *Model) { m.Code.CacheSize = 0 },
			wantErr: "code.cache_size",
		},
		{
			name:    "links disabled skips link settings",
			modify:  func(m *Model) { m.Links.Enabled = false; m.Links.DirPrefix = "" },
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
