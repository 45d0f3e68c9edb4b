package hcl

import (
	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/schema"
)

// translate overlays every attribute present in the decoded file onto m.
func translate(f *schema.File, m *config.Model) {
	if c := f.Corpus; c != nil {
		set(&m.Corpus.Root, c.Root)
		set(&m.Corpus.DirPattern, c.DirPattern)
		set(&m.Corpus.Documents, c.Documents)
		set(&m.Corpus.Primary, c.Primary)
		set(&m.Corpus.HeaderKey, c.HeaderKey)
		set(&m.Corpus.Workers, c.Workers)
	}
	if d := f.Dependencies; d != nil {
		set(&m.Dependencies.RequiresMarker, d.RequiresMarker)
		set(&m.Dependencies.RequiredByMarker, d.RequiredByMarker)
		set(&m.Dependencies.AllMismatches, d.AllMismatches)
	}
	if l := f.Links; l != nil {
		set(&m.Links.Enabled, l.Enabled)
		set(&m.Links.DirPrefix, l.DirPrefix)
		set(&m.Links.ReferencePattern, l.ReferencePattern)
	}
	if s := f.Sections; s != nil {
		set(&m.Sections.Enabled, s.Enabled)
		set(&m.Sections.Required, s.Required)
		set(&m.Sections.RequiredSub, s.RequiredSub)
		set(&m.Sections.Skip, s.Skip)
	}
	if c := f.Code; c != nil {
		set(&m.Code.Enabled, c.Enabled)
		set(&m.Code.Language, c.Language)
		set(&m.Code.Extension, c.Extension)
		set(&m.Code.Command, c.Command)
		set(&m.Code.CacheSize, c.CacheSize)
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
