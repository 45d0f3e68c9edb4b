// Package schema holds the HCL decoding targets for a speccheck
// configuration file. Every attribute is optional; unset attributes keep
// the value from config.Default().
package schema

// File represents the top-level structure of a speccheck.hcl file.
type File struct {
	Corpus       *CorpusBlock       `hcl:"corpus,block"`
	Dependencies *DependenciesBlock `hcl:"dependencies,block"`
	Links        *LinksBlock        `hcl:"links,block"`
	Sections     *SectionsBlock     `hcl:"sections,block"`
	Code         *CodeBlock         `hcl:"code,block"`
}

// CorpusBlock represents the `corpus` block.
type CorpusBlock struct {
	Root       *string `hcl:"root,optional"`
	DirPattern *string `hcl:"directory_pattern,optional"`
	Documents  *string `hcl:"documents,optional"`
	Primary    *string `hcl:"primary,optional"`
	HeaderKey  *string `hcl:"header_key,optional"`
	Workers    *int    `hcl:"workers,optional"`
}

// DependenciesBlock represents the `dependencies` block.
type DependenciesBlock struct {
	RequiresMarker   *string `hcl:"requires_marker,optional"`
	RequiredByMarker *string `hcl:"required_by_marker,optional"`
	AllMismatches    *bool   `hcl:"all_mismatches,optional"`
}

// LinksBlock represents the `links` block.
type LinksBlock struct {
	Enabled          *bool   `hcl:"enabled,optional"`
	DirPrefix        *string `hcl:"directory_prefix,optional"`
	ReferencePattern *string `hcl:"reference_pattern,optional"`
}

// SectionsBlock represents the `sections` block.
type SectionsBlock struct {
	Enabled     *bool     `hcl:"enabled,optional"`
	Required    *[]string `hcl:"required,optional"`
	RequiredSub *[]string `hcl:"required_sub,optional"`
	Skip        *[]string `hcl:"skip,optional"`
}

// CodeBlock represents the `code` block.
type CodeBlock struct {
	Enabled   *bool     `hcl:"enabled,optional"`
	Language  *string   `hcl:"language,optional"`
	Extension *string   `hcl:"extension,optional"`
	Command   *[]string `hcl:"command,optional"`
	CacheSize *int      `hcl:"cache_size,optional"`
}
