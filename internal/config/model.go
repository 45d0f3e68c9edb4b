package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// Model is the unified representation of the validator configuration.
type Model struct {
	Corpus       Corpus
	Dependencies Dependencies
	Links        Links
	Sections     Sections
	Code         Code
}

// Corpus describes the on-disk layout of the standards.
type Corpus struct {
	// Root is the directory holding one sub-directory per standard.
	Root string
	// DirPattern must capture the numeric key in group 1 and the
	// descriptive slug in group 2.
	DirPattern string
	// Documents is a doublestar glob selecting document files inside a
	// standard directory.
	Documents string
	// Primary is the file carrying the declaration lines.
	Primary string
	// HeaderKey names the front-matter field that repeats the key; empty
	// disables the cross-check.
	HeaderKey string
	// Workers bounds concurrent file reads and parses.
	Workers int
}

// Dependencies configures the declaration markers.
type Dependencies struct {
	RequiresMarker   string
	RequiredByMarker string
	// AllMismatches reports every one-sided declaration instead of
	// stopping at the first.
	AllMismatches bool
}

// Links configures the cross-document link check.
type Links struct {
	Enabled bool
	// DirPrefix is the directory prefix relative links point at, e.g.
	// "ics" for "[label](../ics-002-client-semantics)".
	DirPrefix string
	// ReferencePattern matches numbered references; group 1 is the key.
	ReferencePattern string
}

// Sections configures the heading template check.
type Sections struct {
	Enabled bool
	// Required lists the level-2 headings, exactly and in order.
	Required []string
	// RequiredSub lists the leading level-3 headings, in order.
	RequiredSub []string
	// Skip lists standard directory names exempt from the check.
	Skip []string
}

// Code configures the embedded code check.
type Code struct {
	Enabled   bool
	Language  string
	Extension string
	// Command is the verifier; the concatenated source file path is
	// appended as the last argument.
	Command   []string
	CacheSize int
}

// Default returns the conventions of the interchain-standards corpus.
func Default() *Model {
	return &Model{
		Corpus: Corpus{
			Root:       "spec",
			DirPattern: `^ics-([0-9]+)-(.+)$`,
			Documents:  "*.md",
			Primary:    "README.md",
			HeaderKey:  "ics",
			Workers:    8,
		},
		Dependencies: Dependencies{
			RequiresMarker:   "requires:",
			RequiredByMarker: "required-by:",
		},
		Links: Links{
			Enabled:          true,
			DirPrefix:        "ics",
			ReferencePattern: `\[ICS ([0-9]+)\]\(([^)]*)\)`,
		},
		Sections: Sections{
			Enabled: true,
			Required: []string{
				"Synopsis",
				"Technical Specification",
				"Backwards Compatibility",
				"Forwards Compatibility",
				"Example Implementation",
				"Other Implementations",
				"History",
				"Copyright",
			},
			RequiredSub: []string{"Motivation", "Definitions", "Desired Properties"},
			Skip:        []string{"ics-001-ics-standard"},
		},
		Code: Code{
			Enabled:   false,
			Language:  "typescript",
			Extension: ".ts",
			Command:   []string{"tsc", "--lib", "es6", "--downlevelIteration"},
			CacheSize: 128,
		},
	}
}

// Validate checks that the configuration is usable.
func (m *Model) Validate() error {
	var errs []error

	if m.Corpus.Root == "" {
		errs = append(errs, errors.New("corpus.root is required"))
	}
	if re, err := regexp.Compile(m.Corpus.DirPattern); err != nil {
		errs = append(errs, fmt.Errorf("corpus.directory_pattern: %w", err))
	} else if re.NumSubexp() < 2 {
		errs = append(errs, fmt.Errorf("corpus.directory_pattern %q must have a key group and a slug group", m.Corpus.DirPattern))
	}
	if !doublestar.ValidatePattern(m.Corpus.Documents) {
		errs = append(errs, fmt.Errorf("corpus.documents: invalid glob %q", m.Corpus.Documents))
	}
	if m.Corpus.Primary == "" {
		errs = append(errs, errors.New("corpus.primary is required"))
	}
	if m.Corpus.Workers < 1 {
		errs = append(errs, fmt.Errorf("corpus.workers must be at least 1, got %d", m.Corpus.Workers))
	}

	if m.Dependencies.RequiresMarker == "" || m.Dependencies.RequiredByMarker == "" {
		errs = append(errs, errors.New("dependencies markers must not be empty"))
	}
	if m.Dependencies.RequiresMarker == m.Dependencies.RequiredByMarker {
		errs = append(errs, errors.New("dependencies markers must differ"))
	}

	if m.Links.Enabled {
		if m.Links.DirPrefix == "" {
			errs = append(errs, errors.New("links.directory_prefix is required"))
		}
		if m.Links.ReferencePattern != "" {
			if re, err := regexp.Compile(m.Links.ReferencePattern); err != nil {
				errs = append(errs, fmt.Errorf("links.reference_pattern: %w", err))
			} else if re.NumSubexp() < 1 {
				errs = append(errs, fmt.Errorf("links.reference_pattern %q must capture the key", m.Links.ReferencePattern))
			}
		}
	}

	if m.Sections.Enabled && len(m.Sections.Required) == 0 {
		errs = append(errs, errors.New("sections.required must list at least one heading"))
	}

	// Code settings are checked even when disabled: "speccheck syntax"
	// runs the checker regardless.
	if m.Code.Language == "" {
		errs = append(errs, errors.New("code.language is required"))
	}
	if len(m.Code.Command) == 0 || m.Code.Command[0] == "" {
		errs = append(errs, errors.New("code.command is required"))
	}
	if m.Code.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("code.cache_size must be at least 1, got %d", m.Code.CacheSize))
	}

	return errors.Join(errs...)
}
