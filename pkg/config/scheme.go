// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/pkg/text"
)

// 🏷️ SchemeKind selects how a skeleton spells its placeholder tokens
type SchemeKind string

const (
	// SchemeLiteral uses the skeleton's own canonical spellings as tokens,
	// e.g. the project name token doubles as the example project name.
	SchemeLiteral SchemeKind = "literal"

	// SchemeDelimited wraps fixed key names in a delimiter,
	// e.g. $_$PROJECT_NAME$_$.
	SchemeDelimited SchemeKind = "delimited"
)

// Canonical literal-scheme spellings and the delimiter default.
const (
	DefaultNameToken        = "python-project-initialiser"
	DefaultDescriptionToken = "python-project-initialiser-description"
	DefaultBaseVersion      = "3.11"
	DefaultVersionPrefix    = "py"
	DefaultDelimiter        = "$_$"
)

// Fixed key names of the delimited scheme.
const (
	keyName           = "PROJECT_NAME"
	keyDescription    = "DESCRIPTION"
	keyVersion        = "VERSION"
	keyVersionCompact = "VERSION_COMPACT"
)

// 🏷️ Placeholders overrides the literal scheme's token spellings
type Placeholders struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// 🔤 Scheme describes the placeholder vocabulary of a skeleton.
//
// Every scheme produces the same four replacement keys: project name,
// description, version, and compact version (dots stripped, VersionPrefix
// applied, so version "3.12" with prefix "py" becomes "py312"). The kinds
// differ only in how the tokens are spelled inside skeleton files.
type Scheme struct {
	Kind           SchemeKind   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Delimiter      string       `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	Placeholders   Placeholders `json:"placeholders,omitempty" yaml:"placeholders,omitempty"`
	BaseVersion    string       `json:"base_version,omitempty" yaml:"base_version,omitempty"`
	VersionPrefix  string       `json:"version_prefix,omitempty" yaml:"version_prefix,omitempty"`
	DefaultVersion string       `json:"default_version,omitempty" yaml:"default_version,omitempty"`
}

func (s *Scheme) applyDefaults() {
	if s.Kind == "" {
		s.Kind = SchemeLiteral
	}
	if s.Delimiter == "" {
		s.Delimiter = DefaultDelimiter
	}
	if s.Placeholders.Name == "" {
		s.Placeholders.Name = DefaultNameToken
	}
	if s.Placeholders.Description == "" {
		s.Placeholders.Description = DefaultDescriptionToken
	}
	if s.BaseVersion == "" {
		s.BaseVersion = DefaultBaseVersion
	}
	if s.VersionPrefix == "" {
		s.VersionPrefix = DefaultVersionPrefix
	}
	if s.DefaultVersion == "" {
		s.DefaultVersion = s.BaseVersion
	}
}

func (s Scheme) validate() error {
	switch s.Kind {
	case SchemeLiteral, SchemeDelimited:
	default:
		return errors.Errorf("unknown kind %q", s.Kind)
	}

	// Token spellings are fixed per scheme, so building a table with any
	// answers catches colliding tokens at load time.
	if _, err := s.Table("name", "description", s.DefaultVersion); err != nil {
		return err
	}
	return nil
}

// 🔄 Table builds the four-key replacement table for the collected answers
func (s Scheme) Table(name, description, version string) ([]text.Replacement, error) {
	compact := CompactVersion(version, s.VersionPrefix)

	var table []text.Replacement
	switch s.Kind {
	case SchemeDelimited:
		table = []text.Replacement{
			{Token: s.Delimiter + keyName + s.Delimiter, Value: name},
			{Token: s.Delimiter + keyDescription + s.Delimiter, Value: description},
			{Token: s.Delimiter + keyVersion + s.Delimiter, Value: version},
			{Token: s.Delimiter + keyVersionCompact + s.Delimiter, Value: compact},
		}
	default:
		table = []text.Replacement{
			{Token: s.Placeholders.Name, Value: name},
			{Token: s.Placeholders.Description, Value: description},
			{Token: s.BaseVersion, Value: version},
			{Token: CompactVersion(s.BaseVersion, s.VersionPrefix), Value: compact},
		}
	}

	if err := text.ValidateTable(table); err != nil {
		return nil, errors.Errorf("building replacement table: %w", err)
	}
	return table, nil
}

// 🗜️ CompactVersion strips dots from a version and applies the prefix,
// e.g. ("3.12", "py") -> "py312"
func CompactVersion(version, prefix string) string {
	return prefix + strings.ReplaceAll(version, ".", "")
}
