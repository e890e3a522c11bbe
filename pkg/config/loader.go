package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// manifestNames are probed in order when no explicit path is given.
var manifestNames = []string{".skelrc.yaml", ".skelrc.yml", ".skelrc.hcl", ".skelrc"}

// Load loads a manifest file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// - .skelrc will try both YAML and HCL formats
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading manifest")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var m *Manifest

	// For .skelrc files, try both YAML and HCL
	if ext == ".skelrc" || filepath.Base(path) == ".skelrc" {
		m, err = loadYAML(data)
		if err != nil {
			var hclErr error
			m, hclErr = loadHCL(data, path)
			if hclErr != nil {
				return nil, errors.Errorf("parsing %s as YAML or HCL: %w", path, err)
			}
		}
	} else {
		switch ext {
		case ".json":
			m, err = loadJSON(data)
		case ".yaml", ".yml":
			m, err = loadYAML(data)
		case ".hcl":
			m, err = loadHCL(data, path)
		default:
			return nil, errors.Errorf("unsupported file extension %q", ext)
		}
		if err != nil {
			return nil, err
		}
	}

	m.location = path
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, errors.Errorf("validating manifest: %w", err)
	}

	return m, nil
}

// Locate finds and loads the manifest for the skeleton rooted at dir.
// A skeleton without a manifest gets the canonical defaults.
func Locate(ctx context.Context, dir string) (*Manifest, error) {
	for _, name := range manifestNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return Load(ctx, path)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no manifest found, using defaults")
	return Default(), nil
}

// loadJSON loads a manifest from JSON data
func loadJSON(data []byte) (*Manifest, error) {
	var m Manifest
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&m); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &m, nil
}

// loadYAML loads a manifest from YAML data
func loadYAML(data []byte) (*Manifest, error) {
	var m Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &m, nil
}

// hclManifest mirrors Manifest with HCL block structure.
type hclManifest struct {
	Scheme *struct {
		Kind         string `hcl:"kind,optional"`
		Delimiter    string `hcl:"delimiter,optional"`
		Placeholders *struct {
			Name        string `hcl:"name,optional"`
			Description string `hcl:"description,optional"`
		} `hcl:"placeholders,block"`
		BaseVersion    string `hcl:"base_version,optional"`
		VersionPrefix  string `hcl:"version_prefix,optional"`
		DefaultVersion string `hcl:"default_version,optional"`
	} `hcl:"scheme,block"`
	Tool *struct {
		Name        string `hcl:"name,optional"`
		InstallHint string `hcl:"install_hint,optional"`
	} `hcl:"tool,block"`
	Hooks *struct {
		Enabled  *bool      `hcl:"enabled,optional"`
		Commands [][]string `hcl:"commands,optional"`
	} `hcl:"hooks,block"`
	Exclude *struct {
		Dirs  []string `hcl:"dirs,optional"`
		Globs []string `hcl:"globs,optional"`
	} `hcl:"exclude,block"`
	SetupFiles    []string `hcl:"setup_files,optional"`
	CommitMessage string   `hcl:"commit_message,optional"`
	Remote        *struct {
		Enabled *bool `hcl:"enabled,optional"`
	} `hcl:"remote,block"`
}

// loadHCL loads a manifest from HCL data
func loadHCL(data []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var hclM hclManifest
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclM)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	m := &Manifest{
		SetupFiles:    hclM.SetupFiles,
		CommitMessage: hclM.CommitMessage,
	}
	if hclM.Scheme != nil {
		m.Scheme = Scheme{
			Kind:           SchemeKind(hclM.Scheme.Kind),
			Delimiter:      hclM.Scheme.Delimiter,
			BaseVersion:    hclM.Scheme.BaseVersion,
			VersionPrefix:  hclM.Scheme.VersionPrefix,
			DefaultVersion: hclM.Scheme.DefaultVersion,
		}
		if hclM.Scheme.Placeholders != nil {
			m.Scheme.Placeholders = Placeholders{
				Name:        hclM.Scheme.Placeholders.Name,
				Description: hclM.Scheme.Placeholders.Description,
			}
		}
	}
	if hclM.Tool != nil {
		m.Tool = Tool{Name: hclM.Tool.Name, InstallHint: hclM.Tool.InstallHint}
	}
	if hclM.Hooks != nil {
		m.Hooks = Hooks{Enabled: hclM.Hooks.Enabled, Commands: hclM.Hooks.Commands}
	}
	if hclM.Exclude != nil {
		m.Exclude = Exclude{Dirs: hclM.Exclude.Dirs, Globs: hclM.Exclude.Globs}
	}
	if hclM.Remote != nil {
		m.Remote = Remote{Enabled: hclM.Remote.Enabled}
	}

	return m, nil
}
