// internal/form/definition.go
//
// Forms subsystem: YAML definition loader.
//
// Context
//   Each edit form in the block editor is declared in a YAML file.  The
//   file defines the form's identifier, title, and fields.  At
//   application start, we parse every "*.yaml" in the embedded forms
//   tree and store the resulting FormDef in an in-memory registry.
//   Subsequent packages (renderer, validator, the editor component)
//   fetch definitions from this registry by ID, guaranteeing a single
//   source of truth.
//
// Workflow
//   •  Structs mirror the YAML schema: FormDef → FieldDef.
//   •  LoadFormDef parses a single YAML document and validates
//      structural rules.
//   •  RegisterForms walks an fs.FS, discovers YAMLs, loads them via
//      LoadFormDef, and adds them to the registry.
//   •  GetFormDef offers safe, read-only access to a parsed form by ID.
//
// Style
//   Full sentences, two spaces after periods, Oxford commas.
//
//------------------------------------------------------------------------------

package form

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------
// Data structures
// -----------------------------------------------------------------------------

// FormDef represents one form definition loaded from YAML.
//
// The form is uniquely identified by ID, namespaced by component, e.g.
// "editor/heading".
type FormDef struct {
	ID     string     `yaml:"id"`     // Component-scoped identifier.
	Title  string     `yaml:"title"`  // Display title, optional.
	Fields []FieldDef `yaml:"fields"` // Ordered field list.
}

// FieldDef describes a single input control on the form.  Validation
// metadata lives inline so the server can enforce the same rules the
// client hints at.
type FieldDef struct {
	Name        string   `yaml:"name"`        // Submission key.  Required.
	Label       string   `yaml:"label"`       // Human-readable label.  Required.
	Type        string   `yaml:"type"`        // text, textarea, select, etc.
	Placeholder string   `yaml:"placeholder"` // Optional placeholder text.
	Required    bool     `yaml:"required"`    // True if input is mandatory.
	MinLength   int      `yaml:"minlength"`   // ≥ 0, 0 means unset.
	MaxLength   int      `yaml:"maxlength"`   // ≥ 0, 0 means unset.
	Pattern     string   `yaml:"pattern"`     // Regex pattern string.
	Options     []string `yaml:"options"`     // For select/radio.  Optional.
	ErrorMsg    string   `yaml:"error"`       // Custom error message, optional.
}

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

// registry maps compositeID ("comp/form") → *FormDef.  Guarded by mutex.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]*FormDef)
)

// GetFormDef returns a parsed FormDef by composite ID ("component/form").
// The boolean is false when the ID is unknown.
func GetFormDef(id string) (*FormDef, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fd, ok := registry[id]
	return fd, ok
}

// -----------------------------------------------------------------------------
// Loader API
// -----------------------------------------------------------------------------

// LoadFormDef parses one YAML document, validates its structure, and
// returns a populated FormDef.  It NEVER mutates the global registry.
func LoadFormDef(raw []byte, origin string) (*FormDef, error) {
	var fd FormDef
	if err := yaml.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("parse YAML %s: %w", origin, err)
	}

	if err := validateFormDef(&fd, origin); err != nil {
		return nil, err
	}

	return &fd, nil
}

// RegisterForms walks fsys and loads every "*.yaml" it contains.
// Components call this from init() with their embedded forms tree.
func RegisterForms(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".yaml") {
			return nil // skip non-YAML
		}

		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read form file %s: %w", path, err)
		}
		fd, err := LoadFormDef(raw, path)
		if err != nil {
			return err // fail fast so issues surface loudly.
		}
		register(fd)
		return nil
	})
}

// register inserts or overrides the form in the global registry.
// Caller must ensure the FormDef passed validation.
func register(fd *FormDef) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[fd.ID] = fd
}

// -----------------------------------------------------------------------------
// Validation helpers
// -----------------------------------------------------------------------------

// validateFormDef enforces structural rules that cannot be expressed via
// YAML tags alone.  It returns a descriptive error referencing the
// offending file.
func validateFormDef(fd *FormDef, origin string) error {
	if fd.ID == "" {
		return fmt.Errorf("form definition %s: missing required 'id'", origin)
	}
	if len(fd.Fields) == 0 {
		return fmt.Errorf("form definition %s: must have 'fields'", origin)
	}

	fieldNames := make(map[string]struct{})
	for i := range fd.Fields {
		if err := validateField(&fd.Fields[i], origin); err != nil {
			return err
		}
		if _, dup := fieldNames[fd.Fields[i].Name]; dup {
			return fmt.Errorf("form %s: duplicate field name '%s'", origin, fd.Fields[i].Name)
		}
		fieldNames[fd.Fields[i].Name] = struct{}{}
	}

	return nil
}

// validateField confirms that essential attributes are present and sane.
func validateField(f *FieldDef, origin string) error {
	if f.Name == "" {
		return fmt.Errorf("form %s: field missing 'name'", origin)
	}
	if f.Label == "" {
		return fmt.Errorf("form %s: field '%s' missing 'label'", origin, f.Name)
	}
	if f.Type == "" {
		return fmt.Errorf("form %s: field '%s' missing 'type'", origin, f.Name)
	}

	if f.Pattern != "" {
		if _, err := regexp.Compile(f.Pattern); err != nil {
			return fmt.Errorf("form %s: field '%s' invalid regex pattern: %v", origin, f.Name, err)
		}
	}

	if f.MinLength < 0 || f.MaxLength < 0 {
		return fmt.Errorf("form %s: field '%s' minlength/maxlength cannot be negative", origin, f.Name)
	}
	if f.MaxLength > 0 && f.MinLength > f.MaxLength {
		return fmt.Errorf("form %s: field '%s' minlength greater than maxlength", origin, f.Name)
	}

	return nil
}
