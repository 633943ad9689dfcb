package settings

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// ErrTypeMismatch indicates a rebind of an existing key with another type.
var ErrTypeMismatch = errors.New("setting already bound with a different type")

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "section", LabelNames: []string{"name"}},
	},
}

// Store holds the settings of one package.
type Store struct {
	mu        sync.Mutex
	owner     string
	entries   map[string]Binding
	order     []string
	overrides map[string]cty.Value
}

// NewStore creates an empty store for owner.
func NewStore(owner string) *Store {
	return &Store{
		owner:     owner,
		entries:   make(map[string]Binding),
		overrides: make(map[string]cty.Value),
	}
}

// Owner returns the identifier the store was created for.
func (s *Store) Owner() string { return s.owner }

func storeKey(section, key string) string { return section + "/" + key }

// Bind returns the entry for section/key, creating it with def when absent.
// An override loaded for the key is applied on creation; a failed conversion
// leaves the default in place and is returned alongside the entry.
func Bind[T any](s *Store, section, key string, def T, description string) (*Entry[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := storeKey(section, key)
	if existing, ok := s.entries[k]; ok {
		e, ok := existing.(*Entry[T])
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTypeMismatch, k)
		}
		return e, nil
	}

	e := newEntry(section, key, def, description)
	s.entries[k] = e
	s.order = append(s.order, k)

	if val, ok := s.overrides[k]; ok {
		if err := e.SetValue(val); err != nil {
			return e, err
		}
	}
	return e, nil
}

// Lookup returns the binding for section/key.
func (s *Store) Lookup(section, key string) (Binding, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.entries[storeKey(section, key)]
	return b, ok
}

// Bindings returns every bound entry in bind order.
func (s *Store) Bindings() []Binding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Binding, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.entries[k])
	}
	return out
}

// Override records val for section/key. Bound entries are updated
// immediately; unbound keys are applied when bound.
func (s *Store) Override(section, key string, val cty.Value) error {
	s.mu.Lock()
	k := storeKey(section, key)
	s.overrides[k] = val
	b, ok := s.entries[k]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return b.SetValue(val)
}

// LoadFile reads overrides from an HCL file of the form
//
//	section "Ruin_Tower" {
//	  Enabled = "Off"
//	}
func (s *Store) LoadFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	return s.loadBody(file.Body)
}

// LoadBytes reads overrides from HCL source; filename is used in diagnostics.
func (s *Store) LoadBytes(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse settings %s: %w", filename, diags)
	}
	return s.loadBody(file.Body)
}

func (s *Store) loadBody(body hcl.Body) error {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode settings: %w", diags)
	}
	var errs []error
	for _, block := range content.Blocks {
		section := block.Labels[0]
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			errs = append(errs, fmt.Errorf("section %q: %w", section, diags))
			continue
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				errs = append(errs, fmt.Errorf("section %q, key %q: %w", section, name, diags))
				continue
			}
			if err := s.Override(section, name, val); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
