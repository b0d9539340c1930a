// Package registry loads the modules enabled for posting and the well-known
// nominal accounts each one posts against.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrModuleNotRegistered is returned for a module missing from the registry.
var ErrModuleNotRegistered = errors.New("module not registered")

// ModuleAccounts are the configured nominals of one module. The cash book's
// bank nominal comes from the header's cash book, not from here.
type ModuleAccounts struct {
	ControlNominalID int64 `yaml:"control_nominal" validate:"gte=0"`
	VatNominalID     int64 `yaml:"vat_nominal" validate:"required,gt=0"`
}

type document struct {
	Modules map[string]ModuleAccounts `yaml:"modules" validate:"required,min=1,dive"`
}

// Registry is passed to the services at construction; nothing reads it globally.
type Registry struct {
	modules map[domain.Module]ModuleAccounts
}

var validate = validator.New()

// New checks modules and builds a registry from them.
func New(modules map[domain.Module]ModuleAccounts) (*Registry, error) {
	r := &Registry{modules: make(map[domain.Module]ModuleAccounts, len(modules))}
	for m, accts := range modules {
		if !m.Valid() {
			return nil, fmt.Errorf("registry: unknown module %q", m)
		}
		if err := validate.Struct(accts); err != nil {
			return nil, fmt.Errorf("registry: module %s: %w", m, err)
		}
		if m.HasControlAccount() && m != domain.ModuleCashBook && accts.ControlNominalID == 0 {
			return nil, fmt.Errorf("registry: module %s needs a control_nominal", m)
		}
		r.modules[m] = accts
	}
	return r, nil
}

// Parse reads a registry document.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("registry: decode: %w", err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	modules := make(map[domain.Module]ModuleAccounts, len(doc.Modules))
	for code, accts := range doc.Modules {
		m, err := domain.ParseModule(code)
		if err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		modules[m] = accts
	}
	return New(modules)
}

// Load reads a registry document from path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}
	return Parse(data)
}

// Accounts returns the nominals configured for m.
func (r *Registry) Accounts(m domain.Module) (ModuleAccounts, error) {
	accts, ok := r.modules[m]
	if !ok {
		return ModuleAccounts{}, fmt.Errorf("%w: %s", ErrModuleNotRegistered, m)
	}
	return accts, nil
}

// Has reports whether m is enabled.
func (r *Registry) Has(m domain.Module) bool {
	_, ok := r.modules[m]
	return ok
}

// Modules lists the enabled modules in code order.
func (r *Registry) Modules() []domain.Module {
	out := make([]domain.Module, 0, len(r.modules))
	for m := range r.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
