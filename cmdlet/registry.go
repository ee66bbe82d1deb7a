package cmdlet

import "fmt"

// Registry resolves a command name (or alias) to a Cmdlet. It is built
// once at startup via one-shot discovery and is immutable and read-only
// safe for concurrent use thereafter (spec.md §4.7, §5).
type Registry struct {
	byName map[string]Cmdlet
	order  []string // registration order, for Names()
}

// NewRegistry returns an empty registry ready for Register calls.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Cmdlet)}
}

// Register adds a cmdlet under its name and all its aliases. It fails if
// any of those keys is already registered — no two cmdlets may share a
// name or alias, and a name cannot be registered twice (spec.md §4.7).
func (r *Registry) Register(c Cmdlet) error {
	keys := append([]string{c.Descriptor.Name}, c.Descriptor.Aliases...)
	for _, k := range keys {
		if existing, ok := r.byName[k]; ok {
			return RegistryError(fmt.Sprintf("cmdlet key %q already registered to %q", k, existing.Descriptor.Name))
		}
	}
	for _, k := range keys {
		r.byName[k] = c
	}
	r.order = append(r.order, c.Descriptor.Name)
	return nil
}

// Lookup resolves a command name or alias, case-sensitively per §4.6.2.
func (r *Registry) Lookup(name string) (Cmdlet, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Names returns registered cmdlet primary names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Suggest returns a registered name or alias within edit distance 1 of
// name, for a "did you mean" hint on CommandNotFound (a supplemented
// feature beyond spec.md's documented error fields, additive only).
func (r *Registry) Suggest(name string) (string, bool) {
	for k := range r.byName {
		if levenshteinAtMost1(name, k) {
			return k, true
		}
	}
	return "", false
}
