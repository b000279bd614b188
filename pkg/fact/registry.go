package fact

// Entity is a named knowledge-graph node with a property map.
type Entity struct {
	Name  string
	Props map[string]Value
}

// Citation ties an asserted fact back to its source text.
type Citation struct {
	Pattern string // text pattern or snippet from the source article
	Source  string // article name or identifier
	Meta    map[string]Value
}

// Registry is an explicit, caller-owned entity context. There is no
// process-wide registry: each conversion or verification run owns its
// own Registry, so concurrent workers never interfere. Entities
// referenced before being defined are auto-created with empty
// properties, matching the lazy symbol resolution of the fact API.
type Registry struct {
	entities map[string]*Entity
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: make(map[string]*Entity)}
}

// GetOrCreate returns the named entity, creating it with empty
// properties if it does not exist yet.
func (r *Registry) GetOrCreate(name string) *Entity {
	if e, ok := r.entities[name]; ok {
		return e
	}
	e := &Entity{Name: name, Props: make(map[string]Value)}
	r.entities[name] = e
	r.order = append(r.order, name)
	return e
}

// Get returns the named entity if it has been registered.
func (r *Registry) Get(name string) (*Entity, bool) {
	e, ok := r.entities[name]
	return e, ok
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// All returns the registered entities in creation order.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entities[name])
	}
	return out
}
