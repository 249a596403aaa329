package scene

import "fmt"

// Caps bound the open populations.
type Caps struct {
	Messages int `yaml:"messages"`
	Rings    int `yaml:"rings"`
	Streams  int `yaml:"streams"`
}

func DefaultCaps() Caps {
	return Caps{Messages: 32, Rings: 8, Streams: 64}
}

// Registry holds the sections in page order.
type Registry struct {
	sections map[string]Section
	order    []string
}

// NewRegistry builds every section with the given caps.
func NewRegistry(caps Caps) *Registry {
	r := &Registry{sections: map[string]Section{}}
	for _, s := range []Section{
		Hero(),
		Education(),
		Experience(),
		Projects(caps),
		Research(),
		Achievements(),
		Contact(caps),
	} {
		r.Register(s)
	}
	return r
}

// Register adds or replaces a section.
func (r *Registry) Register(s Section) {
	if _, ok := r.sections[s.Name]; !ok {
		r.order = append(r.order, s.Name)
	}
	r.sections[s.Name] = s
}

func (r *Registry) Get(name string) (Section, error) {
	s, ok := r.sections[name]
	if !ok {
		return Section{}, fmt.Errorf("%w: %s", ErrUnknownSection, name)
	}
	return s, nil
}

// ByCanvas finds the section drawing into canvas id.
func (r *Registry) ByCanvas(id string) (Section, bool) {
	for _, name := range r.order {
		if s := r.sections[name]; s.Canvas == id {
			return s, true
		}
	}
	return Section{}, false
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) All() []Section {
	out := make([]Section, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.sections[name])
	}
	return out
}

// Select returns the named sections in the given order. An empty list selects all.
func (r *Registry) Select(names []string) ([]Section, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	out := make([]Section, 0, len(names))
	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
