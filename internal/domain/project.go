package domain

import "fmt"

// Project is a reference-data record entries are logged against.
type Project struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Default project identifiers.
const (
	ProjectVisoInternal = "VISO_INTERNAL"
	ProjectClientA      = "CLIENT_A"
	ProjectPersonal     = "PERSONAL"
)

// DefaultProjects returns the built-in catalog contents.
func DefaultProjects() []Project {
	return []Project{
		{ID: ProjectVisoInternal, Name: "Viso Internal"},
		{ID: ProjectClientA, Name: "Client A"},
		{ID: ProjectPersonal, Name: "Personal"},
	}
}

// Catalog is an ordered, read-only set of projects.
type Catalog struct {
	projects []Project
	names    map[string]string
}

// NewCatalog builds a catalog, rejecting empty or duplicate IDs.
func NewCatalog(projects []Project) (*Catalog, error) {
	if len(projects) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one project")
	}
	names := make(map[string]string, len(projects))
	for i, p := range projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project %d: id is required", i)
		}
		if _, dup := names[p.ID]; dup {
			return nil, fmt.Errorf("project %q: duplicate id", p.ID)
		}
		name := p.Name
		if name == "" {
			name = p.ID
		}
		names[p.ID] = name
	}
	cp := make([]Project, len(projects))
	copy(cp, projects)
	return &Catalog{projects: cp, names: names}, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultProjects())
	if err != nil {
		panic(err)
	}
	return c
}

// Projects returns the catalog in display order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Has reports whether id is a known project.
func (c *Catalog) Has(id string) bool {
	_, ok := c.names[id]
	return ok
}

// Name returns the display name for id. Unknown ids are returned as-is so
// entries logged against retired projects still render.
func (c *Catalog) Name(id string) string {
	if name, ok := c.names[id]; ok {
		return name
	}
	return id
}
