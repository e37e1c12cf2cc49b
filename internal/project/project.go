package project

import "errors"

// Common errors.
var (
	ErrEmptyName = errors.New("project name cannot be empty")
)

// Reserved sentinel values. These are fixed identities, never mutated after
// process start, and compared by value like any other Project.
var (
	// Empty means no project could be determined.
	Empty = Project{}

	// AllAlias is the reserved alias for "all tenants". Its index-pattern
	// form is the literal alias name, independent of any prefix.
	AllAlias = Project{Name: ".all"}

	// EmptyProject marks a tenant that has no index patterns yet. The
	// leading dot in its name is load-bearing: the pattern codec strips it
	// before re-prefixing.
	EmptyProject = Project{Name: ".empty-project"}
)

// Project is a tenant workspace identity. The zero value is Empty.
//
// Project is comparable; two projects are equal iff both Name and UID match.
// An empty UID means "no UID" and is a distinct identity from any UID.
type Project struct {
	Name string `json:"name"`
	UID  string `json:"uid,omitempty"`
}

// New creates a project value. uid may be empty.
func New(name, uid string) (Project, error) {
	if name == "" {
		return Empty, ErrEmptyName
	}
	return Project{Name: name, UID: uid}, nil
}

// String renders the project for logs. It is not the index-pattern form;
// use the pattern codec for that.
func (p Project) String() string {
	if p.UID == "" {
		return p.Name
	}
	return p.Name + "." + p.UID
}

// IsEmpty reports whether p is the Empty sentinel.
func (p Project) IsEmpty() bool {
	return p == Empty
}
