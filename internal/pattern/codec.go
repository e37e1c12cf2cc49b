package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fyrsmithlabs/tenantd/internal/project"
)

// Codec converts between Project values and index-pattern strings for one
// configured prefix. Build it once and share it; it is immutable.
type Codec struct {
	prefix string
	re     *regexp.Regexp
}

// NewCodec creates a codec for the given project prefix. The prefix may be
// empty, in which case generated patterns have no leading segment.
func NewCodec(prefix string) *Codec {
	expr := "^"
	if prefix != "" {
		expr += regexp.QuoteMeta(prefix) + `\.`
	}
	expr += `(?P<name>[a-zA-Z0-9-]*)\.(?P<uid>.+)\.\*$`

	return &Codec{
		prefix: prefix,
		re:     regexp.MustCompile(expr),
	}
}

// Prefix returns the configured project prefix.
func (c *Codec) Prefix() string {
	return c.prefix
}

// Decode parses an index-pattern identifier into a Project.
//
// An empty identifier decodes to project.Empty. An identifier that does not
// follow the plugin's naming convention is preserved verbatim as the project
// name with no UID; callers detect that case by comparing the decoded name
// against the raw identifier.
func (c *Codec) Decode(id string) project.Project {
	if id == "" {
		return project.Empty
	}

	m := c.re.FindStringSubmatch(id)
	if m == nil {
		return project.Project{Name: id}
	}
	return project.Project{Name: m[1], UID: m[2]}
}

// Encode renders a Project as its index-pattern string.
func (c *Codec) Encode(p project.Project) string {
	prefix := ""
	if c.prefix != "" {
		prefix = c.prefix + "."
	}

	switch {
	case p == project.AllAlias:
		return project.AllAlias.Name
	case p == project.EmptyProject:
		// The sentinel's name carries a leading dot that must not survive
		// re-prefixing.
		return prefix + p.Name[1:] + ".*"
	case p.UID == "":
		if strings.HasSuffix(p.Name, ".*") {
			return p.Name
		}
		return p.Name + ".*"
	}

	return fmt.Sprintf("%s%s.%s.*", prefix, p.Name, p.UID)
}
