package pattern

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-version"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/tenantd/internal/project"
	"github.com/fyrsmithlabs/tenantd/internal/searchstore"
)

// Document kinds stored in a tenant's dashboard index.
const (
	// DocKindIndexPattern is the kind under which the dashboard persists
	// index-pattern documents.
	DocKindIndexPattern = "index-pattern"

	// DocKindConfig is the kind under which the dashboard persists its
	// per-version configuration documents.
	DocKindConfig = "config"
)

// ErrBadVersion indicates a config document whose identifier is not a
// parsable version string. Resolution aborts rather than guessing which
// document should win.
var ErrBadVersion = errors.New("config document id is not a valid version")

// Resolver resolves a tenant's project set and default index pattern from
// documents in the tenant's dashboard index.
type Resolver struct {
	codec   *Codec
	store   searchstore.Searcher
	version *version.Version
	logger  *zap.Logger
}

// NewResolver creates a resolver bound to one codec, one search backend and
// one running dashboard version. logger may be nil.
func NewResolver(codec *Codec, store searchstore.Searcher, dashboardVersion string, logger *zap.Logger) (*Resolver, error) {
	if codec == nil {
		return nil, errors.New("codec required")
	}
	if store == nil {
		return nil, errors.New("searcher required")
	}

	v, err := version.NewVersion(dashboardVersion)
	if err != nil {
		return nil, fmt.Errorf("parsing dashboard version %q: %w", dashboardVersion, err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		codec:   codec,
		store:   store,
		version: v,
		logger:  logger,
	}, nil
}

// Codec returns the codec the resolver decodes with.
func (r *Resolver) Codec() *Codec {
	return r.codec
}

// Projects fetches the index-pattern documents of a tenant's dashboard index
// and returns the set of projects this plugin generated patterns for.
func (r *Resolver) Projects(ctx context.Context, dashboardIndex string) (map[project.Project]struct{}, error) {
	resp, err := r.store.Search(ctx, dashboardIndex, DocKindIndexPattern)
	if err != nil {
		return nil, fmt.Errorf("fetching index patterns from %s: %w", dashboardIndex, err)
	}

	if resp.Total == 0 {
		r.logger.Debug("no index patterns found in dashboard index",
			zap.String("index", dashboardIndex))
	}

	return r.ExtractProjects(resp.Hits), nil
}

// ExtractProjects decodes fetched index-pattern documents into the set of
// projects that follow the plugin's naming convention.
//
// A document is kept when its identifier genuinely decoded (the decoded name
// differs from the raw id) or when it is the all-tenants alias. Everything
// else is an index pattern a user created by hand through the dashboard UI
// and is skipped.
func (r *Resolver) ExtractProjects(hits []searchstore.Hit) map[project.Project]struct{} {
	set := make(map[project.Project]struct{}, len(hits))
	for _, hit := range hits {
		p := r.codec.Decode(hit.ID)
		if p.Name != hit.ID || p == project.AllAlias {
			set[p] = struct{}{}
		}
	}
	return set
}
