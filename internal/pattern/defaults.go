package pattern

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/tidwall/gjson"

	"github.com/fyrsmithlabs/tenantd/internal/searchstore"
)

// defaultIndexPath locates the configured default inside a config document.
const defaultIndexPath = "defaultIndex"

// DefaultIndexPattern resolves the default index pattern for a tenant's
// dashboard index, falling back to fallback when no configuration applies.
//
// When config documents exist for multiple dashboard versions, the document
// matching the running version wins, even if its configured default is blank.
// Without an exact match the most recent version wins. A dashboard index that
// does not exist yet resolves to fallback.
func (r *Resolver) DefaultIndexPattern(ctx context.Context, dashboardIndex, fallback string) (string, error) {
	resp, err := r.store.Search(ctx, dashboardIndex, DocKindConfig)
	if errors.Is(err, searchstore.ErrIndexNotFound) {
		// No dashboard state yet, not an error.
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("fetching config documents from %s: %w", dashboardIndex, err)
	}

	switch len(resp.Hits) {
	case 0:
		return fallback, nil
	case 1:
		if v := gjson.GetBytes(resp.Hits[0].Source, defaultIndexPath); v.Exists() && v.String() != "" {
			return v.String(), nil
		}
		return fallback, nil
	}

	byVersion := make(map[string]string, len(resp.Hits))
	versions := make(version.Collection, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		v, err := version.NewVersion(hit.ID)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrBadVersion, hit.ID)
		}

		value := fallback
		if res := gjson.GetBytes(hit.Source, defaultIndexPath); res.Exists() {
			value = res.String()
		}

		byVersion[v.String()] = value
		versions = append(versions, v)
	}
	sort.Sort(versions)

	if value, ok := byVersion[r.version.String()]; ok {
		// An exact version match with a blank default means "no default",
		// not "substitute the fallback".
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return value, nil
	}

	return byVersion[versions[len(versions)-1].String()], nil
}
