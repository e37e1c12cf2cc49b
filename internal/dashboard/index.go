// Package dashboard derives per-tenant dashboard index names.
//
// Each tenant's dashboard state lives in its own backing index, addressed as
// <prefix>.<sha1hex(tenant)>. Hashing keeps arbitrary tenant names safe for
// index naming and hides them from operators browsing the backend.
package dashboard

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
)

// ErrEmptyTenant indicates an empty tenant identifier.
var ErrEmptyTenant = errors.New("tenant cannot be empty")

// IndexForTenant returns the backing index holding the tenant's dashboard
// state.
func IndexForTenant(indexPrefix, tenant string) (string, error) {
	if tenant == "" {
		return "", ErrEmptyTenant
	}

	sum := sha1.Sum([]byte(tenant))
	return indexPrefix + "." + hex.EncodeToString(sum[:]), nil
}
