package dashboard

import (
	"strings"
	"testing"
)

func TestIndexForTenant(t *testing.T) {
	got, err := IndexForTenant(".kibana", "developer")
	if err != nil {
		t.Fatalf("IndexForTenant() error = %v", err)
	}

	if !strings.HasPrefix(got, ".kibana.") {
		t.Errorf("IndexForTenant() = %q, want .kibana. prefix", got)
	}
	// sha1 hex is 40 characters
	if len(got) != len(".kibana.")+40 {
		t.Errorf("IndexForTenant() = %q, want 40-char hash suffix", got)
	}

	// Deterministic per tenant, distinct across tenants.
	again, err := IndexForTenant(".kibana", "developer")
	if err != nil {
		t.Fatalf("IndexForTenant() error = %v", err)
	}
	if got != again {
		t.Error("IndexForTenant() must be deterministic")
	}

	other, err := IndexForTenant(".kibana", "operator")
	if err != nil {
		t.Fatalf("IndexForTenant() error = %v", err)
	}
	if got == other {
		t.Error("distinct tenants must map to distinct indices")
	}
}

func TestIndexForTenantEmpty(t *testing.T) {
	if _, err := IndexForTenant(".kibana", ""); err != ErrEmptyTenant {
		t.Errorf("IndexForTenant(\"\") error = %v, want ErrEmptyTenant", err)
	}
}
