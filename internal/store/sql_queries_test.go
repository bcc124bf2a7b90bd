package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListPoliciesQuery(t *testing.T) {
	viewer := models.Identity{UserID: "u-1", Email: "a@example.com"}

	tests := []struct {
		name     string
		filter   models.PolicyFilter
		contains []string
		args     []any
	}{
		{
			name:     "default scope is owned",
			filter:   models.PolicyFilter{},
			contains: []string{"WHERE p.owner_id = $1", "ORDER BY p.created_at DESC"},
			args:     []any{"u-1"},
		},
		{
			name:     "shared scope matches grants by email",
			filter:   models.PolicyFilter{Scope: models.ScopeShared},
			contains: []string{"EXISTS (SELECT 1 FROM policy_shares s", "s.recipient_email = $1"},
			args:     []any{"a@example.com"},
		},
		{
			name:     "all scope with status",
			filter:   models.PolicyFilter{Scope: models.ScopeAll, Status: models.StatusSubmitted},
			contains: []string{"(p.owner_id = $1 OR EXISTS", "p.status = $3"},
			args:     []any{"u-1", "a@example.com", "SUBMITTED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListPoliciesQuery(viewer, tt.filter)
			require.NoError(t, err)
			for _, part := range tt.contains {
				assert.True(t, strings.Contains(query, part), "query %q lacks %q", query, part)
			}
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBuildGetPolicyQuery_AppliesVisibility(t *testing.T) {
	query, args, err := buildGetPolicyQuery("p-1", models.Identity{UserID: "u-1", Email: "a@example.com"})
	require.NoError(t, err)

	assert.Contains(t, query, "p.id = $1")
	assert.Contains(t, query, "(p.owner_id = $2 OR EXISTS")
	assert.Equal(t, []any{"p-1", "u-1", "a@example.com"}, args)
}
