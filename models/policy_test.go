package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyRef(t *testing.T) {
	ref := NotPersisted()
	id, ok := ref.ID()
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.False(t, ref.IsPersisted())

	// a short id is still a persisted id; no shape heuristics apply
	ref = Persisted("42")
	id, ok = ref.ID()
	assert.True(t, ok)
	assert.Equal(t, "42", id)
}

func TestPolicyRef_JSON(t *testing.T) {
	write := PolicyWrite{Ref: Persisted("0192f0c1-aaaa"), Status: StatusDraft}
	raw, err := json.Marshal(write)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"ref":"0192f0c1-aaaa"`)

	var decoded PolicyWrite
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, write.Ref, decoded.Ref)

	require.NoError(t, json.Unmarshal([]byte(`{"ref":null,"status":"DRAFT"}`), &decoded))
	assert.False(t, decoded.Ref.IsPersisted())
}

func TestPolicyRecord_Ref(t *testing.T) {
	assert.False(t, PolicyRecord{}.Ref().IsPersisted())
	assert.Equal(t, Persisted("p1"), PolicyRecord{ID: "p1"}.Ref())
}

func TestFormData_JSONHasNoRecordMetadata(t *testing.T) {
	raw, err := json.Marshal(NewFormData())
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, k := range []string{"id", "ownerId", "owner_id", "sharedCount", "shared_count", "status"} {
		assert.NotContains(t, keys, k)
	}
	assert.Len(t, keys, 10)
}

func TestDecideAccess(t *testing.T) {
	owner := Identity{UserID: "u1", Email: "owner@example.com"}
	other := Identity{UserID: "u2", Email: "agent2@example.com"}
	record := PolicyRecord{ID: "p1", OwnerID: "u1"}

	assert.Equal(t, AccessOwner, DecideAccess(record, owner, false))
	assert.Equal(t, AccessShared, DecideAccess(record, other, true))
	assert.Equal(t, AccessNone, DecideAccess(record, other, false))
	assert.Equal(t, AccessNone, DecideAccess(record, Identity{}, true))

	assert.False(t, AccessOwner.ReadOnly(false))
	assert.True(t, AccessOwner.ReadOnly(true))
	assert.True(t, AccessShared.ReadOnly(false))
	assert.True(t, AccessNone.ReadOnly(false))
}

func TestProfile_DisplayName(t *testing.T) {
	assert.Equal(t, "Asha Rao", Profile{FirstName: "Asha", LastName: "Rao", Email: "a@x.io"}.DisplayName())
	assert.Equal(t, "Asha", Profile{FirstName: "Asha", Email: "a@x.io"}.DisplayName())
	assert.Equal(t, "agent7", Profile{Email: "agent7@example.com"}.DisplayName())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "agent2@example.com", NormalizeEmail("  Agent2@Example.com "))
}
