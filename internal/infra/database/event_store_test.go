package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/entity"
)

func TestTableSpecNames(t *testing.T) {
	assert.Equal(t, "office_a_step_changed", "office_a"+stepChangedSpec.suffix)
	assert.Equal(t, "office_a_lead_created", "office_a"+leadCreatedSpec.suffix)
	assert.Equal(t, "office_a_lead_deleted", "office_a"+leadDeletedSpec.suffix)
	assert.Equal(t, "office_a_client_folder_created", "office_a"+clientFolderCreatedSpec.suffix)
}

func TestTableSpecsProjectMatchingColumnCounts(t *testing.T) {
	for _, spec := range []tableSpec{stepChangedSpec, leadCreatedSpec, leadDeletedSpec, clientFolderCreatedSpec} {
		values := spec.project(entity.Payload{})
		assert.Len(t, values, len(spec.columns), "spec %s", spec.suffix)
	}
}

func TestLeadCreatedProjection(t *testing.T) {
	data := entity.Payload{
		"id":            float64(42),
		"title":         "Acme",
		"status":        "open",
		"client_folder": map[string]any{"id": float64(7), "name": "North"},
	}

	values := leadCreatedSpec.project(data)
	require.Len(t, values, len(leadCreatedSpec.columns))

	byColumn := map[string]any{}
	for i, col := range leadCreatedSpec.columns {
		byColumn[col] = values[i]
	}

	assert.Equal(t, int64(42), *byColumn["lead_id"].(*int64))
	assert.Equal(t, "Acme", *byColumn["title"].(*string))
	assert.Equal(t, "open", *byColumn["status"].(*string))
	assert.Equal(t, int64(7), *byColumn["client_folder_id"].(*int64))
	assert.Equal(t, "North", *byColumn["client_folder_name"].(*string))

	// Absent keys degrade to typed nils, never panics.
	assert.Nil(t, byColumn["amount"].(*float64))
	assert.Nil(t, byColumn["user_email"].(*string))
}

func TestStepChangedProjectionMirrorsMover(t *testing.T) {
	data := entity.Payload{
		"id":   float64(11),
		"user": map[string]any{"email": "rep@example.com"},
	}

	values := stepChangedSpec.project(data)
	byColumn := map[string]any{}
	for i, col := range stepChangedSpec.columns {
		byColumn[col] = values[i]
	}

	// The mover and the denormalized user email come from the same nested object.
	assert.Equal(t, "rep@example.com", *byColumn["lead_user_email"].(*string))
	assert.Equal(t, "rep@example.com", *byColumn["moved_by"].(*string))
}

func TestLeadDeletedProjectionUsesUpdatedAt(t *testing.T) {
	data := entity.Payload{
		"id":         float64(5),
		"title":      "Stale deal",
		"updated_at": "2024-02-01T09:00:00.000Z",
	}

	values := leadDeletedSpec.project(data)
	byColumn := map[string]any{}
	for i, col := range leadDeletedSpec.columns {
		byColumn[col] = values[i]
	}

	assert.Equal(t, "2024-02-01T09:00:00.000Z", *byColumn["deleted_at_utc"].(*string))
}

func TestClientFolderCreatedProjection(t *testing.T) {
	data := entity.Payload{
		"id":         float64(7),
		"name":       "North",
		"created_at": "2024-03-01T00:00:00.000Z",
	}

	values := clientFolderCreatedSpec.project(data)
	require.Len(t, values, 3)
	assert.Equal(t, int64(7), *values[0].(*int64))
	assert.Equal(t, "North", *values[1].(*string))
	assert.Equal(t, "2024-03-01T00:00:00.000Z", *values[2].(*string))
}
