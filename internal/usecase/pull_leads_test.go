package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/entity"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/integration/crm"
)

type fakeSearcher struct {
	leads []crm.Lead
	err   error
}

func (f *fakeSearcher) SearchLeads(ctx context.Context, params crm.SearchParams) ([]crm.Lead, error) {
	return f.leads, f.err
}

type fakeWriter struct {
	rows []entity.Lead
	err  error
}

func (f *fakeWriter) UpsertAll(leads []entity.Lead) error {
	f.rows = leads
	return f.err
}

func boolPtr(b bool) *bool { return &b }

func TestPullLeadsMapsAndUpserts(t *testing.T) {
	normalizer, err := NewTimezoneNormalizer("America/New_York")
	require.NoError(t, err)

	searcher := &fakeSearcher{leads: []crm.Lead{
		{
			ID:        1,
			Title:     strPtr("Acme deal"),
			Tags:      []string{"hot", "q3"},
			Starred:   boolPtr(true),
			CreatedAt: strPtr("2024-01-15T12:00:00.000Z"),
		},
		{
			ID:      2,
			Starred: boolPtr(false),
		},
		{
			ID: 3,
		},
	}}
	writer := &fakeWriter{}

	uc := NewPullLeadsUseCase(searcher, writer, normalizer)
	count, err := uc.Execute(context.Background(), crm.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, writer.rows, 3)

	first := writer.rows[0]
	assert.Equal(t, int64(1), first.ID)
	require.NotNil(t, first.Tags)
	assert.Equal(t, "hot,q3", *first.Tags)
	require.NotNil(t, first.Starred)
	assert.Equal(t, 1, *first.Starred)
	require.NotNil(t, first.CreatedAt)
	assert.Equal(t, "2024-01-15 07:00:00", *first.CreatedAt)

	// starred=false stays 0, distinct from absent.
	second := writer.rows[1]
	require.NotNil(t, second.Starred)
	assert.Equal(t, 0, *second.Starred)
	assert.Nil(t, second.Tags)

	third := writer.rows[2]
	assert.Nil(t, third.Starred)
	assert.Nil(t, third.CreatedAt)
}

func TestPullLeadsFetchFailureAbortsRun(t *testing.T) {
	normalizer, err := NewTimezoneNormalizer("UTC")
	require.NoError(t, err)

	searcher := &fakeSearcher{err: errors.New("crm search returned 500: boom")}
	writer := &fakeWriter{}

	uc := NewPullLeadsUseCase(searcher, writer, normalizer)
	_, err = uc.Execute(context.Background(), crm.SearchParams{})
	assert.Error(t, err)
	assert.Nil(t, writer.rows, "nothing may reach the store on a failed fetch")
}

func TestPullLeadsUpsertFailureSurfaces(t *testing.T) {
	normalizer, err := NewTimezoneNormalizer("UTC")
	require.NoError(t, err)

	searcher := &fakeSearcher{leads: []crm.Lead{{ID: 1}}}
	writer := &fakeWriter{err: errors.New("disk full")}

	uc := NewPullLeadsUseCase(searcher, writer, normalizer)
	_, err = uc.Execute(context.Background(), crm.SearchParams{})
	assert.ErrorContains(t, err, "upsert leads")
}
