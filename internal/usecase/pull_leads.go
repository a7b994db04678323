package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/entity"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/integration/crm"
)

// PullLeadsUseCase drives one batch run: drain the search endpoint, normalize
// timestamps, replace the local rows wholesale. A failure anywhere discards
// the in-memory batch; the next run re-fetches the window and the upsert key
// keeps that idempotent.
type PullLeadsUseCase struct {
	Client     LeadSearcher
	Store      entity.LeadWriterInterface
	Normalizer *TimezoneNormalizer
}

func NewPullLeadsUseCase(client LeadSearcher, store entity.LeadWriterInterface, normalizer *TimezoneNormalizer) *PullLeadsUseCase {
	return &PullLeadsUseCase{
		Client:     client,
		Store:      store,
		Normalizer: normalizer,
	}
}

// Execute returns the number of leads fetched and upserted.
func (uc *PullLeadsUseCase) Execute(ctx context.Context, params crm.SearchParams) (int, error) {
	leads, err := uc.Client.SearchLeads(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("fetch leads: %w", err)
	}

	rows := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, uc.toRow(l))
	}

	if err := uc.Store.UpsertAll(rows); err != nil {
		return 0, fmt.Errorf("upsert leads: %w", err)
	}
	return len(rows), nil
}

func (uc *PullLeadsUseCase) toRow(l crm.Lead) entity.Lead {
	var tags *string
	if len(l.Tags) > 0 {
		joined := strings.Join(l.Tags, ",")
		tags = &joined
	}

	var starred *int
	if l.Starred != nil {
		v := 0
		if *l.Starred {
			v = 1
		}
		starred = &v
	}

	return entity.Lead{
		ID:                   l.ID,
		Title:                l.Title,
		Pipeline:             l.Pipeline,
		Step:                 l.Step,
		StepID:               l.StepID,
		Status:               l.Status,
		Amount:               l.Amount,
		Probability:          l.Probability,
		Currency:             l.Currency,
		Starred:              starred,
		RemindDate:           l.RemindDate,
		RemindTime:           l.RemindTime,
		NextActionAt:         uc.Normalizer.Normalize(l.NextActionAt),
		CreatedAt:            uc.Normalizer.Normalize(l.CreatedAt),
		EstimatedClosingDate: l.EstimatedClosingDate,
		UpdatedAt:            uc.Normalizer.Normalize(l.UpdatedAt),
		Description:          l.Description,
		HTMLDescription:      l.HTMLDescription,
		Tags:                 tags,
		CreatedFrom:          l.CreatedFrom,
		ClosedAt:             uc.Normalizer.Normalize(l.ClosedAt),
		AttachmentCount:      l.AttachmentCount,
		CreatedByID:          l.CreatedByID,
		UserID:               l.UserID,
		ClientFolderID:       l.ClientFolderID,
		ClientFolderName:     l.ClientFolderName,
		TeamID:               l.TeamID,
		TeamName:             l.TeamName,
	}
}
