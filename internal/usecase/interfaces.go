package usecase

import (
	"context"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/integration/crm"
)

type LeadSearcher interface {
	SearchLeads(ctx context.Context, params crm.SearchParams) ([]crm.Lead, error)
}
