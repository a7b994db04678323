package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/config"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/database"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/integration/crm"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/usecase"
)

// One-shot batch job: pull the configured date range from the CRM and
// replace the local leads table contents. Meant to run from cron; any
// failure exits non-zero and the next run starts from scratch.
func main() {
	cfg := config.Load()

	var startDate, endDate, rangeType, dbPath string
	flag.StringVar(&startDate, "start", cfg.StartDate, "Pull window start (UTC, e.g. 2018-01-01T00:00:00.000Z).")
	flag.StringVar(&endDate, "end", cfg.EndDate, "Pull window end (UTC).")
	flag.StringVar(&rangeType, "range-type", cfg.DateRangeType, "Date range discriminator (creation, update, ...).")
	flag.StringVar(&dbPath, "db", cfg.LeadsDBPath, "SQLite database path.")
	flag.Parse()

	normalizer, err := usecase.NewTimezoneNormalizer(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %q: %v", cfg.Timezone, err)
	}

	db, err := database.OpenLeadDB(dbPath)
	if err != nil {
		log.Fatalf("open leads db: %v", err)
	}

	uc := usecase.NewPullLeadsUseCase(
		crm.NewClient(cfg.CRMAPIKey, cfg.CRMBaseURL),
		database.NewLeadStore(db),
		normalizer,
	)

	runID := uuid.NewString()[:8]
	log.Printf("[run %s] pulling leads %s .. %s (%s)", runID, startDate, endDate, rangeType)

	count, err := uc.Execute(context.Background(), crm.SearchParams{
		StartDate:     startDate,
		EndDate:       endDate,
		DateRangeType: rangeType,
	})
	if err != nil {
		log.Fatalf("[run %s] pull failed: %v", runID, err)
	}

	log.Printf("[run %s] done: %d leads upserted into %s", runID, count, dbPath)
}
