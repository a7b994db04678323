package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is loaded once at process start and passed explicitly into whatever
// needs it. Nothing mutates it afterwards.
type Config struct {
	// Webhook audit store (Postgres). DatabaseURL wins when set, otherwise
	// the DSN is assembled from the discrete DB_* parts.
	DatabaseURL string

	// Analytical store (SQLite file) fed by the batch puller.
	LeadsDBPath string

	CRMAPIKey  string
	CRMBaseURL string

	// Target zone for timestamp normalization, e.g. "America/Bogota".
	Timezone string

	// Accounts allowed to post webhooks. Table names are derived from these,
	// so the list doubles as SQL-injection protection.
	Accounts []string

	Port string

	// Pull window defaults for the batch job.
	StartDate     string
	EndDate       string
	DateRangeType string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		DatabaseURL:   buildDatabaseURL(),
		LeadsDBPath:   getenv("LEADS_DB_PATH", "leads.db"),
		CRMAPIKey:     os.Getenv("CRM_API_KEY"),
		CRMBaseURL:    os.Getenv("CRM_BASE_URL"),
		Timezone:      getenv("CRM_TIMEZONE", "UTC"),
		Port:          getenv("PORT", "10000"),
		StartDate:     getenv("PULL_START_DATE", "2018-01-01T00:00:00.000Z"),
		EndDate:       getenv("PULL_END_DATE", "2025-12-31T23:59:59.999Z"),
		DateRangeType: getenv("PULL_DATE_RANGE_TYPE", "creation"),
	}

	for _, a := range strings.Split(getenv("ALLOWED_ACCOUNTS", "office_a,office_b,office_c"), ",") {
		if a = strings.TrimSpace(a); a != "" {
			cfg.Accounts = append(cfg.Accounts, a)
		}
	}

	return cfg
}

// AllowedAccounts returns the allow-list as a set for request-time lookups.
func (c *Config) AllowedAccounts() map[string]bool {
	set := make(map[string]bool, len(c.Accounts))
	for _, a := range c.Accounts {
		set[a] = true
	}
	return set
}

func buildDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		os.Getenv("DB_NAME"),
		getenv("DB_SSLMODE", "disable"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
