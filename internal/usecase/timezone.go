package usecase

import (
	"log"
	"time"
)

// crmTimeLayout is how normalized timestamps are stored: local wall time in
// the configured zone, no zone suffix.
const crmTimeLayout = "2006-01-02 15:04:05"

// TimezoneNormalizer converts the CRM's UTC timestamps into one configured
// named zone. The zone is a real location, not a fixed offset, so DST
// transitions come out right.
type TimezoneNormalizer struct {
	loc *time.Location
}

func NewTimezoneNormalizer(name string) (*TimezoneNormalizer, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return &TimezoneNormalizer{loc: loc}, nil
}

// Normalize accepts either a full UTC stamp with fractional seconds
// ("2024-01-15T12:00:00.000Z") or a bare date ("2024-01-15", midnight UTC)
// and renders local wall time. Absent input passes through as nil; an
// unrecognized shape logs a diagnostic and degrades to nil rather than
// failing the run.
func (n *TimezoneNormalizer) Normalize(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	utc, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		utc, err = time.Parse("2006-01-02", *value)
		if err != nil {
			log.Printf("unrecognized date format: %s", *value)
			return nil
		}
	}

	local := utc.In(n.loc).Format(crmTimeLayout)
	return &local
}
