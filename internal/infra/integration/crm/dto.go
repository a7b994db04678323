package crm

// Lead mirrors one element of the search endpoint's JSON array. Nullable
// fields stay pointers so downstream can tell "absent" from zero — notably
// Starred, where a missing flag must not collapse into false.
type Lead struct {
	ID                   int64    `json:"id"`
	Title                *string  `json:"title"`
	Pipeline             *string  `json:"pipeline"`
	Step                 *string  `json:"step"`
	StepID               *int64   `json:"step_id"`
	Status               *string  `json:"status"`
	Amount               *float64 `json:"amount"`
	Probability          *float64 `json:"probability"`
	Currency             *string  `json:"currency"`
	Starred              *bool    `json:"starred"`
	RemindDate           *string  `json:"remind_date"`
	RemindTime           *string  `json:"remind_time"`
	NextActionAt         *string  `json:"next_action_at"`
	CreatedAt            *string  `json:"created_at"`
	EstimatedClosingDate *string  `json:"estimated_closing_date"`
	UpdatedAt            *string  `json:"updated_at"`
	Description          *string  `json:"description"`
	HTMLDescription      *string  `json:"html_description"`
	Tags                 []string `json:"tags"`
	CreatedFrom          *string  `json:"created_from"`
	ClosedAt             *string  `json:"closed_at"`
	AttachmentCount      *int64   `json:"attachment_count"`
	CreatedByID          *int64   `json:"created_by_id"`
	UserID               *int64   `json:"user_id"`
	ClientFolderID       *int64   `json:"client_folder_id"`
	ClientFolderName     *string  `json:"client_folder_name"`
	TeamID               *int64   `json:"team_id"`
	TeamName             *string  `json:"team_name"`
}

// SearchParams is the closed date range for one pull run.
type SearchParams struct {
	StartDate     string
	EndDate       string
	DateRangeType string
}
