package entity

// Lead is one row of the local analytical store. The CRM is the source of
// truth: every pull replaces the full row, so all nullable columns are
// pointers to keep "absent upstream" distinct from zero values.
type Lead struct {
	ID                   int64    `gorm:"primaryKey" json:"id"`
	Title                *string  `json:"title"`
	Pipeline             *string  `json:"pipeline"`
	Step                 *string  `json:"step"`
	StepID               *int64   `json:"step_id"`
	Status               *string  `json:"status"`
	Amount               *float64 `json:"amount"`
	Probability          *float64 `json:"probability"`
	Currency             *string  `json:"currency"`
	Starred              *int     `json:"starred"` // 1/0, nil when the CRM omitted the flag
	RemindDate           *string  `json:"remind_date"`
	RemindTime           *string  `json:"remind_time"`
	NextActionAt         *string  `json:"next_action_at"`
	CreatedAt            *string  `json:"created_at"`
	EstimatedClosingDate *string  `json:"estimated_closing_date"`
	UpdatedAt            *string  `json:"updated_at"`
	Description          *string  `json:"description"`
	HTMLDescription      *string  `gorm:"column:html_description" json:"html_description"`
	Tags                 *string  `json:"tags"` // comma-joined
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

func (Lead) TableName() string {
	return "leads"
}

type LeadWriterInterface interface {
	UpsertAll(leads []Lead) error
}
