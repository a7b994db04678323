package entity

import "encoding/json"

// Event names the CRM pushes. Anything else is acknowledged and ignored.
const (
	EventLeadStepChanged     = "lead.step.changed"
	EventLeadCreated         = "lead.creation"
	EventLeadDeleted         = "lead.deleted"
	EventClientFolderCreated = "client_folder.created"
)

// EventEnvelope is the delivery metadata the CRM wraps around every push,
// found under the top-level "webhook_event" key. ID is unique per delivery
// attempt and is the de-duplication key for the audit tables.
type EventEnvelope struct {
	ID               string  `json:"id"`
	Event            string  `json:"event"`
	Signature        string  `json:"signature"`
	HasSucceeded     bool    `json:"has_succeeded"`
	TryCount         int     `json:"try_count"`
	LastReturnedCode *int    `json:"last_returned_code"`
	Data             Payload `json:"data"`
}

// Archive serializes the full envelope plus payload back into the wire shape
// so every audit row keeps fields we never projected into columns.
func (e *EventEnvelope) Archive() ([]byte, error) {
	return json.Marshal(map[string]*EventEnvelope{"webhook_event": e})
}

// Payload is the loosely-typed event body. The CRM does not guarantee any
// key, so every accessor returns nil on missing or mistyped values instead
// of failing the delivery.
type Payload map[string]any

func (p Payload) String(key string) *string {
	if v, ok := p[key].(string); ok {
		return &v
	}
	return nil
}

// Float reads a number the way encoding/json delivers it: float64. Anything
// else under the key is treated as missing.
func (p Payload) Float(key string) *float64 {
	if v, ok := p[key].(float64); ok {
		return &v
	}
	return nil
}

func (p Payload) Int64(key string) *int64 {
	if f := p.Float(key); f != nil {
		n := int64(*f)
		return &n
	}
	return nil
}

// UserEmail digs into the nested user object.
func (p Payload) UserEmail() *string {
	if u, ok := p["user"].(map[string]any); ok {
		return Payload(u).String("email")
	}
	return nil
}

// ClientFolder returns the folder id/name pair from "client_folder" (the
// documented key) or "client" (what live payloads actually carry). First
// non-empty object wins.
func (p Payload) ClientFolder() (*int64, *string) {
	for _, key := range []string{"client_folder", "client"} {
		if cf, ok := p[key].(map[string]any); ok && len(cf) > 0 {
			return Payload(cf).Int64("id"), Payload(cf).String("name")
		}
	}
	return nil, nil
}
