package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/entity"
	"github.com/angomezu/Cloud-Based-BI-ETL-Automation-for-Real-Estate-Company/internal/infra/http/middleware"
)

type EventStoreInterface interface {
	InsertLeadStepChanged(ctx context.Context, account string, env *entity.EventEnvelope) error
	InsertLeadCreated(ctx context.Context, account string, env *entity.EventEnvelope) error
	InsertLeadDeleted(ctx context.Context, account string, env *entity.EventEnvelope) error
	InsertClientFolderCreated(ctx context.Context, account string, env *entity.EventEnvelope) error
}

// WebhookHandler accepts CRM push notifications scoped by account. Each
// request is isolated: a persistence failure is logged and answered with a
// 500, and the receiver keeps serving.
type WebhookHandler struct {
	Events   EventStoreInterface
	Accounts map[string]bool
}

func NewWebhookHandler(events EventStoreInterface, accounts map[string]bool) *WebhookHandler {
	return &WebhookHandler{
		Events:   events,
		Accounts: accounts,
	}
}

// webhookBody is the fixed top-level wrapper the CRM posts.
type webhookBody struct {
	WebhookEvent *entity.EventEnvelope `json:"webhook_event"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	// Allow-list gate before anything touches the store; table names are
	// derived from the account segment.
	if !h.Accounts[account] {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid account"})
		return
	}

	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid content type"})
		return
	}

	var body webhookBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	env := body.WebhookEvent
	if env == nil {
		env = &entity.EventEnvelope{}
	}

	if err := h.dispatch(r.Context(), account, env); err != nil {
		log.Printf("error processing webhook for account '%s' and event '%s': %v", account, env.Event, err)
		middleware.RecordWebhookEvent(account, env.Event, "error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"account": account,
		"event":   env.Event,
	})
}

func (h *WebhookHandler) dispatch(ctx context.Context, account string, env *entity.EventEnvelope) error {
	var err error

	switch env.Event {
	case entity.EventLeadStepChanged:
		err = h.Events.InsertLeadStepChanged(ctx, account, env)
	case entity.EventLeadCreated:
		err = h.Events.InsertLeadCreated(ctx, account, env)
	case entity.EventLeadDeleted:
		err = h.Events.InsertLeadDeleted(ctx, account, env)
	case entity.EventClientFolderCreated:
		err = h.Events.InsertClientFolderCreated(ctx, account, env)
	default:
		// Unknown events are acknowledged, not failed: the CRM adds event
		// types over time and retry storms help nobody.
		log.Printf("[%s][UNHANDLED EVENT] %s", strings.ToUpper(account), env.Event)
		middleware.RecordWebhookEvent(account, env.Event, "unhandled")
		return nil
	}

	if err == nil {
		middleware.RecordWebhookEvent(account, env.Event, "ok")
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
