package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/movya/candidate-suite/internal/config"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/tidwall/gjson"
)

// ResolvedFields is what the action webhook may hand back before an update
// or delete commits. Fields the webhook does not override keep the submitted
// values; RowIndex stays nil unless the webhook returned a number.
type ResolvedFields struct {
	Name     string
	Email    string
	Phone    string
	JobRole  string
	RowIndex *int
}

// WebhookService calls the n8n automation webhooks. Responses are parsed
// best-effort: a non-JSON or empty body is treated as an empty object, only
// transport errors and non-success statuses fail the call.
type WebhookService struct {
	client *resty.Client
	cfg    *config.WebhookConfig
}

func NewWebhookService(cfg *config.WebhookConfig) *WebhookService {
	return &WebhookService{
		client: resty.New().SetTimeout(30 * time.Second),
		cfg:    cfg,
	}
}

func (s *WebhookService) post(ctx context.Context, url string, payload map[string]any) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return "", errors.New("webhook call failed")
	}
	if resp.IsError() {
		return "", errors.New("webhook call failed")
	}
	body := resp.String()
	if !gjson.Valid(body) {
		body = "{}"
	}
	return body, nil
}

// firstString probes the known key spellings and returns the first non-empty
// string, or fallback when none match.
func firstString(body, fallback string, keys ...string) string {
	for _, key := range keys {
		if v := gjson.Get(body, key); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return fallback
}

// rowIndex probes the known key spellings and accepts only a numeric value.
func rowIndex(body string, keys ...string) *int {
	for _, key := range keys {
		if v := gjson.Get(body, key); v.Type == gjson.Number {
			idx := int(v.Int())
			return &idx
		}
	}
	return nil
}

func resolved(body string, name, email, phone, jobRole string) ResolvedFields {
	return ResolvedFields{
		Name:     firstString(body, name, "Name", "name"),
		Email:    firstString(body, email, "Email", "email"),
		Phone:    firstString(body, phone, "Phone Number", "phone", "phoneNumber"),
		JobRole:  firstString(body, jobRole, "Job Role Admin", "jobRoleAdmin", "job_role_admin", "jobRole", "JobRoleAdmin"),
		RowIndex: rowIndex(body, "RowIndex", "rowIndex", "index", "row"),
	}
}

// OriginalKey is the identity an edit was started from, sent alongside the
// proposed values so the webhook can locate the row.
type OriginalKey struct {
	Name  string
	Email string
	Phone string
}

// ResolveSave announces a pending edit and lets the webhook override the
// submitted values with canonical ones.
func (s *WebhookService) ResolveSave(ctx context.Context, original OriginalKey, updated model.CandidateLite) (ResolvedFields, error) {
	payload := map[string]any{
		"Type": "Save",
		"original": map[string]string{
			"Name":         original.Name,
			"Email":        original.Email,
			"Phone Number": original.Phone,
		},
		"updated": updated,
	}
	body, err := s.post(ctx, s.cfg.ActionURL, payload)
	if err != nil {
		return ResolvedFields{}, err
	}
	return resolved(body, updated.Name, updated.Email, updated.Phone, updated.JobRole), nil
}

// ResolveDelete asks the webhook for the canonical identity of the row about
// to be removed.
func (s *WebhookService) ResolveDelete(ctx context.Context, name, email, phone, jobRole string) (ResolvedFields, error) {
	payload := map[string]any{
		"Type":         "Delete",
		"Name":         name,
		"Email":        email,
		"Phone Number": phone,
	}
	body, err := s.post(ctx, s.cfg.ActionURL, payload)
	if err != nil {
		return ResolvedFields{}, err
	}
	return resolved(body, name, email, phone, jobRole), nil
}

// Decide notifies the workflow webhook of an accept or reject. The response
// body is ignored.
func (s *WebhookService) Decide(ctx context.Context, decision, name, email, phone, jobRole string) error {
	payload := map[string]any{
		"Type":           decision,
		"Name":           name,
		"Email":          email,
		"Phone Number":   phone,
		"Job Role Admin": jobRole,
	}
	_, err := s.post(ctx, s.cfg.WorkflowURL, payload)
	return err
}

// PublishPost sends a LinkedIn post request. The webhook may echo corrected
// field values; submitted values stand in for anything missing.
func (s *WebhookService) PublishPost(ctx context.Context, position, experience, skill string) (string, string, string, error) {
	payload := map[string]any{
		"Type":       "LinkedInPost",
		"Position":   position,
		"Experience": experience,
		"Skill":      skill,
	}
	body, err := s.post(ctx, s.cfg.PostURL, payload)
	if err != nil {
		return "", "", "", err
	}
	return firstString(body, position, "Position", "position"),
		firstString(body, experience, "Experience", "experience"),
		firstString(body, skill, "Skill", "skill"),
		nil
}
