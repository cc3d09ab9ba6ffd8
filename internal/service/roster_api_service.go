package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/movya/candidate-suite/internal/config"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/tidwall/gjson"
)

// RosterAPIService talks to the Apps Script web app that owns the roster
// sheet. The wire protocol is a single POST endpoint dispatching on "action".
type RosterAPIService struct {
	client *resty.Client
	cfg    *config.WebhookConfig
}

func NewRosterAPIService(cfg *config.WebhookConfig) *RosterAPIService {
	return &RosterAPIService{
		client: resty.New().SetTimeout(30 * time.Second),
		cfg:    cfg,
	}
}

func (s *RosterAPIService) Create(ctx context.Context, data model.CandidateLite) error {
	return s.request(ctx, map[string]any{"action": "create", "data": data})
}

func (s *RosterAPIService) Update(ctx context.Context, key model.UpdateKey, data model.CandidateLite) error {
	return s.request(ctx, map[string]any{"action": "update", "key": key, "data": data})
}

func (s *RosterAPIService) Delete(ctx context.Context, key model.UpdateKey) error {
	return s.request(ctx, map[string]any{"action": "delete", "key": key})
}

func (s *RosterAPIService) request(ctx context.Context, payload map[string]any) error {
	if s.cfg.ScriptURL == "" {
		return errors.New("apps script URL is not configured")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	// Apps Script only answers simple requests; a JSON content type would
	// force a CORS preflight it cannot handle, so the body goes as text.
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain;charset=UTF-8").
		SetBody(body).
		Post(s.cfg.ScriptURL)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("request failed: %d %s", resp.StatusCode(), resp.String())
	}
	if !gjson.ValidBytes(resp.Body()) {
		return errors.New("request failed: invalid response body")
	}
	// HTTP success with an explicit failure flag is still a failure.
	if success := gjson.GetBytes(resp.Body(), "success"); success.Exists() && !success.Bool() {
		message := gjson.GetBytes(resp.Body(), "message").String()
		if message == "" {
			message = "Failed"
		}
		return errors.New(message)
	}
	return nil
}
