package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	defaultScriptURL   = "https://script.google.com/macros/s/AKfycbwOVIkI2i7RblNun3z4jYVVij_3W714adk_XxHjdpz67QtAn5U8vxACY4RMEW8uqEUq/exec"
	defaultActionURL   = "https://n8n.movya.com/webhook/d6804eae-5fac-4c53-a274-75b9db15d0eb"
	defaultWorkflowURL = "https://n8n.movya.com/webhook/45df636b-5565-4d8c-91fe-80c8af5ac965"
	defaultPostURL     = "https://n8n.movya.com/webhook/movya-post"
)

type WebhookConfig struct {
	// ScriptURL is the Apps Script web app that writes to the roster sheet.
	ScriptURL string
	// ActionURL resolves canonical field values before update/delete commits.
	ActionURL string
	// WorkflowURL receives accept/reject decisions for the selection queue.
	WorkflowURL string
	// PostURL publishes LinkedIn job posts.
	PostURL string
	// AcceptDelay is the settle time before an accept/reject webhook fires.
	AcceptDelay time.Duration
}

var (
	webhookConfig *WebhookConfig
	webhookOnce   sync.Once
)

func LoadWebhookConfig() *WebhookConfig {
	webhookOnce.Do(func() {
		scriptURL := os.Getenv("SHEET_SCRIPT_URL")
		if scriptURL == "" {
			scriptURL = defaultScriptURL
		}
		actionURL := os.Getenv("WEBHOOK_ACTION_URL")
		if actionURL == "" {
			actionURL = defaultActionURL
		}
		workflowURL := os.Getenv("WEBHOOK_WORKFLOW_URL")
		if workflowURL == "" {
			workflowURL = defaultWorkflowURL
		}
		postURL := os.Getenv("WEBHOOK_POST_URL")
		if postURL == "" {
			postURL = defaultPostURL
		}
		delay := 10 * time.Second
		if raw := os.Getenv("WORKFLOW_SETTLE_SECONDS"); raw != "" {
			if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
				delay = time.Duration(secs) * time.Second
			}
		}
		webhookConfig = &WebhookConfig{
			ScriptURL:   scriptURL,
			ActionURL:   actionURL,
			WorkflowURL: workflowURL,
			PostURL:     postURL,
			AcceptDelay: delay,
		}
	})
	return webhookConfig
}
