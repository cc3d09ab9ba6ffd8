package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/movya/candidate-suite/internal/config"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/movya/candidate-suite/internal/sheet"
)

// SheetService reads the two published sheet exports. Fetches fail only on
// transport errors or a non-success status; row-level parse problems come
// back as warnings.
type SheetService struct {
	client *resty.Client
	cfg    *config.SheetConfig
}

func NewSheetService(cfg *config.SheetConfig) *SheetService {
	return &SheetService{
		client: resty.New().SetTimeout(30 * time.Second),
		cfg:    cfg,
	}
}

func (s *SheetService) FetchRoster(ctx context.Context) (sheet.RosterTable, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.cfg.RosterURL)
	if err != nil {
		return sheet.RosterTable{}, fmt.Errorf("failed to fetch data: %w", err)
	}
	if resp.IsError() {
		return sheet.RosterTable{}, fmt.Errorf("failed to fetch data: %s", resp.Status())
	}
	return sheet.ParseRoster(resp.String()), nil
}

func (s *SheetService) FetchSelection(ctx context.Context) ([]model.SelectionCandidate, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.cfg.SelectionURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch selection data: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch selection data: %s", resp.Status())
	}
	return sheet.ParseGviz(resp.String())
}
