package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/movya/candidate-suite/internal/model"
	"github.com/movya/candidate-suite/internal/reconcile"
	"github.com/movya/candidate-suite/internal/repository"
	"github.com/movya/candidate-suite/internal/service"
	"github.com/movya/candidate-suite/internal/util"
)

var (
	ErrNotInQueue        = errors.New("candidate is not in the selection queue")
	ErrAlreadyProcessing = errors.New("candidate is already being processed")
)

const (
	decisionAccept = "Accept"
	decisionReject = "Reject"
)

// SelectionUsecase keeps the selection-queue cache and runs accept/reject
// decisions. A per-email gate holds each record in a processing state for
// the whole settle delay + webhook call, so a second decision on the same
// record is refused instead of double-submitted.
type SelectionUsecase struct {
	mu    sync.RWMutex
	queue []model.SelectionCandidate

	gateMu sync.Mutex
	gate   map[string]struct{}

	sheets  *service.SheetService
	webhook *service.WebhookService
	api     *service.RosterAPIService
	store   repository.TimestampStore
	roster  *CandidateUsecase
	delay   time.Duration
}

func NewSelectionUsecase(sheets *service.SheetService, webhook *service.WebhookService, api *service.RosterAPIService, store repository.TimestampStore, roster *CandidateUsecase, delay time.Duration) *SelectionUsecase {
	return &SelectionUsecase{
		gate:    make(map[string]struct{}),
		sheets:  sheets,
		webhook: webhook,
		api:     api,
		store:   store,
		roster:  roster,
		delay:   delay,
	}
}

// Refresh re-ingests the queue; records that already carry a Type were
// decided elsewhere and are filtered out.
func (uc *SelectionUsecase) Refresh(ctx context.Context) error {
	records, err := uc.sheets.FetchSelection(ctx)
	if err != nil {
		return err
	}
	filtered := reconcile.FilterUntyped(records)
	uc.mu.Lock()
	uc.queue = filtered
	uc.mu.Unlock()
	return nil
}

func (uc *SelectionUsecase) List() []model.SelectionCandidate {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]model.SelectionCandidate, len(uc.queue))
	copy(out, uc.queue)
	return out
}

// Processing lists the emails currently held by the decision gate so the UI
// can disable their controls.
func (uc *SelectionUsecase) Processing() []string {
	uc.gateMu.Lock()
	defer uc.gateMu.Unlock()
	emails := make([]string, 0, len(uc.gate))
	for email := range uc.gate {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

func (uc *SelectionUsecase) Accept(ctx context.Context, email string) (string, error) {
	return uc.decide(ctx, email, decisionAccept)
}

func (uc *SelectionUsecase) Reject(ctx context.Context, email string) (string, error) {
	return uc.decide(ctx, email, decisionReject)
}

func (uc *SelectionUsecase) find(email string) (model.SelectionCandidate, bool) {
	for _, rec := range uc.List() {
		if rec.Email() == email {
			return rec, true
		}
	}
	return nil, false
}

func (uc *SelectionUsecase) acquire(email string) bool {
	uc.gateMu.Lock()
	defer uc.gateMu.Unlock()
	if _, busy := uc.gate[email]; busy {
		return false
	}
	uc.gate[email] = struct{}{}
	return true
}

func (uc *SelectionUsecase) release(email string) {
	uc.gateMu.Lock()
	defer uc.gateMu.Unlock()
	delete(uc.gate, email)
}

func (uc *SelectionUsecase) removeLocal(email string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	kept := uc.queue[:0]
	for _, rec := range uc.queue {
		if rec.Email() != email {
			kept = append(kept, rec)
		}
	}
	uc.queue = kept
}

func (uc *SelectionUsecase) decide(ctx context.Context, email, decision string) (string, error) {
	rec, ok := uc.find(email)
	if !ok {
		return "", ErrNotInQueue
	}
	if !uc.acquire(email) {
		return "", ErrAlreadyProcessing
	}
	defer uc.release(email)

	name := rec.Name()
	if name == "" {
		name = "Unknown"
	}

	// settle delay before the webhook fires; the automation reads the sheet
	// and needs the row state to be stable by then
	select {
	case <-ctx.Done():
		return name, ctx.Err()
	case <-time.After(uc.delay):
	}

	if err := uc.webhook.Decide(ctx, decision, name, rec.Email(), rec.Mobile(), rec.JobRole()); err != nil {
		return name, err
	}

	// remove locally only after the webhook confirmed; a failed call must
	// leave the record visible and interactable
	uc.removeLocal(email)

	if decision == decisionAccept {
		data := model.CandidateLite{
			Name:     name,
			Email:    rec.Email(),
			Phone:    rec.Mobile(),
			JobRole:  rec.JobRole(),
			Datetime: util.NowDatetime(),
		}
		if err := uc.api.Create(ctx, data); err != nil {
			// no compensation: the queue removal stands, the caller sees the
			// failure and the next re-ingestion reconciles
			return name, err
		}
		uc.store.Set(data.Name, data.Email, data.Datetime)
		uc.refreshLater(true)
	} else {
		uc.refreshLater(false)
	}
	return name, nil
}

// refreshLater re-ingests the queue, and the roster too after an accept,
// without blocking the success response.
func (uc *SelectionUsecase) refreshLater(roster bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := uc.Refresh(ctx); err != nil {
			log.Printf("selection refresh failed: %v", err)
		}
		if roster {
			if err := uc.roster.Refresh(ctx); err != nil {
				log.Printf("roster refresh failed: %v", err)
			}
		}
	}()
}
