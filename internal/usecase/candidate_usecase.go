package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/movya/candidate-suite/internal/dto"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/movya/candidate-suite/internal/reconcile"
	"github.com/movya/candidate-suite/internal/repository"
	"github.com/movya/candidate-suite/internal/service"
	"github.com/movya/candidate-suite/internal/util"
)

// ErrDuplicateCandidate means a create matched an existing (Name, Email)
// pair case-insensitively. No network call happens in that case.
var ErrDuplicateCandidate = errors.New("a candidate with this name and email combination already exists")

// CandidateUsecase keeps the in-memory roster cache and runs all roster
// mutations. The cache is a transient view of the sheet: the remote side is
// authoritative and every successful mutation schedules a re-ingestion.
type CandidateUsecase struct {
	mu         sync.RWMutex
	roster     []model.Candidate
	fieldOrder []string

	sheets  *service.SheetService
	api     *service.RosterAPIService
	webhook *service.WebhookService
	store   repository.TimestampStore
}

func NewCandidateUsecase(sheets *service.SheetService, api *service.RosterAPIService, webhook *service.WebhookService, store repository.TimestampStore) *CandidateUsecase {
	return &CandidateUsecase{
		sheets:  sheets,
		api:     api,
		webhook: webhook,
		store:   store,
	}
}

// Refresh re-ingests the roster export and replaces the cache. Ingestion
// also stamps a first-seen timestamp for every identity; the store keeps
// only the earliest one.
func (uc *CandidateUsecase) Refresh(ctx context.Context) error {
	table, err := uc.sheets.FetchRoster(ctx)
	if err != nil {
		return err
	}
	for _, warning := range table.Warnings {
		log.Printf("roster parse warning: %s", warning)
	}

	ordered := reconcile.OrderRoster(table.Candidates)
	firstSeen := util.NowDatetime()
	for _, c := range ordered {
		if c.Name() != "" || c.Email() != "" {
			uc.store.Set(c.Name(), c.Email(), firstSeen)
		}
	}

	uc.mu.Lock()
	uc.roster = ordered
	uc.fieldOrder = table.Headers
	uc.mu.Unlock()
	return nil
}

func (uc *CandidateUsecase) List() []model.Candidate {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]model.Candidate, len(uc.roster))
	copy(out, uc.roster)
	return out
}

// FieldOrder is the sheet's column order from the last ingestion.
func (uc *CandidateUsecase) FieldOrder() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]string, len(uc.fieldOrder))
	copy(out, uc.fieldOrder)
	return out
}

// Unique is the de-duplicated list for dropdown pickers.
func (uc *CandidateUsecase) Unique() []model.Candidate {
	return reconcile.UniqueCandidates(uc.List())
}

// AutoSelected is the record to highlight on first load.
func (uc *CandidateUsecase) AutoSelected() (model.Candidate, bool) {
	return reconcile.AutoSelect(uc.List())
}

// Find locates a cached record by exact name and case-insensitive email.
func (uc *CandidateUsecase) Find(name, email string) (model.Candidate, bool) {
	for _, c := range uc.List() {
		if c.Name() == strings.TrimSpace(name) && strings.EqualFold(c.Email(), strings.TrimSpace(email)) {
			return c, true
		}
	}
	return nil, false
}

// FirstSeen returns the stored first-seen timestamp for an identity.
func (uc *CandidateUsecase) FirstSeen(name, email string) (string, bool) {
	return uc.store.Get(name, email)
}

func (uc *CandidateUsecase) isDuplicate(name, email string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	email = strings.ToLower(strings.TrimSpace(email))
	for _, c := range uc.List() {
		if strings.ToLower(c.Name()) == name && strings.ToLower(c.Email()) == email {
			return true
		}
	}
	return false
}

// Create validates, guards against duplicates and commits a new roster row.
// Validation and duplicate failures happen before any network call.
func (uc *CandidateUsecase) Create(ctx context.Context, form *dto.CandidateForm) (string, error) {
	if ferr := form.Validate(); ferr != nil {
		return "", ferr
	}
	if uc.isDuplicate(form.Name, form.Email) {
		return "", ErrDuplicateCandidate
	}

	data := form.Lite(util.NowDatetime())
	if err := uc.api.Create(ctx, data); err != nil {
		return "", err
	}
	uc.store.Set(data.Name, data.Email, data.Datetime)
	uc.refreshLater()
	return uuid.NewString(), nil
}

// Update runs the two-step resolve-then-commit flow: the action webhook may
// override any submitted field, then the commit is keyed by the original
// identity. A failure between the steps leaves the remote side partially
// applied; the caller just sees a failed operation.
func (uc *CandidateUsecase) Update(ctx context.Context, form *dto.UpdateCandidateForm) (string, error) {
	if ferr := form.Validate(); ferr != nil {
		return "", ferr
	}

	original := service.OriginalKey{
		Name:  form.Original.Name,
		Email: form.Original.Email,
		Phone: form.Original.Phone,
	}
	res, err := uc.webhook.ResolveSave(ctx, original, form.Updated.Lite(util.NowDatetime()))
	if err != nil {
		return "", err
	}

	// the datetime is always regenerated locally, webhook or not
	data := model.CandidateLite{
		Name:     res.Name,
		Email:    res.Email,
		Phone:    res.Phone,
		JobRole:  res.JobRole,
		Datetime: util.NowDatetime(),
	}
	key := model.UpdateKey{
		KeyName:  form.Original.Name,
		KeyEmail: form.Original.Email,
		RowIndex: res.RowIndex,
	}
	if err := uc.api.Update(ctx, key, data); err != nil {
		return "", err
	}

	uc.store.Migrate(form.Original.Name, form.Original.Email, data.Name, data.Email)
	uc.store.Overwrite(data.Name, data.Email, data.Datetime)
	uc.refreshLater()
	return uuid.NewString(), nil
}

// Delete resolves the canonical identity first, then commits the removal
// keyed by whatever the webhook returned.
func (uc *CandidateUsecase) Delete(ctx context.Context, form *dto.DeleteCandidateForm) (service.ResolvedFields, error) {
	if ferr := form.Validate(); ferr != nil {
		return service.ResolvedFields{}, ferr
	}

	res, err := uc.webhook.ResolveDelete(ctx, form.Name, form.Email, form.Phone, form.JobRole)
	if err != nil {
		return service.ResolvedFields{}, err
	}

	key := model.UpdateKey{
		KeyName:  res.Name,
		KeyEmail: res.Email,
		RowIndex: res.RowIndex,
	}
	if err := uc.api.Delete(ctx, key); err != nil {
		return service.ResolvedFields{}, err
	}

	uc.store.Remove(res.Name, res.Email)
	uc.refreshLater()
	return res, nil
}

// refreshLater re-ingests the roster without blocking the caller's success
// response.
func (uc *CandidateUsecase) refreshLater() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := uc.Refresh(ctx); err != nil {
			log.Printf("roster refresh failed: %v", err)
		}
	}()
}
