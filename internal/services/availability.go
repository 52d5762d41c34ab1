package services

import (
	"context"
	"time"

	"github.com/Jeff9497/Job8earch/internal/clients/openrouter"
	"github.com/Jeff9497/Job8earch/internal/entities"
	"github.com/Jeff9497/Job8earch/internal/logger"
	gocache "github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const availabilityCacheKey = "availability"

// AvailabilityReport is a diagnostic snapshot of the remote model listing.
// Probing is best effort and never blocks normal chat use.
type AvailabilityReport struct {
	Success     bool                 `json:"success"`
	TotalModels int                  `json:"totalModels,omitempty"`
	FreeModels  int                  `json:"freeModels,omitempty"`
	FreeSample  []entities.ModelInfo `json:"freeModelsList,omitempty"`
	Error       string               `json:"error,omitempty"`
	CheckedAt   time.Time            `json:"checkedAt"`
}

type modelLister interface {
	ListModels(ctx context.Context) ([]openrouter.Model, error)
}

type AvailabilityChecker struct {
	client modelLister
	cache  *gocache.Cache
	cron   *cron.Cron
}

// NewAvailabilityChecker builds the checker. A non-empty cron spec schedules
// background snapshot refreshes so interactive probes usually hit the cache.
func NewAvailabilityChecker(client modelLister, refreshSpec string) (*AvailabilityChecker, error) {

	a := &AvailabilityChecker{
		client: client,
		cache:  gocache.New(10*time.Minute, 20*time.Minute),
	}

	if refreshSpec != "" {
		a.cron = cron.New()
		if _, err := a.cron.AddFunc(refreshSpec, a.refresh); err != nil {
			return nil, err
		}
		a.cron.Start()
		log.Infof("model availability refresh scheduled: %v", refreshSpec)
	}

	return a, nil
}

func (a *AvailabilityChecker) Stop() {
	if a.cron != nil {
		a.cron.Stop()
	}
}

// Report returns the cached snapshot when fresh, otherwise probes the models
// endpoint. Failed probes are returned but never cached.
func (a *AvailabilityChecker) Report(ctx context.Context) AvailabilityReport {

	if cached, found := a.cache.Get(availabilityCacheKey); found {
		return cached.(AvailabilityReport)
	}

	report := a.probe(ctx)
	if report.Success {
		a.cache.SetDefault(availabilityCacheKey, report)
	}
	return report
}

func (a *AvailabilityChecker) refresh() {
	report := a.probe(context.Background())
	if report.Success {
		a.cache.SetDefault(availabilityCacheKey, report)
		log.Infof("model availability refreshed: %v free of %v", report.FreeModels, report.TotalModels)
	}
}

func (a *AvailabilityChecker) probe(ctx context.Context) AvailabilityReport {

	models, err := a.client.ListModels(ctx)
	if err != nil {
		_, message := classifyError(err)
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeChatAPI).Errorf("model availability probe failed: %v", err)
		return AvailabilityReport{Error: message, CheckedAt: time.Now().UTC()}
	}

	free := lo.Filter(models, func(m openrouter.Model, _ int) bool { return m.IsFree() })

	return AvailabilityReport{
		Success:     true,
		TotalModels: len(models),
		FreeModels:  len(free),
		FreeSample: lo.Map(free, func(m openrouter.Model, _ int) entities.ModelInfo {
			return entities.ModelInfo{ID: m.ID, Name: m.Name}
		}),
		CheckedAt: time.Now().UTC(),
	}
}
