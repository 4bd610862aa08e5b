package api

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/activity-signup/activities"
)

type DB interface {
	activities.Repository
}

type SignupNotifier interface {
	SendSignupConfirmation(ctx context.Context, activity activities.Activity, participant string) error
}

type API struct {
	db       DB
	logger   *slog.Logger
	env      Environment
	notifier SignupNotifier
	metrics  *Metrics
}

var _ StrictServerInterface = (*API)(nil)

// NewAPI builds the activity API. notifier may be nil to skip confirmation emails.
func NewAPI(db DB, logger *slog.Logger, env Environment, notifier SignupNotifier, metrics *Metrics) *API {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &API{
		db:       db,
		logger:   logger,
		env:      env,
		notifier: notifier,
		metrics:  metrics,
	}
}
