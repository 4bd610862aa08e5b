package api

import (
	"context"
	"log/slog"

	"github.com/International-Combat-Archery-Alliance/activity-signup/activities"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ DB = &mockDB{}

type mockDB struct {
	GetActivityFunc    func(ctx context.Context, name string) (activities.Activity, error)
	GetActivitiesFunc  func(ctx context.Context) ([]activities.Activity, error)
	UpdateActivityFunc func(ctx context.Context, activity activities.Activity) error
}

func (m *mockDB) GetActivity(ctx context.Context, name string) (activities.Activity, error) {
	return m.GetActivityFunc(ctx, name)
}

func (m *mockDB) GetActivities(ctx context.Context) ([]activities.Activity, error) {
	return m.GetActivitiesFunc(ctx)
}

func (m *mockDB) UpdateActivity(ctx context.Context, activity activities.Activity) error {
	if m.UpdateActivityFunc != nil {
		return m.UpdateActivityFunc(ctx, activity)
	}
	return nil
}

var _ SignupNotifier = &mockNotifier{}

type mockNotifier struct {
	SendSignupConfirmationFunc func(ctx context.Context, activity activities.Activity, participant string) error
}

func (m *mockNotifier) SendSignupConfirmation(ctx context.Context, activity activities.Activity, participant string) error {
	if m.SendSignupConfirmationFunc != nil {
		return m.SendSignupConfirmationFunc(ctx, activity, participant)
	}
	return nil
}

func newTestAPI(db DB, notifier SignupNotifier) *API {
	return NewAPI(db, noopLogger, LOCAL, notifier, NewMetrics(nil))
}

func chessClub() activities.Activity {
	return activities.Activity{
		Name:            "Chess Club",
		Version:         1,
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}
}
