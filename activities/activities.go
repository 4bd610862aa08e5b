package activities

import (
	"context"
	"slices"
)

type Activity struct {
	Name            string
	Version         int
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether email is on the roster. Matching is exact and case-sensitive.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a copy whose participant slice does not alias a's.
func (a Activity) Clone() Activity {
	c := a
	if a.Participants != nil {
		c.Participants = make([]string, len(a.Participants))
		copy(c.Participants, a.Participants)
	}
	return c
}

type Repository interface {
	GetActivity(ctx context.Context, name string) (Activity, error)
	GetActivities(ctx context.Context) ([]Activity, error)
	UpdateActivity(ctx context.Context, activity Activity) error
}
