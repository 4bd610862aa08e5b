package activities

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/International-Combat-Archery-Alliance/activity-signup/activities")

// List returns every activity in the repository ordered by name.
func List(ctx context.Context, repo Repository) ([]Activity, error) {
	ctx, span := tracer.Start(ctx, "activities.List")
	defer span.End()

	all, err := repo.GetActivities(ctx)
	if err != nil {
		recordErr(span, err)
		return nil, err
	}

	slices.SortFunc(all, func(a, b Activity) int {
		return strings.Compare(a.Name, b.Name)
	})

	span.SetAttributes(attribute.Int("activities.count", len(all)))
	return all, nil
}

// Enroll appends email to the roster of the named activity.
//
// MaxParticipants is not checked, an activity can be signed up past its capacity.
func Enroll(ctx context.Context, repo Repository, name string, email string) (Activity, error) {
	ctx, span := tracer.Start(ctx, "activities.Enroll", trace.WithAttributes(
		attribute.String("activity.name", name),
	))
	defer span.End()

	activity, err := mutate(ctx, repo, name, func(a *Activity) error {
		if a.HasParticipant(email) {
			return NewAlreadyEnrolledError(name, email)
		}
		a.Participants = append(a.Participants, email)
		return nil
	})
	if err != nil {
		recordErr(span, err)
		return Activity{}, err
	}

	return activity, nil
}

// Unenroll removes email from the roster of the named activity.
func Unenroll(ctx context.Context, repo Repository, name string, email string) (Activity, error) {
	ctx, span := tracer.Start(ctx, "activities.Unenroll", trace.WithAttributes(
		attribute.String("activity.name", name),
	))
	defer span.End()

	activity, err := mutate(ctx, repo, name, func(a *Activity) error {
		idx := slices.Index(a.Participants, email)
		if idx < 0 {
			return NewParticipantNotEnrolledError(name, email)
		}
		a.Participants = slices.Delete(a.Participants, idx, idx+1)
		return nil
	})
	if err != nil {
		recordErr(span, err)
		return Activity{}, err
	}

	return activity, nil
}

// mutate runs a read-modify-write on one activity. A write that loses a version race is
// re-read and retried until it lands or ctx is done, every other error ends the attempt.
func mutate(ctx context.Context, repo Repository, name string, change func(a *Activity) error) (Activity, error) {
	return backoff.Retry(ctx, func() (Activity, error) {
		activity, err := repo.GetActivity(ctx, name)
		if err != nil {
			if HasReason(err, REASON_ACTIVITY_DOES_NOT_EXIST) {
				return Activity{}, backoff.Permanent(err)
			}
			return Activity{}, backoff.Permanent(NewFailedToFetchError(fmt.Sprintf("Failed to fetch activity %q", name), err))
		}

		err = change(&activity)
		if err != nil {
			return Activity{}, backoff.Permanent(err)
		}

		activity.Version++
		err = repo.UpdateActivity(ctx, activity)
		if err != nil {
			if HasReason(err, REASON_VERSION_CONFLICT) {
				return Activity{}, err
			}
			return Activity{}, backoff.Permanent(err)
		}

		return activity, nil
	}, backoff.WithBackOff(newConflictBackOff()))
}

func newConflictBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Millisecond
	b.MaxInterval = 100 * time.Millisecond
	return b
}

func recordErr(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
