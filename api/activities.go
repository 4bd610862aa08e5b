package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/International-Combat-Archery-Alliance/activity-signup/activities"
)

const notifyTimeout = 5 * time.Second

func (a *API) GetActivities(ctx context.Context, request GetActivitiesRequestObject) (GetActivitiesResponseObject, error) {
	logger := getLoggerFromCtx(ctx, a.logger)

	all, err := activities.List(ctx, a.db)
	if err != nil {
		logger.Error("Failed to list activities", "error", err)

		return GetActivities500JSONResponse{
			Code:   InternalError,
			Detail: "Failed to list activities",
		}, nil
	}

	resp := make(GetActivities200JSONResponse, len(all))
	for _, act := range all {
		resp[act.Name] = activityToApiActivity(act)
	}

	return resp, nil
}

func (a *API) PostActivitiesActivityNameSignup(ctx context.Context, request PostActivitiesActivityNameSignupRequestObject) (PostActivitiesActivityNameSignupResponseObject, error) {
	logger := getLoggerFromCtx(ctx, a.logger)
	name := request.ActivityName
	email := request.Params.Email

	activity, err := activities.Enroll(ctx, a.db, name, email)
	if err != nil {
		var actErr *activities.Error
		if errors.As(err, &actErr) {
			switch actErr.Reason {
			case activities.REASON_ACTIVITY_DOES_NOT_EXIST:
				a.metrics.Signups.WithLabelValues(unknownActivity, resultNotFound).Inc()
				logger.Info("signup for unknown activity", slog.String("activity", name))
				return PostActivitiesActivityNameSignup404JSONResponse{
					Code:   NotFound,
					Detail: "Activity not found",
				}, nil
			case activities.REASON_ALREADY_ENROLLED:
				a.metrics.Signups.WithLabelValues(name, resultAlreadyEnrolled).Inc()
				return PostActivitiesActivityNameSignup400JSONResponse{
					Code:   AlreadySignedUp,
					Detail: fmt.Sprintf("%s is already signed up for %s", email, name),
				}, nil
			}
		}

		a.metrics.Signups.WithLabelValues(unknownActivity, resultError).Inc()
		logger.Error("Failed to sign up for activity", slog.String("activity", name), "error", err)
		return PostActivitiesActivityNameSignup500JSONResponse{
			Code:   InternalError,
			Detail: "Failed to sign up for activity",
		}, nil
	}

	a.metrics.Signups.WithLabelValues(name, resultSuccess).Inc()
	logger.Info("participant signed up", slog.String("activity", name), slog.Int("participants", len(activity.Participants)))

	a.sendConfirmation(ctx, logger, activity, email)

	return PostActivitiesActivityNameSignup200JSONResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	}, nil
}

func (a *API) DeleteActivitiesActivityNameParticipants(ctx context.Context, request DeleteActivitiesActivityNameParticipantsRequestObject) (DeleteActivitiesActivityNameParticipantsResponseObject, error) {
	logger := getLoggerFromCtx(ctx, a.logger)
	name := request.ActivityName
	email := request.Params.Email

	activity, err := activities.Unenroll(ctx, a.db, name, email)
	if err != nil {
		var actErr *activities.Error
		if errors.As(err, &actErr) {
			switch actErr.Reason {
			case activities.REASON_ACTIVITY_DOES_NOT_EXIST:
				a.metrics.Unregistrations.WithLabelValues(unknownActivity, resultNotFound).Inc()
				logger.Info("unregister from unknown activity", slog.String("activity", name))
				return DeleteActivitiesActivityNameParticipants404JSONResponse{
					Code:   NotFound,
					Detail: "Activity not found",
				}, nil
			case activities.REASON_PARTICIPANT_NOT_ENROLLED:
				a.metrics.Unregistrations.WithLabelValues(name, resultNotEnrolled).Inc()
				return DeleteActivitiesActivityNameParticipants404JSONResponse{
					Code:   NotFound,
					Detail: fmt.Sprintf("%s not found in %s", email, name),
				}, nil
			}
		}

		a.metrics.Unregistrations.WithLabelValues(unknownActivity, resultError).Inc()
		logger.Error("Failed to unregister from activity", slog.String("activity", name), "error", err)
		return DeleteActivitiesActivityNameParticipants500JSONResponse{
			Code:   InternalError,
			Detail: "Failed to unregister from activity",
		}, nil
	}

	a.metrics.Unregistrations.WithLabelValues(name, resultSuccess).Inc()
	logger.Info("participant unregistered", slog.String("activity", name), slog.Int("participants", len(activity.Participants)))

	return DeleteActivitiesActivityNameParticipants200JSONResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	}, nil
}

// sendConfirmation is best effort, the signup already happened.
func (a *API) sendConfirmation(ctx context.Context, logger *slog.Logger, activity activities.Activity, email string) {
	if a.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	err := a.notifier.SendSignupConfirmation(ctx, activity, email)
	if err != nil {
		logger.Warn("Failed to send signup confirmation", slog.String("activity", activity.Name), "error", err)
	}
}

func activityToApiActivity(activity activities.Activity) Activity {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}

	return Activity{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}
