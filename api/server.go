package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

type ErrorCode string

const (
	AlreadySignedUp      ErrorCode = "AlreadySignedUp"
	InputValidationError ErrorCode = "InputValidationError"
	InternalError        ErrorCode = "InternalError"
	NotFound             ErrorCode = "NotFound"
)

type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type Error struct {
	Detail string    `json:"detail"`
	Code   ErrorCode `json:"code"`
}

type Message struct {
	Message string `json:"message"`
}

type EmailParams struct {
	Email string `form:"email" json:"email"`
}

type StrictHandlerFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (response any, err error)

type StrictMiddlewareFunc func(f StrictHandlerFunc, operationID string) StrictHandlerFunc

type StrictServerInterface interface {
	// (GET /activities)
	GetActivities(ctx context.Context, request GetActivitiesRequestObject) (GetActivitiesResponseObject, error)
	// (POST /activities/{activityName}/signup)
	PostActivitiesActivityNameSignup(ctx context.Context, request PostActivitiesActivityNameSignupRequestObject) (PostActivitiesActivityNameSignupResponseObject, error)
	// (DELETE /activities/{activityName}/participants)
	DeleteActivitiesActivityNameParticipants(ctx context.Context, request DeleteActivitiesActivityNameParticipantsRequestObject) (DeleteActivitiesActivityNameParticipantsResponseObject, error)
}

type GetActivitiesRequestObject struct{}

type GetActivitiesResponseObject interface {
	VisitGetActivitiesResponse(w http.ResponseWriter) error
}

type GetActivities200JSONResponse map[string]Activity

func (response GetActivities200JSONResponse) VisitGetActivitiesResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type GetActivities500JSONResponse Error

func (response GetActivities500JSONResponse) VisitGetActivitiesResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type PostActivitiesActivityNameSignupRequestObject struct {
	ActivityName string
	Params       EmailParams
}

type PostActivitiesActivityNameSignupResponseObject interface {
	VisitPostActivitiesActivityNameSignupResponse(w http.ResponseWriter) error
}

type PostActivitiesActivityNameSignup200JSONResponse Message

func (response PostActivitiesActivityNameSignup200JSONResponse) VisitPostActivitiesActivityNameSignupResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type PostActivitiesActivityNameSignup400JSONResponse Error

func (response PostActivitiesActivityNameSignup400JSONResponse) VisitPostActivitiesActivityNameSignupResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type PostActivitiesActivityNameSignup404JSONResponse Error

func (response PostActivitiesActivityNameSignup404JSONResponse) VisitPostActivitiesActivityNameSignupResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type PostActivitiesActivityNameSignup500JSONResponse Error

func (response PostActivitiesActivityNameSignup500JSONResponse) VisitPostActivitiesActivityNameSignupResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type DeleteActivitiesActivityNameParticipantsRequestObject struct {
	ActivityName string
	Params       EmailParams
}

type DeleteActivitiesActivityNameParticipantsResponseObject interface {
	VisitDeleteActivitiesActivityNameParticipantsResponse(w http.ResponseWriter) error
}

type DeleteActivitiesActivityNameParticipants200JSONResponse Message

func (response DeleteActivitiesActivityNameParticipants200JSONResponse) VisitDeleteActivitiesActivityNameParticipantsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type DeleteActivitiesActivityNameParticipants404JSONResponse Error

func (response DeleteActivitiesActivityNameParticipants404JSONResponse) VisitDeleteActivitiesActivityNameParticipantsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type DeleteActivitiesActivityNameParticipants500JSONResponse Error

func (response DeleteActivitiesActivityNameParticipants500JSONResponse) VisitDeleteActivitiesActivityNameParticipantsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(body)
}

type StrictHTTPServerOptions struct {
	RequestErrorHandlerFunc  func(w http.ResponseWriter, r *http.Request, err error)
	ResponseErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) *StrictHandler {
	return NewStrictHandlerWithOptions(ssi, middlewares, StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			_ = writeJSON(w, http.StatusBadRequest, Error{Detail: err.Error(), Code: InputValidationError})
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			_ = writeJSON(w, http.StatusInternalServerError, Error{Detail: err.Error(), Code: InternalError})
		},
	})
}

func NewStrictHandlerWithOptions(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc, options StrictHTTPServerOptions) *StrictHandler {
	return &StrictHandler{ssi: ssi, middlewares: middlewares, options: options}
}

type StrictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
	options     StrictHTTPServerOptions
}

// HandlerFromMux registers the API operations on m.
func HandlerFromMux(sh *StrictHandler, m *http.ServeMux) {
	m.HandleFunc("GET /activities", sh.GetActivities)
	m.HandleFunc("POST /activities/{activityName}/signup", sh.PostActivitiesActivityNameSignup)
	m.HandleFunc("DELETE /activities/{activityName}/participants", sh.DeleteActivitiesActivityNameParticipants)
}

func (sh *StrictHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	var request GetActivitiesRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
		return sh.ssi.GetActivities(ctx, request.(GetActivitiesRequestObject))
	}

	response, err := sh.run(handler, "GetActivities", w, r, request)
	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetActivitiesResponseObject); ok {
		if err := validResponse.VisitGetActivitiesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

func (sh *StrictHandler) PostActivitiesActivityNameSignup(w http.ResponseWriter, r *http.Request) {
	var request PostActivitiesActivityNameSignupRequestObject

	request.ActivityName = r.PathValue("activityName")
	if err := bindEmailParam(r, &request.Params); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, err)
		return
	}

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
		return sh.ssi.PostActivitiesActivityNameSignup(ctx, request.(PostActivitiesActivityNameSignupRequestObject))
	}

	response, err := sh.run(handler, "PostActivitiesActivityNameSignup", w, r, request)
	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(PostActivitiesActivityNameSignupResponseObject); ok {
		if err := validResponse.VisitPostActivitiesActivityNameSignupResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

func (sh *StrictHandler) DeleteActivitiesActivityNameParticipants(w http.ResponseWriter, r *http.Request) {
	var request DeleteActivitiesActivityNameParticipantsRequestObject

	request.ActivityName = r.PathValue("activityName")
	if err := bindEmailParam(r, &request.Params); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, err)
		return
	}

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
		return sh.ssi.DeleteActivitiesActivityNameParticipants(ctx, request.(DeleteActivitiesActivityNameParticipantsRequestObject))
	}

	response, err := sh.run(handler, "DeleteActivitiesActivityNameParticipants", w, r, request)
	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(DeleteActivitiesActivityNameParticipantsResponseObject); ok {
		if err := validResponse.VisitDeleteActivitiesActivityNameParticipantsResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

func (sh *StrictHandler) run(handler StrictHandlerFunc, operationID string, w http.ResponseWriter, r *http.Request, request any) (any, error) {
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, operationID)
	}

	return handler(r.Context(), w, r, request)
}

// Path parameters come from r.PathValue, which is already percent-decoded, so only the
// query string goes through the runtime binder.
func bindEmailParam(r *http.Request, params *EmailParams) error {
	err := runtime.BindQueryParameter("form", true, true, "email", r.URL.Query(), &params.Email)
	if err != nil {
		return fmt.Errorf("invalid format for parameter email: %w", err)
	}

	return nil
}
