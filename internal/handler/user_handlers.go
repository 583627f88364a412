package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"ofppt/internal/apperr"
	"ofppt/internal/dto"
	"ofppt/internal/service"
	"ofppt/internal/store"
)

// UsersHandler serves the CRUD endpoint, dispatching on the HTTP method.
// Each request gets its own connection and service.
func (h *Handler) UsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerolog.Ctx(ctx)

	conn, err := h.provider.Conn(ctx)
	if err != nil {
		h.metrics.RecordDBConnFailure()
		log.Error().Err(err).Msg("database connection failed")
		writeErrorResponse(w, r, apperr.NewInternal("Database connection failed", err))
		return
	}
	defer conn.Close()

	svc := service.NewUserService(store.NewUsersStore(conn, h.provider.Dialect()), h.hasher)

	var (
		resp   any
		appErr *apperr.AppError
	)

	switch r.Method {
	case http.MethodGet:
		resp, appErr = h.getUsers(r, svc)
	case http.MethodPost:
		resp, appErr = h.createUser(w, r, svc)
	case http.MethodPut:
		resp, appErr = h.updateUser(w, r, svc)
	case http.MethodDelete:
		resp, appErr = h.deleteUser(r, svc)
	default:
		appErr = apperr.NewMethodNotAllowed()
	}

	if appErr != nil {
		if appErr.Status >= http.StatusInternalServerError {
			log.Error().Err(appErr).Str("method", r.Method).Msg("user request failed")
		}
		writeErrorResponse(w, r, appErr)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) getUsers(r *http.Request, svc *service.UserService) (any, *apperr.AppError) {
	id, present, appErr := userID(r)
	if appErr != nil {
		return nil, appErr
	}
	if !present {
		return svc.List(r.Context())
	}
	return svc.Get(r.Context(), id)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request, svc *service.UserService) (any, *apperr.AppError) {
	var req dto.CreateUserRequest
	if appErr := decodeBody(w, r, &req); appErr != nil {
		return nil, appErr
	}
	if appErr := validateRequest(&req); appErr != nil {
		return nil, appErr
	}

	resp, appErr := svc.Create(r.Context(), req)
	if appErr != nil {
		return nil, appErr
	}
	zerolog.Ctx(r.Context()).Info().Int64("user_id", resp.ID).Msg("user created")
	return resp, nil
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, svc *service.UserService) (any, *apperr.AppError) {
	id, present, appErr := userID(r)
	if appErr != nil {
		return nil, appErr
	}
	if !present {
		return nil, apperr.NewInvalidInput("Missing user id")
	}

	var req dto.UpdateUserRequest
	if appErr := decodeBody(w, r, &req); appErr != nil {
		return nil, appErr
	}

	return svc.Update(r.Context(), id, req)
}

func (h *Handler) deleteUser(r *http.Request, svc *service.UserService) (any, *apperr.AppError) {
	id, present, appErr := userID(r)
	if appErr != nil {
		return nil, appErr
	}
	if !present {
		return nil, apperr.NewInvalidInput("Missing user id")
	}

	resp, appErr := svc.Delete(r.Context(), id)
	if appErr != nil {
		return nil, appErr
	}
	zerolog.Ctx(r.Context()).Info().Int64("user_id", id).Msg("user deleted")
	return resp, nil
}
