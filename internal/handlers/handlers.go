package handlers

import (
	"context"
	"errors"
	"net/http"

	apierrors "matchdash/internal/errors"
	h "matchdash/internal/helpers"
	"matchdash/internal/models"

	"go.uber.org/zap"
)

type CreateTargetFunc[In any, Out any] func(context.Context, *zap.Logger, models.UserClaims, []uint64, In) (Out, error)
type GetOneTargetFunc[Out any] func(context.Context, *zap.Logger, models.UserClaims, []uint64) (Out, error)
type GetOneWithQueryTargetFunc[Q any, Out any] func(context.Context, *zap.Logger, models.UserClaims, []uint64, Q) (Out, error)
type GetListTargetFunc[Out any] func(context.Context, *zap.Logger, models.UserClaims, []uint64) ([]Out, error)
type GetListWithQueryTargetFunc[Q any, Out any] func(context.Context, *zap.Logger, models.UserClaims, []uint64, Q) ([]Out, error)

// requestContext extracts what every target function receives.
func requestContext(w http.ResponseWriter, r *http.Request) (*zap.Logger, models.UserClaims, []uint64, bool) {
	logger := h.GetLogger(r.Context())

	ids, err := h.ParseIDs(r)
	if err != nil {
		logger.Debug("Invalid path parameter", zap.Error(err))
		h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrInvalidID)
		return nil, models.UserClaims{}, nil, false
	}

	claims, _ := h.GetUserClaims(r.Context())
	return logger, claims, ids, true
}

func handleError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		h.RespondWithError(w, apiErr.Code, apiErr.Message)
		return
	}

	var aggErr *apierrors.AggregationError
	if errors.As(err, &aggErr) {
		logger.Error("Dashboard aggregation failed", zap.String("counter", aggErr.Counter), zap.Error(aggErr.Err))
	} else {
		logger.Error("Request failed", zap.Error(err))
	}
	h.RespondWithError(w, http.StatusInternalServerError, apierrors.ErrInternalServer)
}

func CreateHandler[In any, Out any](create CreateTargetFunc[In, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(w, r)
		if !ok {
			return
		}

		body, ok := r.Context().Value(models.BodyKey{}).(In)
		if !ok {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrInvalidBody)
			return
		}

		resp, err := create(r.Context(), logger, claims, ids, body)
		if err != nil {
			handleError(w, logger, err)
			return
		}
		h.RespondWithJSON(w, http.StatusOK, resp)
	}
}

func GetOneHandler[Out any](getOne GetOneTargetFunc[Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(w, r)
		if !ok {
			return
		}

		resp, err := getOne(r.Context(), logger, claims, ids)
		if err != nil {
			handleError(w, logger, err)
			return
		}
		h.RespondWithJSON(w, http.StatusOK, resp)
	}
}

func GetOneWithQueryHandler[Q any, Out any](getOne GetOneWithQueryTargetFunc[Q, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(w, r)
		if !ok {
			return
		}

		query, ok := r.Context().Value(models.QueryKey{}).(Q)
		if !ok {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrInvalidQuery)
			return
		}

		resp, err := getOne(r.Context(), logger, claims, ids, query)
		if err != nil {
			handleError(w, logger, err)
			return
		}
		h.RespondWithJSON(w, http.StatusOK, resp)
	}
}

func GetListHandler[Out any](getList GetListTargetFunc[Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(w, r)
		if !ok {
			return
		}

		list, err := getList(r.Context(), logger, claims, ids)
		if err != nil {
			handleError(w, logger, err)
			return
		}
		if list == nil {
			list = []Out{}
		}
		h.RespondWithJSON(w, http.StatusOK, list)
	}
}

func GetListWithQueryHandler[Q any, Out any](getList GetListWithQueryTargetFunc[Q, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := requestContext(w, r)
		if !ok {
			return
		}

		query, ok := r.Context().Value(models.QueryKey{}).(Q)
		if !ok {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrInvalidQuery)
			return
		}

		list, err := getList(r.Context(), logger, claims, ids, query)
		if err != nil {
			handleError(w, logger, err)
			return
		}
		if list == nil {
			list = []Out{}
		}
		h.RespondWithJSON(w, http.StatusOK, list)
	}
}
