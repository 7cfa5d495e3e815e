package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "matchdash/internal/errors"
	h "matchdash/internal/helpers"
	"matchdash/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

var validate *validator.Validate

func InitValidator() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

func getValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// Validate decodes the JSON body into T, validates it and stores it in the context.
func Validate[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var data T

		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err := decoder.Decode(&data); err != nil {
			h.GetLogger(r.Context()).Debug("Failed to decode body", zap.Error(err))
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrInvalidBody)
			return
		}

		if err := getValidator().Struct(data); err != nil {
			h.GetLogger(r.Context()).Debug("Body validation failed", zap.Error(err))
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrInvalidBody)
			return
		}

		ctx := context.WithValue(r.Context(), models.BodyKey{}, data)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValidateQuery decodes the query string into T using its json tags,
// validates it and stores it in the context.
func ValidateQuery[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var data T

		raw := make(map[string]any)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				raw[key] = values[0]
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           &data,
		})
		if err != nil {
			h.RespondWithError(w, http.StatusInternalServerError, apierrors.ErrInternalServer)
			return
		}

		if err = decoder.Decode(raw); err != nil {
			h.GetLogger(r.Context()).Debug("Failed to decode query", zap.Error(err))
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrInvalidQuery)
			return
		}

		if err = getValidator().Struct(data); err != nil {
			h.GetLogger(r.Context()).Debug("Query validation failed", zap.Error(err))
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrInvalidQuery)
			return
		}

		ctx := context.WithValue(r.Context(), models.QueryKey{}, data)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
