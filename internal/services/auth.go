package services

import (
	"context"
	"errors"
	"strconv"

	"matchdash/internal/activity"
	"matchdash/internal/cache"
	"matchdash/internal/configuration"
	apierrors "matchdash/internal/errors"
	"matchdash/internal/handlers"
	h "matchdash/internal/helpers"
	m "matchdash/internal/middlewares"
	"matchdash/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errLoginLocked = apierrors.NewAPIError(429, apierrors.ErrTooManyRequests)

type AuthService struct {
	DB             *gorm.DB
	Cache          cache.ICache
	AuthConfig     models.AuthConfig
	ActivityLogger activity.IActivityLogger
}

func (s AuthService) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(m.Validate[models.AuthLoginBody]).Post("/login", handlers.CreateHandler(s.Login))
	r.With(m.Validate[models.AuthVerifyBody]).Post("/verify", handlers.CreateHandler(s.Verify))
	return r
}

// VerifyCredentials checks a username and password against admin_users.
// Every failure, including an unknown username, is reported as
// ErrCredentialsRejected.
func (s AuthService) VerifyCredentials(ctx context.Context, username string, password string) (models.AdminIdentity, error) {
	var admin models.AdminUser
	err := s.DB.WithContext(ctx).Where("username = ?", username).Take(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.BurnPasswordCheck(password)
		return models.AdminIdentity{}, apierrors.ErrCredentialsRejected
	}
	if err != nil {
		return models.AdminIdentity{}, err
	}

	match, err := h.ComparePassword(admin.Password, password)
	if err != nil {
		zap.L().Warn("Failed to compare admin password hash",
			zap.String("username", username), zap.Error(err))
		return models.AdminIdentity{}, apierrors.ErrCredentialsRejected
	}
	if !match {
		return models.AdminIdentity{}, apierrors.ErrCredentialsRejected
	}

	return models.AdminIdentity{ID: admin.ID, Username: admin.Username, Name: admin.Name}, nil
}

func (s AuthService) Login(
	ctx context.Context,
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
	body models.AuthLoginBody,
) (models.AuthLoginResponse, error) {
	clientIP := h.ClientIPFromContext(ctx)

	if s.isLockedOut(logger, body.Username) {
		logger.Warn("Admin login locked out", zap.String("username", body.Username))
		s.logActivity(logger, activity.AdminLoginLocked, models.AdminIdentity{Username: body.Username}, clientIP)
		return models.AuthLoginResponse{}, errLoginLocked
	}

	admin, err := s.VerifyCredentials(ctx, body.Username, body.Password)
	if err != nil {
		if errors.Is(err, apierrors.ErrCredentialsRejected) {
			logger.Info("Admin login rejected", zap.String("username", body.Username))
			s.recordFailedAttempt(logger, body.Username)
			s.logActivity(logger, activity.AdminLoginFailed, models.AdminIdentity{Username: body.Username}, clientIP)
		}
		return models.AuthLoginResponse{}, err
	}

	if s.Cache != nil {
		if resetErr := s.Cache.ResetLoginAttempts(admin.Username); resetErr != nil {
			logger.Warn("Failed to reset login attempts", zap.Error(resetErr))
		}
	}

	accessToken, err := h.NewAccessToken(s.AuthConfig.JWTSecret, admin, s.AuthConfig.AccessTokenExpiry)
	if err != nil {
		logger.Error("Failed to generate access token", zap.Error(err))
		return models.AuthLoginResponse{}, apierrors.ErrGenerateAccessTokenFailed
	}

	s.logActivity(logger, activity.AdminLoginSucceeded, admin, clientIP)

	return models.AuthLoginResponse{User: admin, AccessToken: accessToken}, nil
}

func (s AuthService) Verify(
	_ context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
	body models.AuthVerifyBody,
) (models.UserClaims, error) {
	claims, err := h.ParseToken(s.AuthConfig.JWTSecret, body.AccessToken, false)
	if err != nil || claims.Aud != configuration.AudienceAccessToken {
		return models.UserClaims{}, apierrors.NewAPIError(401, apierrors.ErrInvalidToken)
	}
	return claims, nil
}

func (s AuthService) isLockedOut(logger *zap.Logger, username string) bool {
	if s.Cache == nil || s.AuthConfig.MaxAttempts <= 0 {
		return false
	}

	attempts, err := s.Cache.GetLoginAttempts(username)
	if err != nil {
		logger.Warn("Failed to read login attempts", zap.Error(err))
		return false
	}
	return attempts >= s.AuthConfig.MaxAttempts
}

func (s AuthService) recordFailedAttempt(logger *zap.Logger, username string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.IncrementLoginAttempts(username, s.AuthConfig.LockoutSeconds); err != nil {
		logger.Warn("Failed to increment login attempts", zap.Error(err))
	}
}

func (s AuthService) logActivity(logger *zap.Logger, action string, admin models.AdminIdentity, clientIP string) {
	if s.ActivityLogger == nil {
		return
	}

	fields := map[string]string{
		"action":      action,
		"object_type": activity.ObjectTypeAdmin,
		"username":    admin.Username,
		"client_ip":   clientIP,
	}
	if admin.ID != 0 {
		fields["admin_id"] = strconv.FormatUint(admin.ID, 10)
	}

	entry := models.Activity{
		Message: action,
		Object:  admin,
		Filter:  activity.NewLogFilter(fields),
	}
	if err := s.ActivityLogger.Send(entry); err != nil {
		logger.Error("Failed to log login activity", zap.Error(err))
	}
}
