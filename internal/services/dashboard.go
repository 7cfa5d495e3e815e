package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"matchdash/internal/configuration"
	apierrors "matchdash/internal/errors"
	"matchdash/internal/handlers"
	m "matchdash/internal/middlewares"
	"matchdash/internal/models"
	"matchdash/internal/sql"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var tracer = otel.Tracer("matchdash/services")

type DashboardService struct {
	DB       *gorm.DB
	Location *time.Location
	// Parallelism bounds the number of concurrent counter queries of a snapshot.
	Parallelism int
	// SnapshotDuration, when set, observes the duration of successful snapshots.
	SnapshotDuration prometheus.Observer
	Now              func() time.Time
}

func (s DashboardService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.ValidateQuery[models.UserQueryParams]).
		Get("/kpis", handlers.GetOneWithQueryHandler(s.GetKPIs))
	r.Get("/top-users", handlers.GetListHandler(s.GetTopUsers))
	r.Get("/verification-queue", handlers.GetListHandler(s.GetVerificationQueue))
	r.Get("/signups-trend", handlers.GetListHandler(s.GetSignupsTrend))
	r.Get("/users-by-country", handlers.GetListHandler(s.GetUsersByCountry))
	r.Get("/engagement", handlers.GetOneHandler(s.GetEngagement))
	r.With(m.ValidateQuery[models.TopFavoritedQueryParams]).
		Get("/top-favorited", handlers.GetListWithQueryHandler(s.GetTopFavorited))

	return r
}

func (s DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s DashboardService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

func (s DashboardService) parallelism() int {
	if s.Parallelism > 0 {
		return s.Parallelism
	}
	return 1
}

// startOfDay returns midnight of the day of t in loc, as a UTC instant.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
}

// trendStart is the first instant of a window of TrendWindowDays calendar
// days ending today.
func (s DashboardService) trendStart() time.Time {
	local := startOfDay(s.now(), s.location()).In(s.location())
	return local.AddDate(0, 0, -(configuration.TrendWindowDays - 1)).UTC()
}

// FormatWomenMenRatio renders women per man with one decimal, e.g. "1.5 : 1".
// An empty side yields the neutral "1 : 1".
func FormatWomenMenRatio(women, men int64) string {
	if women > 0 && men > 0 {
		return fmt.Sprintf("%.1f : 1", float64(women)/float64(men))
	}
	return "1 : 1"
}

type kpiCounter struct {
	name string
	dst  *int64
	run  func(ctx context.Context) (int64, error)
}

func (s DashboardService) userCounter(name string, dst *int64, country string, filter sql.UserFilter) kpiCounter {
	return kpiCounter{
		name: name,
		dst:  dst,
		run: func(ctx context.Context) (int64, error) {
			return sql.CountUsers(ctx, s.DB, country, filter)
		},
	}
}

// ComputeKPISnapshot runs every counter of the dashboard header concurrently.
// The snapshot is only returned when all of them succeeded; the first failure
// cancels the remaining queries.
func (s DashboardService) ComputeKPISnapshot(ctx context.Context, country string) (models.KPISnapshot, error) {
	country = sql.NormalizeCountry(country)

	ctx, span := tracer.Start(ctx, "dashboard.kpi_snapshot",
		trace.WithAttributes(attribute.String("dashboard.country", country)))
	defer span.End()

	started := time.Now()
	now := s.now().UTC()
	todayStart := startOfDay(now, s.location())
	tomorrowStart := todayStart.In(s.location()).AddDate(0, 0, 1).UTC()
	activeSince := now.AddDate(0, 0, -configuration.ActiveWindowDays)

	var snapshot models.KPISnapshot
	counters := []kpiCounter{
		s.userCounter("totalUsers", &snapshot.TotalUsers, country, nil),
		s.userCounter("signupsToday", &snapshot.SignupsToday, country, func(db *gorm.DB) *gorm.DB {
			return db.Where("users.created_at >= ? AND users.created_at < ?", todayStart, tomorrowStart)
		}),
		s.userCounter("active30d", &snapshot.Active30d, country, func(db *gorm.DB) *gorm.DB {
			return db.Where("users.last_online >= ?", activeSince)
		}),
		{
			name: "activePremium",
			dst:  &snapshot.ActivePremium,
			run: func(ctx context.Context) (int64, error) {
				return sql.CountActivePremium(ctx, s.DB, country, now)
			},
		},
		{
			name: "totalMatches",
			dst:  &snapshot.TotalMatches,
			run: func(ctx context.Context) (int64, error) {
				return sql.CountMatches(ctx, s.DB)
			},
		},
		s.userCounter("womenCount", &snapshot.WomenCount, country, func(db *gorm.DB) *gorm.DB {
			return db.Where("users.gender = ?", models.GenderFemale)
		}),
		s.userCounter("menCount", &snapshot.MenCount, country, func(db *gorm.DB) *gorm.DB {
			return db.Where("users.gender = ?", models.GenderMale)
		}),
		s.userCounter("verificationQueue", &snapshot.VerificationQueue, country, func(db *gorm.DB) *gorm.DB {
			return db.Where("users.status = ?", models.UserStatusPending)
		}),
		s.userCounter("deactivatedUsers", &snapshot.DeactivatedUsers, country, func(db *gorm.DB) *gorm.DB {
			return db.Where("users.deactivated = ?", true)
		}),
		s.userCounter("verifiedUsers", &snapshot.VerifiedUsers, country, func(db *gorm.DB) *gorm.DB {
			return db.Where("users.status <> ? AND users.deactivated = ?", models.UserStatusPending, false)
		}),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism())
	for _, counter := range counters {
		g.Go(func() error {
			count, err := counter.run(gctx)
			if err != nil {
				return &apierrors.AggregationError{Counter: counter.name, Err: err}
			}
			*counter.dst = count
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "snapshot failed")
		return models.KPISnapshot{}, err
	}

	snapshot.WomenMenRatio = FormatWomenMenRatio(snapshot.WomenCount, snapshot.MenCount)

	if s.SnapshotDuration != nil {
		s.SnapshotDuration.Observe(time.Since(started).Seconds())
	}

	return snapshot, nil
}

func (s DashboardService) GetKPIs(
	ctx context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
	queryParams models.UserQueryParams,
) (models.KPISnapshot, error) {
	return s.ComputeKPISnapshot(ctx, queryParams.Country)
}

func aggregationFailed(counter string, err error) error {
	return &apierrors.AggregationError{Counter: counter, Err: err}
}

func (s DashboardService) GetTopUsers(
	ctx context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
) ([]models.TopUserRow, error) {
	rows, err := sql.ListTopActiveUsers(ctx, s.DB, configuration.TopUsersLimit)
	if err != nil {
		return nil, aggregationFailed("topUsers", err)
	}
	return rows, nil
}

func (s DashboardService) GetVerificationQueue(
	ctx context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
) ([]models.VerificationQueueRow, error) {
	rows, err := sql.ListVerificationQueue(ctx, s.DB, configuration.VerificationQueueLimit)
	if err != nil {
		return nil, aggregationFailed("verificationQueue", err)
	}
	return rows, nil
}

func (s DashboardService) GetSignupsTrend(
	ctx context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
) ([]models.TimeSeriesPoint, error) {
	points, err := sql.CountUsersByDay(ctx, s.DB, "users.created_at", s.trendStart(), s.location())
	if err != nil {
		return nil, aggregationFailed("signupsTrend", err)
	}
	return points, nil
}

func (s DashboardService) GetUsersByCountry(
	ctx context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
) ([]models.CountryGenderCount, error) {
	rows, err := sql.CountApprovedByCountryGender(ctx, s.DB, configuration.CountryGenderGroupLimit)
	if err != nil {
		return nil, aggregationFailed("usersByCountry", err)
	}
	return rows, nil
}

func (s DashboardService) GetEngagement(
	ctx context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
) (models.EngagementResponse, error) {
	dau, err := sql.CountUsersByDay(ctx, s.DB, "users.last_online", s.trendStart(), s.location())
	if err != nil {
		return models.EngagementResponse{}, aggregationFailed("dau", err)
	}

	activeSince := s.now().UTC().AddDate(0, 0, -configuration.ActiveWindowDays)
	mau, err := sql.CountUsers(ctx, s.DB, "", func(db *gorm.DB) *gorm.DB {
		return db.Where("users.last_online >= ?", activeSince)
	})
	if err != nil {
		return models.EngagementResponse{}, aggregationFailed("mau", err)
	}

	return models.EngagementResponse{DAU: dau, MAU: mau}, nil
}

func (s DashboardService) GetTopFavorited(
	ctx context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
	queryParams models.TopFavoritedQueryParams,
) ([]models.FavoritedUserRow, error) {
	limit := queryParams.Limit
	if limit == 0 {
		limit = configuration.TopFavoritedLimit
	}

	gender := models.Gender(strings.ToLower(queryParams.Gender))
	rows, err := sql.ListTopFavorited(ctx, s.DB, gender, limit)
	if err != nil {
		return nil, aggregationFailed("topFavorited", err)
	}
	return rows, nil
}

func (s DashboardService) ListCountries(
	ctx context.Context,
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
) ([]models.CountryCount, error) {
	rows, err := sql.CountUsersByCountry(ctx, s.DB)
	if err != nil {
		return nil, aggregationFailed("countries", err)
	}
	return rows, nil
}
