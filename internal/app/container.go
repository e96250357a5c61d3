package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contracts-backend/internal/adapter/email"
	"github.com/heartmarshall/contracts-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/contracts-backend/internal/adapter/postgres/audit"
	contractrepo "github.com/heartmarshall/contracts-backend/internal/adapter/postgres/contract"
	notificationrepo "github.com/heartmarshall/contracts-backend/internal/adapter/postgres/notification"
	taskrepo "github.com/heartmarshall/contracts-backend/internal/adapter/postgres/task"
	userrepo "github.com/heartmarshall/contracts-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/contracts-backend/internal/auth"
	"github.com/heartmarshall/contracts-backend/internal/config"
	"github.com/heartmarshall/contracts-backend/internal/service/contract"
	"github.com/heartmarshall/contracts-backend/internal/service/dashboard"
	"github.com/heartmarshall/contracts-backend/internal/service/notification"
	"github.com/heartmarshall/contracts-backend/internal/service/sweep"
	"github.com/heartmarshall/contracts-backend/internal/service/task"
)

// Container holds the database pool, repositories and services shared by the
// server and the CLI subcommands.
type Container struct {
	Pool *pgxpool.Pool
	JWT  *auth.JWTManager

	Users         *userrepo.Repo
	Contracts     *contractrepo.Repo
	Tasks         *taskrepo.Repo
	Notifications *notificationrepo.Repo

	ContractService     *contract.Service
	TaskService         *task.Service
	NotificationService *notification.Service
	SweepService        *sweep.Service
	DashboardService    *dashboard.Service

	Clock clockwork.Clock
}

// NewContainer connects to the database and builds every service.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return wire(pool, cfg, logger, clockwork.NewRealClock()), nil
}

func wire(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *Container {
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	contracts := contractrepo.New(pool)
	tasks := taskrepo.New(pool)
	notifications := notificationrepo.New(pool)
	audit := auditrepo.New(pool)

	notifySvc := notification.NewService(logger, notifications, users, audit, tx,
		email.NewLogSender(logger), clock, notification.Config{
			EmailEnabled: cfg.Notification.EmailEnabled,
			DefaultLimit: cfg.Notification.DefaultLimit,
		})

	return &Container{
		Pool:          pool,
		JWT:           auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Users:         users,
		Contracts:     contracts,
		Tasks:         tasks,
		Notifications: notifications,

		ContractService: contract.NewService(logger, contracts, users, notifySvc, audit, tx, clock,
			contract.Config{StrictTransitions: cfg.Lifecycle.StrictTransitions}),
		TaskService:         task.NewService(logger, tasks, contracts, users, notifySvc, audit, tx, clock),
		NotificationService: notifySvc,
		SweepService:        sweep.NewService(logger, contracts, tasks, notifySvc, clock),
		DashboardService:    dashboard.NewService(logger, contracts, tasks, notifications, clock),

		Clock: clock,
	}
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}
