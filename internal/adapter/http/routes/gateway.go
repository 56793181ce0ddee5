package routes

import (
	"context"
	"fmt"

	"solar_marketplace/internal/adapter/persistence/memory"
	"solar_marketplace/internal/adapter/persistence/postgres"
	redisstore "solar_marketplace/internal/adapter/persistence/redis"
	"solar_marketplace/internal/adapter/persistence/repository"
	"solar_marketplace/internal/infrastructure/config"
	"solar_marketplace/internal/infrastructure/database"
	"solar_marketplace/internal/infrastructure/events"
	"solar_marketplace/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// gateway is the persistence layer chosen once at startup.
type gateway struct {
	users         interfaces.IUserRepository
	sessions      interfaces.ISessionRepository
	requests      interfaces.IQuotationRequestRepository
	quotations    interfaces.IVendorQuotationRepository
	notifications interfaces.INotificationRepository

	closers []func() error
}

func memoryGateway() gateway {
	store := memory.NewStore()
	return gateway{
		users:         store.Users(),
		sessions:      store.Sessions(),
		requests:      store.Requests(),
		quotations:    store.Quotations(),
		notifications: store.Notifications(),
	}
}

func newGateway(ctx context.Context, cfg config.Config, log *zap.SugaredLogger) (gateway, error) {
	var gw gateway

	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warnw("using in-memory storage; data is lost on restart")
		gw = memoryGateway()

	case config.StoragePostgres:
		db, err := postgres.Open(cfg.Postgres.URL, cfg.Postgres.MaxOpenConns)
		if err != nil {
			return gateway{}, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			return gateway{}, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return gateway{}, fmt.Errorf("postgres handle: %w", err)
		}
		gw = gateway{
			users:         postgres.NewUserRepository(db),
			sessions:      postgres.NewSessionRepository(db),
			requests:      postgres.NewQuotationRequestRepository(db),
			quotations:    postgres.NewVendorQuotationRepository(db),
			notifications: postgres.NewNotificationRepository(db),
			closers:       []func() error{sqlDB.Close},
		}

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return gateway{}, err
		}
		tables := dynamoTables(cfg.DynamoDB.Tables)
		gw = gateway{
			users:         repository.NewUserDynamoRepository(ddb, tables),
			sessions:      repository.NewSessionDynamoRepository(ddb, tables),
			requests:      repository.NewQuotationRequestDynamoRepository(ddb, tables),
			quotations:    repository.NewVendorQuotationDynamoRepository(ddb, tables),
			notifications: repository.NewNotificationDynamoRepository(ddb, tables),
		}

	default:
		return gateway{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.Session.Store == config.SessionStoreRedis {
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			gw.close(log)
			return gateway{}, err
		}
		gw.sessions = redisstore.NewSessionRepository(rdb)
		gw.closers = append(gw.closers, rdb.Close)
	}

	log.Infow("storage ready", "driver", cfg.StorageDriver, "session_store", cfg.Session.Store)
	return gw, nil
}

func (gw gateway) close(log *zap.SugaredLogger) {
	for _, c := range gw.closers {
		if err := c(); err != nil {
			log.Warnw("close storage", "error", err)
		}
	}
}

func dynamoTables(t config.DynamoTables) repository.Tables {
	return repository.Tables{
		Users:          t.Users,
		UserEmails:     t.UserEmails,
		Profiles:       t.Profiles,
		Sessions:       t.Sessions,
		Requests:       t.Requests,
		Quotations:     t.Quotations,
		QuotationPairs: t.QuotationPairs,
		Notifications:  t.Notifications,
	}
}

// newPublisher connects to NATS when a URL is configured. The returned func
// drains the connection.
func newPublisher(cfg config.NATSConfig, log *zap.SugaredLogger) (interfaces.IEventPublisher, func(), error) {
	if cfg.URL == "" {
		return events.NopPublisher{}, func() {}, nil
	}
	conn, err := events.Connect(cfg.URL, log)
	if err != nil {
		return nil, nil, err
	}
	drain := func() {
		if err := conn.Drain(); err != nil {
			log.Warnw("drain nats", "error", err)
		}
	}
	return events.NewNATSPublisher(conn, cfg.SubjectPrefix), drain, nil
}
