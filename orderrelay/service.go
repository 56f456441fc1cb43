package orderrelay

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/config"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/orderrelay/store"
	"encore.app/orderrelay/target"
	wf "encore.app/orderrelay/workflow"
)

var relayDB = sqldb.NewDatabase("order_relay", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

type Config struct {
	// TargetAPIURL is the base URL of the buyer domain's API.
	TargetAPIURL string
	// RetryAttempts bounds delivery attempts per event.
	RetryAttempts int
	// MaxEventAgeMinutes abandons events older than this, regardless of
	// remaining retry budget.
	MaxEventAgeMinutes int
	// DeliveriesPerSecond is the shared ceiling on outbound calls to the
	// buyer's API across all relay traffic.
	DeliveriesPerSecond float64
}

var cfg *Config = config.Load[*Config]()

var secrets struct {
	CarOrdersAPIKey string // API key expected by the buyer's webhook
}

const taskQueue = "order-relay"

//encore:service
type Service struct {
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	c, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	pgxdb := sqldb.Driver[*pgxpool.Pool](relayDB)
	repo := store.NewStore(pgxdb)

	deliveries := target.NewClient(cfg.TargetAPIURL, secrets.CarOrdersAPIKey)
	wf.SetActivityDependencies(deliveries, repo.DeadLetters)

	// The per-second activity ceiling is shared by every worker on the
	// queue, which is what rate-limits deliveries to the destination.
	w := worker.New(c, taskQueue, worker.Options{
		TaskQueueActivitiesPerSecond: cfg.DeliveriesPerSecond,
	})
	w.RegisterWorkflow(wf.DeliverCompletion)
	w.RegisterActivity(wf.DeliverCompletionActivity)
	w.RegisterActivity(wf.DeadLetterEventActivity)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("order relay worker started", "task_queue", taskQueue, "deliveries_per_second", cfg.DeliveriesPerSecond)
	return &Service{temporal: c, worker: w}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
