package tireorders

import (
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/events"
	"encore.app/tireorders/business/stock"
	"encore.app/tireorders/store"
)

var tireOrdersDB = sqldb.NewDatabase("tire_orders", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// stockBusiness is shared between the API service and the sweep cron
// endpoint, which has no service receiver.
var stockBusiness = sync.OnceValue(func() stock.Business {
	pgxdb := sqldb.Driver[*pgxpool.Pool](tireOrdersDB)
	repo := store.NewStore(pgxdb)
	return stock.NewStockBusiness(repo.StockOrders, events.NewTopicPublisher())
})

//encore:service
type Service struct {
	business stock.Business
}

func initService() (*Service, error) {
	rlog.Info("initialized tire orders store")
	return &Service{business: stockBusiness()}, nil
}
