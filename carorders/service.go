package carorders

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/config"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/carorders/business/order"
	"encore.app/carorders/store"
	"encore.app/carorders/supplier"
	"encore.app/carorders/token"
)

var carOrdersDB = sqldb.NewDatabase("car_orders", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

type Config struct {
	// AuthURL is the identity provider's token endpoint.
	AuthURL string
	// SupplierAPIURL is the base URL of the tire company's API.
	SupplierAPIURL string
	// TokenScope is the single scope requested for stock order creation.
	TokenScope string
}

var cfg *Config = config.Load[*Config]()

var secrets struct {
	TiresClientID     string // client-credentials id for the supplier's identity provider
	TiresClientSecret string // client-credentials secret
	TiresAPIKey       string // partner API key sent on every supplier call
}

// The token slot and source are package-level so the refresher endpoint
// and the request path share the same two-tier cache.
var (
	orderTokenSlot   = token.NewSlot(tokenScopes())
	orderTokenSource = token.NewSource(orderTokenSlot)
)

func tokenScopes() []string {
	return []string{cfg.TokenScope}
}

//encore:service
type Service struct {
	business order.Business
	tokens   token.TokenSource
	supplier supplier.Client
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](carOrdersDB)

	repo := store.NewStore(pgxdb)
	rlog.Info("initialized car orders store")

	return &Service{
		business: order.NewOrderBusiness(repo.Orders),
		tokens:   orderTokenSource,
		supplier: supplier.NewClient(cfg.SupplierAPIURL, secrets.TiresAPIKey),
	}, nil
}
