package components

import (
	"bonus-crm/internal/infra/db"
	"bonus-crm/internal/infra/readstore"
	"bonus-crm/internal/infra/uow"
	"bonus-crm/internal/usecase/commands"
	"bonus-crm/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(queries.TemplateReadStore)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewLanguageReadStore,
			fx.As(new(queries.LanguageReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.AdminUserReader)),
		),
	),
)

// Write repositories are not provided here: the unit of work hands them
// out per transaction (see internal/infra/uow).
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
