package cmd

import (
	"log/slog"
	"os"
	"time"

	httpin "receipts/internal/adapters/in/http"
	"receipts/internal/adapters/out/memory/sessionstore"
	"receipts/internal/adapters/out/postgres"
	"receipts/internal/core/application/usecases/commands"
	"receipts/internal/core/application/usecases/intake"
	"receipts/internal/core/application/usecases/queries"
	"receipts/internal/core/domain/services"
	"receipts/internal/core/ports"
	"receipts/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	sessionStore *sessionstore.InMemorySessionStore
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessionStore: sessionstore.NewInMemorySessionStore(),
		logger:       slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRecentOrdersQueryHandler() queries.ListRecentOrdersQueryHandler {
	return queries.NewListRecentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) OrderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateWorkflow() *intake.Workflow {
	return intake.NewWorkflow(
		c.sessionStore,
		c.OrderRepository(),
		c.CreateRegisterOrderCommandHandler(),
		c.config.OperatorID,
		c.logger,
	)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateWorkflow(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateSearchOrdersQueryHandler(),
		c.CreateListRecentOrdersQueryHandler(),
		c.OrderRepository(),
		services.NewReceiptRenderer(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	ttl := time.Duration(c.config.SessionTTLMinutes) * time.Minute
	return jobs.NewJobManager(c.sessionStore, ttl, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
