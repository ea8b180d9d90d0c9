package cmd

import (
	"log/slog"

	auditout "servicetrack/internal/adapters/out/audit"
	"servicetrack/internal/adapters/out/postgres"
	"servicetrack/internal/adapters/out/postgres/auditrepo"
	"servicetrack/internal/adapters/out/postgres/principalrepo"
	"servicetrack/internal/core/application/usecases/commands"
	"servicetrack/internal/core/application/usecases/queries"
	"servicetrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	recorder   *auditout.Recorder
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		recorder:   auditout.NewRecorder(auditrepo.NewGormAuditLog(gormDB), logger),
	}
}

// AuditRecorder exposes the shared recorder so the retry job drains the same
// buffer the command handlers fill.
func (c *CompositionRoot) AuditRecorder() *auditout.Recorder {
	return c.recorder
}

// PrincipalDirectory exposes the directory for the HTTP principal middleware.
func (c *CompositionRoot) PrincipalDirectory() ports.PrincipalDirectory {
	return principalrepo.NewGormPrincipalDirectory(c.gormDB)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.recorder)
}

func (c *CompositionRoot) CreateTransitionStatusCommandHandler() commands.TransitionStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionStatusCommandHandler(f, c.recorder)
}

func (c *CompositionRoot) CreateAssignTechniciansCommandHandler() commands.AssignTechniciansCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTechniciansCommandHandler(f, c.recorder)
}

func (c *CompositionRoot) CreateAssignSalesCommandHandler() commands.AssignSalesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignSalesCommandHandler(f, c.recorder)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTechnicianCandidatesQueryHandler() queries.GetTechnicianCandidatesQueryHandler {
	return queries.NewGetTechnicianCandidatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesCandidatesQueryHandler() queries.GetSalesCandidatesQueryHandler {
	return queries.NewGetSalesCandidatesQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
