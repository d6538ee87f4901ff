package cmd

import (
	"fmt"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory ports.UnitOfWorkFactory
	logger     *zap.Logger

	menu      *catalog.Catalog
	parser    *services.IntentParser
	index     *services.SemanticIndex
	finalizer *services.OrderFinalizer
}

// NewCompositionRoot builds the domain services once; the Create methods
// hand out handlers sharing them.
func NewCompositionRoot(cfg Config, uowFactory ports.UnitOfWorkFactory, logger *zap.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rules, err := services.LoadRuleBook(cfg.IntentRulesPath)
	if err != nil {
		return nil, fmt.Errorf("load intent rules: %w", err)
	}

	menu := catalog.Default()
	parser, err := services.NewIntentParser(menu, rules.Rules)
	if err != nil {
		return nil, err
	}
	index, err := services.NewSemanticIndex(menu, rules.Concepts)
	if err != nil {
		return nil, err
	}
	planner, err := services.NewDispatchPlanner(services.NewHashGeocoder(), cfg.TrackAgentStatus)
	if err != nil {
		return nil, err
	}
	finalizer, err := services.NewOrderFinalizer(menu, planner, cfg.TrackAgentStatus)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		uowFactory: uowFactory,
		logger:     logger,
		menu:       menu,
		parser:     parser,
		index:      index,
		finalizer:  finalizer,
	}, nil
}

func (c *CompositionRoot) Config() Config {
	return c.cfg
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartSessionCommandHandler(f)
}

func (c *CompositionRoot) CreateSetAddressCommandHandler() commands.SetAddressCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessTurnCommandHandler() (commands.ProcessTurnCommandHandler, error) {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessTurnCommandHandler(f, c.menu, c.parser, c.index, c.finalizer, c.logger)
}

func (c *CompositionRoot) CreateReleaseAgentsCommandHandler() commands.ReleaseAgentsCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseAgentsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.readFactory())
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menu)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.readFactory(), c.menu)
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.readFactory())
}

// CreateRouter wires every use case behind the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	processTurn, err := c.CreateProcessTurnCommandHandler()
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(
		c.CreateStartSessionCommandHandler(),
		c.CreateSetAddressCommandHandler(),
		processTurn,
		c.CreateGetSessionQueryHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetInventoryQueryHandler(),
		c.CreateGetFleetQueryHandler(),
		c.logger.Named("http"),
	)
	return httpin.NewRouter(server, c.logger.Named("http")), nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	release, err := jobs.NewAgentReleaseJob(
		c.CreateReleaseAgentsCommandHandler(),
		c.cfg.AgentReleaseSchedule,
		c.logger.Named("jobs"),
	)
	if err != nil {
		return nil, err
	}

	lowStock, err := jobs.NewLowStockJob(
		c.CreateGetInventoryQueryHandler(),
		c.cfg.LowStockSchedule,
		c.cfg.LowStockThreshold,
		c.logger.Named("jobs"),
	)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(release, lowStock), nil
}

func (c *CompositionRoot) readFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
