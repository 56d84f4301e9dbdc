// Package container wires the fintrack components together. Commands obtain
// every dependency from a Container instead of constructing their own.
package container

import (
	"errors"
	"fmt"

	"fjacquet/fintrack/internal/aggregation"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/notify"
	"fjacquet/fintrack/internal/palette"
	"fjacquet/fintrack/internal/render"
	"fjacquet/fintrack/internal/repository"
	"fjacquet/fintrack/internal/store"
)

// Container holds all application dependencies. Fields are private and set
// once by NewContainer.
type Container struct {
	logger        logging.Logger
	config        *config.Config
	store         store.TransactionStore
	notifications *notify.Recorder
	repository    *repository.Repository
	aggregator    *aggregation.Aggregator
	palette       *palette.Palette
	renderer      *render.Renderer
	clock         repository.Clock
}

// Option overrides a dependency before wiring.
type Option func(*settings)

type settings struct {
	logger logging.Logger
	store  store.TransactionStore
	clock  repository.Clock
	newID  repository.IDGenerator
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logging.Logger) Option { return func(s *settings) { s.logger = l } }

// WithStore replaces the store built from the configuration.
func WithStore(st store.TransactionStore) Option { return func(s *settings) { s.store = st } }

// WithClock replaces the wall clock.
func WithClock(c repository.Clock) Option { return func(s *settings) { s.clock = c } }

// WithIDGenerator replaces the id generator.
func WithIDGenerator(g repository.IDGenerator) Option { return func(s *settings) { s.newID = g } }

// NewContainer creates and wires all dependencies, then loads the stored
// collection into the repository.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("configuration cannot be nil")
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	logger := s.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	st := s.store
	if st == nil {
		var err error
		st, err = store.Open(cfg.StoreOptions(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
	}

	clock := s.clock
	if clock == nil {
		clock = repository.SystemClock{}
	}

	recorder := notify.NewRecorder()
	repoOpts := []repository.Option{
		repository.WithLogger(logger),
		repository.WithNotifier(notify.Fanout{notify.NewLogNotifier(logger), recorder}),
		repository.WithClock(clock),
	}
	if s.newID != nil {
		repoOpts = append(repoOpts, repository.WithIDGenerator(s.newID))
	}
	repo := repository.New(st, repoOpts...)
	repo.Load()

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldStore, Value: st.Name()},
		logging.Field{Key: logging.FieldCount, Value: repo.Len()})

	pal := palette.New(cfg.Palette.Seed)

	return &Container{
		logger:        logger,
		config:        cfg,
		store:         st,
		notifications: recorder,
		repository:    repo,
		aggregator:    aggregation.NewAggregator(logger),
		palette:       pal,
		renderer:      render.New(pal, cfg.View.CurrencySymbol),
		clock:         clock,
	}, nil
}

func (c *Container) GetLogger() logging.Logger              { return c.logger }
func (c *Container) GetConfig() *config.Config              { return c.config }
func (c *Container) GetStore() store.TransactionStore       { return c.store }
func (c *Container) GetRepository() *repository.Repository  { return c.repository }
func (c *Container) GetAggregator() *aggregation.Aggregator { return c.aggregator }
func (c *Container) GetPalette() *palette.Palette           { return c.palette }
func (c *Container) GetRenderer() *render.Renderer          { return c.renderer }
func (c *Container) GetClock() repository.Clock             { return c.clock }
func (c *Container) GetNotifications() *notify.Recorder     { return c.notifications }

// Close releases the store.
func (c *Container) Close() error {
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
