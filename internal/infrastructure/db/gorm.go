package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"agrifin-backend/internal/domain/farmer"
	"agrifin-backend/internal/domain/loan"
	"agrifin-backend/internal/domain/product"
	"agrifin-backend/internal/domain/user"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the GORM driver for a configured driver name.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

func OpenGorm(driver, dsn string, verbose bool) (*gorm.DB, error) {
	dial, err := Dialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	lvl := logger.Warn
	if verbose {
		lvl = logger.Info
	}
	return OpenGormWithDialector(dial, WithLogLevel(lvl))
}

type openOptions struct {
	logLevel logger.LogLevel
}

type Option func(*openOptions)

func WithLogLevel(l logger.LogLevel) Option { return func(o *openOptions) { o.logLevel = l } }

// OpenGormWithDialector opens, tunes the pool and pings.
func OpenGormWithDialector(dial gorm.Dialector, opts ...Option) (*gorm.DB, error) {
	o := openOptions{logLevel: logger.Warn}
	for _, fn := range opts {
		fn(&o)
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(o.logLevel),
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&user.User{}, &farmer.Farmer{}, &loan.Loan{}, &product.Product{})
}

// Provider owns the process wide connection. It connects on first use and
// must be closed by whoever created it.
type Provider struct {
	open func() (*gorm.DB, error)
	log  *zap.Logger

	mu     sync.Mutex
	db     *gorm.DB
	closed bool
}

var ErrClosed = errors.New("db: provider closed")

func NewProvider(open func() (*gorm.DB, error), log *zap.Logger) *Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &Provider{open: open, log: log}
}

// Get returns the shared handle, connecting if needed. A failed connect is
// retried on the next call.
func (p *Provider) Get(ctx context.Context) (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrClosed
	}
	if p.db != nil {
		return p.db.WithContext(ctx), nil
	}
	db, err := p.open()
	if err != nil {
		p.log.Error("db connect failed", zap.Error(err))
		return nil, err
	}
	p.log.Info("db connected", zap.String("dialect", db.Dialector.Name()))
	p.db = db
	return db.WithContext(ctx), nil
}

func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	p.log.Info("db connection closed")
	return sqlDB.Close()
}
