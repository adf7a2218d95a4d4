package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/sources/seed"
)

// SeedTarget receives freshly loaded seed content
type SeedTarget interface {
	SetSeed(c domain.Content)
}

// SeedReloader handles periodic and manual reloading of the seed content file
type SeedReloader struct {
	loader        *seed.Loader
	mapper        *seed.Mapper
	target        SeedTarget
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSeedReloader creates a new seed reloader. A zero interval disables
// periodic reloads; manualTrigger may be nil.
func NewSeedReloader(
	seedFile string,
	target SeedTarget,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedReloader {
	return &SeedReloader{
		loader:        seed.NewLoader(seedFile),
		mapper:        seed.NewMapper(),
		target:        target,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the seed once and then keeps it fresh
func (sr *SeedReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial seed load failed: %w", err)
	}

	var ticker *time.Ticker
	var tick <-chan time.Time
	if sr.interval > 0 {
		ticker = time.NewTicker(sr.interval)
		tick = ticker.C
	}

	go func() {
		if ticker != nil {
			defer ticker.Stop()
		}
		for {
			select {
			case <-tick:
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed content",
						logger.Error(err))
				}
			case <-sr.manualTrigger:
				sr.logger.Info("manual seed reload triggered")
				if err := sr.Reload(ctx); err != nil {
					sr.logger.Error("failed to reload seed content",
						logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (sr *SeedReloader) Stop() {
	close(sr.stopCh)
}

// Reload loads and maps the seed file and hands it to the target. On error
// the previous seed stays in place.
func (sr *SeedReloader) Reload(_ context.Context) error {
	f, err := sr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}

	c, err := sr.mapper.MapContent(f)
	if err != nil {
		return fmt.Errorf("failed to map seed: %w", err)
	}

	sr.target.SetSeed(c)
	sr.logger.Info("seed content loaded",
		logger.String("file", sr.loader.Path()),
		logger.Int("videos", len(c.Videos)),
		logger.Int("posts", len(c.Posts)),
		logger.Int("teachers", len(c.Teachers)))

	return nil
}
