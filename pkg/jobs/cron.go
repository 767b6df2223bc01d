package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/pkg/metrics"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	db      *ent.Client
	metrics *metrics.Metrics
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, m *metrics.Metrics, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		db:      db,
		metrics: m,
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly: refresh the entity gauges so dashboards stay close to reality
	// without a query on every scrape.
	if _, err := cm.cron.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := cm.RefreshStats(ctx); err != nil {
			cm.logger.Printf("❌ Failed to refresh stats gauges: %v", err)
		}
	}); err != nil {
		return err
	}

	// Daily at 6 AM: log an engagement summary for the ops channel.
	if _, err := cm.cron.AddFunc("0 6 * * *", func() {
		cm.logger.Println("🕐 Running daily engagement summary job...")

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		prospects, err := cm.db.Prospect.Query().Count(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed counting prospects: %v", err)
			return
		}
		engagements, err := cm.db.Engagement.Query().Count(ctx)
		if err != nil {
			cm.logger.Printf("❌ Failed counting engagements: %v", err)
			return
		}

		cm.logger.Printf("✅ Daily summary: %d prospects, %d engagements", prospects, engagements)
	}); err != nil {
		return err
	}

	return nil
}

// RefreshStats updates the prospect and engagement gauges from the database.
func (cm *CronManager) RefreshStats(ctx context.Context) error {
	prospects, err := cm.db.Prospect.Query().Count(ctx)
	if err != nil {
		return err
	}
	engagements, err := cm.db.Engagement.Query().Count(ctx)
	if err != nil {
		return err
	}

	cm.metrics.ProspectsTotal.Set(float64(prospects))
	cm.metrics.EngagementsTotal.Set(float64(engagements))
	return nil
}

// Start begins executing scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("✅ Cron jobs started")
}

// Stop halts all scheduled jobs
func (cm *CronManager) Stop() {
	cm.cron.Stop()
	cm.logger.Println("🛑 Cron jobs stopped")
}
