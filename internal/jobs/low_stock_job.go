package jobs

import (
	"context"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type InventoryReader interface {
	Handle(ctx context.Context, query queries.GetInventoryQuery) ([]queries.GetInventoryQueryResponse, error)
}

// LowStockJob warns about menu items running out.
type LowStockJob struct {
	reader    InventoryReader
	schedule  string
	threshold int
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewLowStockJob(reader InventoryReader, schedule string, threshold int, logger *zap.Logger) (*LowStockJob, error) {
	if _, err := ParseSchedule(schedule); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LowStockJob{
		reader:    reader,
		schedule:  schedule,
		threshold: threshold,
		cron:      newCron(),
		logger:    logger.With(zap.String("component", "low_stock_job")),
	}, nil
}

func (j *LowStockJob) Name() string {
	return "low stock"
}

func (j *LowStockJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("low stock job started", zap.String("schedule", j.schedule), zap.Int("threshold", j.threshold))
	return nil
}

// Run logs one warning per item at or below the threshold and returns
// the ids it warned about.
func (j *LowStockJob) Run(ctx context.Context) []string {
	items, err := j.reader.Handle(ctx, queries.NewGetInventoryQuery())
	if err != nil {
		j.logger.Error("low stock job failed", zap.Error(err))
		return nil
	}

	var low []string
	for _, item := range items {
		if item.Stock > j.threshold {
			continue
		}
		low = append(low, item.ID)
		j.logger.Warn("low stock",
			zap.String("item", item.Name),
			zap.String("id", item.ID),
			zap.Int("stock", item.Stock),
		)
	}
	return low
}

func (j *LowStockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("low stock job stopped")
}
