package app

import (
	"perfect-fit/internal/config"
	"perfect-fit/internal/domain/sizing"
	"perfect-fit/internal/usecase"

	"go.uber.org/zap"
)

// Container holds the process-wide dependencies. The size chart is built
// once here and shared read-only by every request.
type Container struct {
	Config      config.Config
	Logger      *zap.Logger
	Chart       *sizing.Chart
	FitAnalysis *usecase.FitAnalysis
	SizeChart   *usecase.SizeChart
}

func NewContainer(cfg config.Config, logger *zap.Logger) *Container {
	chart := sizing.DefaultChart()
	return &Container{
		Config:      cfg,
		Logger:      logger,
		Chart:       chart,
		FitAnalysis: usecase.NewFitAnalysisUsecase(chart),
		SizeChart:   usecase.NewSizeChartUsecase(chart),
	}
}

func (c *Container) Close() error {
	if c == nil || c.Logger == nil {
		return nil
	}
	// Sync on stdout returns EINVAL on some platforms; nothing to recover.
	_ = c.Logger.Sync()
	return nil
}
