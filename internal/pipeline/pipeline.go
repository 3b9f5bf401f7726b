// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"fastfood-insights/internal/analytics"
	"fastfood-insights/internal/classify"
	"fastfood-insights/internal/config"
	"fastfood-insights/internal/exporter"
	"fastfood-insights/internal/ingest"
	"fastfood-insights/internal/storage"
)

// Pipeline wires the stages of one batch run: ingest, persist, classify,
// aggregate, export. It is fail-fast: an IO or schema failure anywhere stops
// the run, because every later stage assumes a complete record set.
type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	reader     *ingest.Reader
	store      *storage.SQLiteStore
	classifier *classify.Classifier
	csv        *exporter.CSVWriter
	chart      *exporter.ChartWriter
}

func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize backing store: %w", err)
	}
	return &Pipeline{
		cfg:        cfg,
		logger:     logger,
		reader:     ingest.NewReader(logger),
		store:      store,
		classifier: classify.NewDefault(),
		csv:        exporter.NewCSVWriter(logger),
		chart:      exporter.NewChartWriter(logger),
	}, nil
}

func (p *Pipeline) Close() error {
	return p.store.Close()
}

// Run executes one batch over the configured locations. The enriched CSV is
// written as soon as classification is done: classification and aggregation
// are independent over the same record set, so a bad numeric value aborts the
// run without discarding the classified export.
func (p *Pipeline) Run(ctx context.Context) error {
	raw, err := p.reader.ReadCSV(p.cfg.InputPath)
	if err != nil {
		return err
	}

	if err := p.store.ReplaceDataset(ctx, raw); err != nil {
		return err
	}
	p.logger.Info("backing store replaced", slog.String("path", p.cfg.DBPath))

	ds, err := p.store.LoadDataset(ctx)
	if err != nil {
		return err
	}

	p.classifier.ClassifyAll(ds)
	p.logger.Info("items classified", slog.Int("records", len(ds.Records)))

	if err := p.csv.WriteEnriched(p.cfg.OutputPath, ds); err != nil {
		return err
	}

	stats, err := analytics.CalorieStats(ds.Records)
	if err != nil {
		return err
	}
	p.logger.Info("calorie statistics computed", slog.Int("restaurants", len(stats)))
	for restaurant, st := range stats {
		p.logger.Debug("calorie statistics",
			slog.String("restaurant", restaurant),
			slog.Float64("mean", st.Mean),
			slog.Float64("min", st.Min),
			slog.Float64("max", st.Max))
	}

	ranks, err := analytics.RankByAverageCarbs(ds.Records, p.cfg.RankLimit)
	if err != nil {
		return err
	}
	p.logger.Info("restaurants ranked by average carbs", slog.Int("entries", len(ranks)))

	return p.chart.WriteCarbChart(p.cfg.ChartPath, ranks)
}
