package filter

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jonathan/aprl-tools/internal/loader"
	"github.com/jonathan/aprl-tools/internal/walker"
)

// Stats counts what happened during aggregation.
type Stats struct {
	FilesRead      int
	FilesSkipped   int
	RecordsSeen    int
	RecordsMatched int
	// RecordsSkipped are matching records without a usable aprlGuid
	RecordsSkipped int
	Duplicates     int
}

// Aggregate loads each file in order and collects the records that pass opts.
// Missing files and files that are not a list of mappings are logged and skipped.
// Only context cancellation stops the run early.
func Aggregate(ctx context.Context, files []walker.ResourceFile, opts Options, logger *zap.Logger) (*ResultSet, Stats, error) {
	results := NewResultSet()
	var stats Stats

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, stats, err
		}

		records, err := loader.LoadRecords(file.AbsPath)
		if err != nil {
			stats.FilesSkipped++
			var shapeErr *loader.ShapeError
			switch {
			case loader.IsNotFound(err):
				logger.Warn("file not found", zap.String("path", file.AbsPath))
			case errors.As(err, &shapeErr):
				logger.Warn("unexpected data structure", zap.String("path", file.AbsPath), zap.String("got", shapeErr.Got))
			default:
				logger.Warn("failed to load recommendations", zap.String("path", file.AbsPath), zap.Error(err))
			}
			continue
		}
		stats.FilesRead++

		resourceURL, err := ResourceURL(opts.BaseURL, file.AbsPath)
		if err != nil {
			logger.Warn("failed to build resource URL", zap.String("path", file.AbsPath), zap.Error(err))
		}

		for i, rec := range records {
			stats.RecordsSeen++
			if !Passes(rec, opts) {
				continue
			}

			guid, ok := rec.GUID()
			if !ok {
				stats.RecordsSkipped++
				logger.Warn("matching record has no aprlGuid", zap.String("path", file.AbsPath), zap.Int("index", i))
				continue
			}

			stats.RecordsMatched++
			if results.Put(guid, Project(rec, file, resourceURL)) {
				stats.Duplicates++
				logger.Debug("duplicate aprlGuid replaced", zap.String("aprlGuid", guid), zap.String("path", file.AbsPath))
			}
		}

		logger.Debug("processed recommendations file",
			zap.String("path", file.AbsPath),
			zap.Int("records", len(records)),
		)
	}

	return results, stats, nil
}
