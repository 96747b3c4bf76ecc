package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Logging returns middleware that logs job start and completion.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, m Meta, next Handler) error {
		logger.Info("job started",
			slog.String("job_id", m.JobID.String()),
			slog.String("job_name", m.JobName),
		)

		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		switch {
		case err == nil:
			logger.Info("job completed",
				slog.String("job_id", m.JobID.String()),
				slog.String("job_name", m.JobName),
				slog.Duration("elapsed", elapsed),
			)
		case errors.Is(err, context.Canceled):
			logger.Info("job cancelled",
				slog.String("job_id", m.JobID.String()),
				slog.String("job_name", m.JobName),
				slog.Duration("elapsed", elapsed),
			)
		default:
			logger.Error("job failed",
				slog.String("job_id", m.JobID.String()),
				slog.String("job_name", m.JobName),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		}

		return err
	}
}
