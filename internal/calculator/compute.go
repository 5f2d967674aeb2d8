package calculator

import (
	"context"

	"fittracker/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "fittracker/calculator"

// Process builds the Training for one sensor package and summarizes it.
// Every call produces a workout.process span, metric updates and one log
// entry; rejected packages go through observability.RecordError.
func Process(ctx context.Context, code string, values []float64) (Report, error) {
	runID := observability.RunIDFromContext(ctx)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "workout.process",
		trace.WithAttributes(
			attribute.String("workout.code", code),
			attribute.Int("workout.values", len(values)),
			attribute.String("run.id", runID),
		),
	)
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	t, err := Build(code, values)
	if err != nil {
		class := errorClass(err)
		workoutErrorsTotal.WithLabelValues(class).Inc()
		observability.RecordError(ctx, span, logger, errorCounter, "build", "invalid sensor package", err,
			attribute.String("error.class", class),
		)
		return Report{}, err
	}

	kind := t.Kind().String()
	span.SetAttributes(attribute.String("workout.kind", kind))

	report := Summarize(t)

	attrs := metric.WithAttributes(attribute.String("kind", kind))
	workoutsCounter.Add(ctx, 1, attrs)
	caloriesHistogram.Record(ctx, report.Calories, attrs)
	distanceHistogram.Record(ctx, report.Distance, attrs)
	workoutsTotal.WithLabelValues(kind).Inc()
	caloriesSpent.WithLabelValues(kind).Observe(report.Calories)

	span.AddEvent("workout.summarized", trace.WithAttributes(
		attribute.Float64("distance_km", report.Distance),
		attribute.Float64("speed_kmh", report.Speed),
		attribute.Float64("calories_kcal", report.Calories),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("workout processed",
		zap.String("kind", kind),
		zap.Float64("duration_h", report.Duration),
		zap.Float64("distance_km", report.Distance),
		zap.Float64("speed_kmh", report.Speed),
		zap.Float64("calories_kcal", report.Calories),
		zap.String("run_id", runID),
	)

	return report, nil
}
