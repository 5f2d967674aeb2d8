package calculator

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// OTel instruments. They record into a no-op meter until InitMetrics runs.
var (
	workoutsCounter   metric.Int64Counter
	errorCounter      metric.Int64Counter
	caloriesHistogram metric.Float64Histogram
	distanceHistogram metric.Float64Histogram
)

// Prometheus collectors, exported through whichever registry InitMetrics is given.
var (
	workoutsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fittracker_workouts_total",
		Help: "Workouts summarized, by kind.",
	}, []string{"kind"})

	workoutErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fittracker_workout_errors_total",
		Help: "Sensor packages rejected, by error class.",
	}, []string{"class"})

	caloriesSpent = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fittracker_workout_calories",
		Help:    "Calories spent per workout.",
		Buckets: []float64{50, 100, 200, 400, 800, 1600},
	}, []string{"kind"})
)

func init() {
	if err := newInstruments(noop.NewMeterProvider().Meter("calculator")); err != nil {
		panic(err)
	}
}

// InitMetrics registers the calculator's OTel instruments against the global
// meter provider and its Prometheus collectors with reg.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics(reg prometheus.Registerer) error {
	if err := newInstruments(otel.Meter("fittracker/calculator")); err != nil {
		return err
	}

	for _, c := range []prometheus.Collector{workoutsTotal, workoutErrorsTotal, caloriesSpent} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("registering collector: %w", err)
		}
	}

	return nil
}

func newInstruments(meter metric.Meter) error {
	var err error

	workoutsCounter, err = meter.Int64Counter("workout.processed.total",
		metric.WithDescription("Total number of workouts summarized"),
		metric.WithUnit("{workout}"),
	)
	if err != nil {
		return fmt.Errorf("creating workouts counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("workout.errors.total",
		metric.WithDescription("Total number of rejected sensor packages"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	caloriesHistogram, err = meter.Float64Histogram("workout.calories",
		metric.WithDescription("Calories spent per workout"),
		metric.WithUnit("kcal"),
		metric.WithExplicitBucketBoundaries(50, 100, 200, 400, 800, 1600),
	)
	if err != nil {
		return fmt.Errorf("creating calories histogram: %w", err)
	}

	distanceHistogram, err = meter.Float64Histogram("workout.distance",
		metric.WithDescription("Distance covered per workout"),
		metric.WithUnit("km"),
		metric.WithExplicitBucketBoundaries(1, 2, 5, 10, 21.1, 42.2),
	)
	if err != nil {
		return fmt.Errorf("creating distance histogram: %w", err)
	}

	return nil
}
