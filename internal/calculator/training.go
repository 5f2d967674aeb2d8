package calculator

import "math"

// Training is a workout whose statistics can be computed.
//
// The interface is sealed: only the variants in this package implement it,
// so every Training is guaranteed to carry its own calorie formula.
type Training interface {
	Kind() Kind
	// Readings returns the raw readings common to every kind.
	Readings() Record
	// Distance is the covered distance in km.
	Distance() float64
	// MeanSpeed is the average speed in km/h.
	MeanSpeed() float64
	// Calories is the energy spent in kcal.
	Calories() float64

	sealed()
}

// Summarize computes the Report for t.
func Summarize(t Training) Report {
	return Report{
		Kind:     t.Kind(),
		Duration: t.Readings().Duration,
		Distance: t.Distance(),
		Speed:    t.MeanSpeed(),
		Calories: t.Calories(),
	}
}

func (r Record) distance(step float64) float64 {
	return float64(r.Action) * step / mInKm
}

// Running is a run measured in steps.
type Running struct {
	Record
}

func (Running) Kind() Kind { return KindRunning }

func (r Running) Readings() Record { return r.Record }

func (r Running) Distance() float64 { return r.distance(lenStep) }

func (r Running) MeanSpeed() float64 { return r.Distance() / r.Duration }

func (r Running) Calories() float64 {
	return (runCoeffSpeed*r.MeanSpeed() - runCoeffShift) * r.Weight / mInKm * r.Duration * minInH
}

func (Running) sealed() {}

// SportsWalking is a race walk measured in steps. Height is in cm.
type SportsWalking struct {
	Record
	Height float64
}

func (SportsWalking) Kind() Kind { return KindSportsWalking }

func (w SportsWalking) Readings() Record { return w.Record }

func (w SportsWalking) Distance() float64 { return w.distance(lenStep) }

func (w SportsWalking) MeanSpeed() float64 { return w.Distance() / w.Duration }

// Calories floors speed²/height before scaling, so any walk slower than
// sqrt(height) km/h contributes only the weight term.
func (w SportsWalking) Calories() float64 {
	speed := w.MeanSpeed()
	return (walkCoeffWeight*w.Weight +
		math.Floor(speed*speed/w.Height)*walkCoeffSpeed*w.Weight) *
		w.Duration * minInH
}

func (SportsWalking) sealed() {}

// Swimming is a pool swim measured in strokes. LengthPool is in metres.
type Swimming struct {
	Record
	LengthPool float64
	CountPool  int
}

func (Swimming) Kind() Kind { return KindSwimming }

func (s Swimming) Readings() Record { return s.Record }

func (s Swimming) Distance() float64 { return s.distance(swimLenStep) }

// MeanSpeed uses the pool lengths swum rather than the stroke distance.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimCoeffShift) * swimCoeffWeight * s.Weight
}

func (Swimming) sealed() {}
