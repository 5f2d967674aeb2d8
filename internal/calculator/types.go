package calculator

import "fmt"

// Kind is the closed set of workout kinds the calculator knows about.
type Kind int

const (
	KindSwimming Kind = iota + 1
	KindRunning
	KindSportsWalking
)

// Kinds returns every supported kind in dispatch order. The slice is a fresh
// copy on each call.
func Kinds() []Kind {
	return []Kind{KindSwimming, KindRunning, KindSportsWalking}
}

// String returns the display name used in reports.
func (k Kind) String() string {
	switch k {
	case KindSwimming:
		return "Swimming"
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Code returns the short sensor code for the kind ("SWM", "RUN", "WLK").
func (k Kind) Code() string {
	switch k {
	case KindSwimming:
		return "SWM"
	case KindRunning:
		return "RUN"
	case KindSportsWalking:
		return "WLK"
	default:
		return ""
	}
}

// Arity is the number of positional values a sensor package of this kind carries.
func (k Kind) Arity() int {
	switch k {
	case KindSwimming:
		return 5
	case KindRunning:
		return 3
	case KindSportsWalking:
		return 4
	default:
		return 0
	}
}

// ParseCode resolves a sensor code to its Kind.
func ParseCode(code string) (Kind, error) {
	switch code {
	case "SWM":
		return KindSwimming, nil
	case "RUN":
		return KindRunning, nil
	case "WLK":
		return KindSportsWalking, nil
	default:
		return 0, &UnknownCodeError{Code: code}
	}
}

// Record holds the raw readings common to every workout.
type Record struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

// Report is the computed summary of a single workout.
type Report struct {
	Kind     Kind
	Duration float64 // hours
	Distance float64 // km
	Speed    float64 // km/h
	Calories float64 // kcal
}
