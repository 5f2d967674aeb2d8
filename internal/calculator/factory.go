package calculator

import "math"

// Build constructs the Training for a sensor package: a kind code and its
// positional values in the order action, duration, weight, then the
// kind-specific fields (height for WLK; length_pool, count_pool for SWM).
func Build(code string, values []float64) (Training, error) {
	kind, err := ParseCode(code)
	if err != nil {
		return nil, err
	}
	if len(values) != kind.Arity() {
		return nil, &ArgumentCountError{Kind: kind, Want: kind.Arity(), Got: len(values)}
	}

	rec, err := newRecord(values[0], values[1], values[2])
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindSwimming:
		length, err := nonNegative("length_pool", values[3])
		if err != nil {
			return nil, err
		}
		count, err := wholeNumber("count_pool", values[4])
		if err != nil {
			return nil, err
		}
		return Swimming{Record: rec, LengthPool: length, CountPool: count}, nil
	case KindRunning:
		return Running{Record: rec}, nil
	case KindSportsWalking:
		height, err := positive("height", values[3])
		if err != nil {
			return nil, err
		}
		return SportsWalking{Record: rec, Height: height}, nil
	default:
		return nil, &UnknownCodeError{Code: code}
	}
}

func newRecord(action, duration, weight float64) (Record, error) {
	a, err := wholeNumber("action", action)
	if err != nil {
		return Record{}, err
	}
	d, err := positive("duration", duration)
	if err != nil {
		return Record{}, err
	}
	w, err := nonNegative("weight", weight)
	if err != nil {
		return Record{}, err
	}
	return Record{Action: a, Duration: d, Weight: w}, nil
}

func nonNegative(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InvalidValueError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v < 0 {
		return 0, &InvalidValueError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return v, nil
}

func positive(field string, v float64) (float64, error) {
	v, err := nonNegative(field, v)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, &InvalidValueError{Field: field, Value: v, Reason: "must be greater than zero"}
	}
	return v, nil
}

func wholeNumber(field string, v float64) (int, error) {
	v, err := nonNegative(field, v)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, &InvalidValueError{Field: field, Value: v, Reason: "must be a whole number"}
	}
	if v >= math.MaxInt {
		return 0, &InvalidValueError{Field: field, Value: v, Reason: "is out of range"}
	}
	return int(v), nil
}
