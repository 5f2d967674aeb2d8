package calculator

// Measurement constants shared by every workout kind.
const (
	lenStep       = 0.65 // metres per step, running and walking
	swimLenStep   = 1.38 // metres per stroke
	mInKm         = 1000
	minInH        = 60
	runCoeffSpeed = 18
	runCoeffShift = 20

	walkCoeffWeight = 0.035
	walkCoeffSpeed  = 0.029

	swimCoeffShift  = 1.1
	swimCoeffWeight = 2
)
