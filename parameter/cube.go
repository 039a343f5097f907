package parameter

// Scene defaults applied before config file and flag overrides
const (
	DefaultDistance = 27.0
	DefaultSpeed    = 0.5
	DefaultSize     = 7.0
	DefaultDensity  = 0.6
	DefaultMode     = "normal"
	DefaultSampler  = "density"
)

// Validation bounds for configured scenes
// Sample count grows with 1/density² and, for the sweep sampler, with size²
const (
	DensityFloor = 0.01
	SizeLimit    = 100.0
)

// Interactive control ranges
// Key presses step a value and clamp it into [Min, Max]
const (
	SpeedMin  = 0.1
	SpeedMax  = 5.0
	SpeedStep = 0.1

	SizeMin  = 5.0
	SizeMax  = 30.0
	SizeStep = 1.0

	DistanceMin  = 5.0
	DistanceMax  = 200.0
	DistanceStep = 1.0

	DensityMin  = 0.1
	DensityMax  = 1.0
	DensityStep = 0.05
)
