package constant

// Output grid geometry shared by the rasterizer and the display host
const (
	// GridWidth is the number of character columns in a frame
	GridWidth = 80

	// GridHeight is the number of character rows in a frame
	GridHeight = 44

	// FocalLength is the projection constant K1 scaling camera-space x/y to cells
	FocalLength = 40.0

	// CellAspect compensates for terminal cells being twice as tall as wide
	CellAspect = 2.0
)

// Surface characters
const (
	CharEmpty  byte = ' '
	CharCorner byte = '%'

	CharFaceZNeg byte = '@' // z = -1
	CharFaceXPos byte = '$' // x = +1
	CharFaceXNeg byte = '~' // x = -1
	CharFaceZPos byte = '#' // z = +1
	CharFaceYNeg byte = ';' // y = -1
	CharFaceYPos byte = '+' // y = +1
)

// SweepIncrement is the fixed step of the legacy full-range face sweep in cube units
const SweepIncrement = 0.6

// MaxSamples caps the surface points enumerated in one pass
// Validated parameters stay well below it; the cap guards direct render callers
const MaxSamples = 1 << 20
