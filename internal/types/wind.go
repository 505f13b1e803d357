package types

// MpsToKph converts metres per second to kilometres per hour
const MpsToKph = 3.6

// CompassDirection is one of the eight 45° wind sectors
type CompassDirection string

const (
	North     CompassDirection = "North"
	NorthEast CompassDirection = "North-East"
	East      CompassDirection = "East"
	SouthEast CompassDirection = "South-East"
	South     CompassDirection = "South"
	SouthWest CompassDirection = "South-West"
	West      CompassDirection = "West"
	NorthWest CompassDirection = "North-West"
)

// sectors are half-open [from, to) ranges tested in ascending order
var sectors = []struct {
	from, to  float64
	direction CompassDirection
}{
	{0, 22.5, North},
	{22.5, 67.5, NorthEast},
	{67.5, 112.5, East},
	{112.5, 157.5, SouthEast},
	{157.5, 202.5, South},
	{202.5, 247.5, SouthWest},
	{247.5, 292.5, West},
	{292.5, 337.5, NorthWest},
}

// ClassifyDirection maps a bearing in degrees to a compass sector.
// Anything no sector matches, including [337.5, 360), negatives, values
// of 360 and above and NaN, is North.
func ClassifyDirection(degrees float64) CompassDirection {
	for _, s := range sectors {
		if degrees >= s.from && degrees < s.to {
			return s.direction
		}
	}
	return North
}

func (d CompassDirection) String() string {
	return string(d)
}

type Wind struct {
	SpeedInMps       float64          `json:"speedMps"`
	SpeedInKph       float64          `json:"speedKph"`
	GustsInMps       float64          `json:"gustsMps"`
	DirectionDegrees float64          `json:"directionDegrees"`
	Direction        CompassDirection `json:"direction"`
}

func NewWindFromMps(speedInMps, gustsInMps, directionDegrees float64) Wind {
	return Wind{
		SpeedInMps:       speedInMps,
		SpeedInKph:       Round2(speedInMps * MpsToKph),
		GustsInMps:       gustsInMps,
		DirectionDegrees: directionDegrees,
		Direction:        ClassifyDirection(directionDegrees),
	}
}
