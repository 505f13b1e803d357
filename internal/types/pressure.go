package types

import "math"

// HpaPerAtm is one standard atmosphere in hectopascals
const HpaPerAtm = 1013.25

type Pressure struct {
	Hpa float64 `json:"hpa"`
	Atm float64 `json:"atm"`
}

func NewPressureFromHpa(hpa float64) Pressure {
	return Pressure{
		Hpa: hpa,
		Atm: Round2(hpa / HpaPerAtm),
	}
}

// Round2 rounds half away from zero to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
