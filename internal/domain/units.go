package domain

// metersPerSecondPerKnot is the conversion divisor applied to NARR wind
// components before drawing barbs.
const metersPerSecondPerKnot = 0.514

// zeroCelsiusK is the freezing point of water in Kelvin.
const zeroCelsiusK = 273.15

// MSToKnots converts a wind component from meters per second to knots.
func MSToKnots(ms float64) float64 {
	return ms / metersPerSecondPerKnot
}

// KelvinToCelsius converts a temperature from Kelvin to degrees Celsius.
func KelvinToCelsius(k float64) float64 {
	return k - zeroCelsiusK
}
