package helio

import (
	"time"

	"github.com/soniakeys/meeus/julian"
)

const (
	// J2000 is the Julian Date of the J2000.0 reference epoch.
	J2000 = 2451545.0
	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0
	// JulianYear is the number of days in a Julian year.
	JulianYear = 365.25
	// SolarCycleDays is the mean length of a solar activity cycle in days (~11 years).
	SolarCycleDays = 4018.0
	// SolarCycle25MinJD is the reference solar minimum (December 2019).
	SolarCycle25MinJD = 2458849.0
)

// EpochFromTime converts a wall-clock time to a fractional Julian Date.
func EpochFromTime(dt time.Time) float64 {
	return julian.TimeToJD(dt)
}

// TimeFromEpoch converts a fractional Julian Date to a time.Time (UTC).
func TimeFromEpoch(jde float64) time.Time {
	return julian.JDToTime(jde)
}

// centuriesFromJ2000 returns the number of Julian centuries elapsed since J2000.0.
func centuriesFromJ2000(jde float64) float64 {
	return (jde - J2000) / JulianCentury
}

// yearsFromJ2000 returns the number of Julian years elapsed since J2000.0.
func yearsFromJ2000(jde float64) float64 {
	return (jde - J2000) / JulianYear
}

// SolarCyclePhase returns the phase of the ~11 year solar activity cycle at the
// given epoch, in [0, 1). Zero is solar minimum, 0.5 is solar maximum.
func SolarCyclePhase(jde float64) float64 {
	frac := (jde - SolarCycle25MinJD) / SolarCycleDays
	frac -= float64(int(frac))
	if frac < 0 {
		frac++
	}
	return frac
}

// SolarCycleName returns a human readable label for the cycle phase at jde.
func SolarCycleName(jde float64) string {
	phase := SolarCyclePhase(jde)
	switch {
	case phase < 0.125 || phase >= 0.875:
		return "Solar Min"
	case phase < 0.375:
		return "Rising"
	case phase < 0.625:
		return "Solar Max"
	default:
		return "Declining"
	}
}
