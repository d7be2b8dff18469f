package helio

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

// OrbitalElements are heliocentric Keplerian elements at J2000. Angles are
// stored in radians, the semi-major axis in AU and the mean motion in
// radians per day.
type OrbitalElements struct {
	A  float64 // semi-major axis
	E  float64 // eccentricity
	I  float64 // inclination
	Ω  float64 // longitude of the ascending node
	ω  float64 // argument of perihelion
	M0 float64 // mean anomaly at J2000
	N  float64 // mean motion
}

// NewOrbitalElements builds elements from the tabulated degree values: the
// mean longitude at epoch l0 folds into a mean anomaly, and the period in
// Julian years into a mean motion.
func NewOrbitalElements(a, e, iDeg, ΩDeg, ωDeg, l0Deg, periodYears float64) OrbitalElements {
	return OrbitalElements{
		A:  a,
		E:  e,
		I:  Deg2rad(iDeg),
		Ω:  Deg2rad(ΩDeg),
		ω:  Deg2rad(ωDeg),
		M0: Deg2rad(l0Deg - ωDeg - ΩDeg),
		N:  2 * math.Pi / (periodYears * JulianYear),
	}
}

// solveKepler returns the true anomaly and heliocentric distance at jde.
// Five Newton iterations are plenty for e < 0.3.
func (o OrbitalElements) solveKepler(jde float64) (ν, r float64) {
	m := math.Mod(o.M0+o.N*(jde-J2000), 2*math.Pi)
	E := m + o.E*math.Sin(m)
	for i := 0; i < 5; i++ {
		E -= (E - o.E*math.Sin(E) - m) / (1 - o.E*math.Cos(E))
	}
	ν = 2 * math.Atan(math.Sqrt((1+o.E)/(1-o.E))*math.Tan(E/2))
	r = o.A * (1 - o.E*math.Cos(E))
	return ν, r
}

// PositionAt returns the ecliptic Cartesian position in AU at jde: perifocal
// coordinates rotated through the argument of perihelion, inclination and
// node.
func (o OrbitalElements) PositionAt(jde float64) []float64 {
	ν, r := o.solveKepler(jde)
	u := ν + o.ω
	xOrb := r * math.Cos(u)
	yOrb := r * math.Sin(u)
	sinΩ, cosΩ := math.Sincos(o.Ω)
	sinI, cosI := math.Sincos(o.I)
	return []float64{
		xOrb*cosΩ - yOrb*cosI*sinΩ,
		xOrb*sinΩ + yOrb*cosI*cosΩ,
		yOrb * sinI,
	}
}

// PeriodDays returns the orbital period in days.
func (o OrbitalElements) PeriodDays() float64 {
	return 2 * math.Pi / o.N
}

// Body is a major heliocentric body with its mean elements.
type Body struct {
	Name     string
	RadiusKm float64
	Elements OrbitalElements
	// vsopIndex selects the VSOP87 theory when the full ephemeris is enabled;
	// -1 means no theory exists (Pluto uses its own series).
	vsopIndex int
}

// The nine catalog bodies. Element sets are J2000 mean elements, adequate for
// outer-system context rendering rather than precision ephemerides.
var (
	Mercury = Body{"Mercury", 2439.7, NewOrbitalElements(0.387, 0.206, 7.0, 48.3, 29.1, 252.3, 0.241), planetposition.Mercury}
	Venus   = Body{"Venus", 6051.8, NewOrbitalElements(0.723, 0.007, 3.4, 76.7, 54.9, 182.0, 0.615), planetposition.Venus}
	Earth   = Body{"Earth", 6371.0, NewOrbitalElements(1.000, 0.017, 0.0, 174.9, 288.1, 100.5, 1.0), planetposition.Earth}
	Mars    = Body{"Mars", 3389.5, NewOrbitalElements(1.524, 0.093, 1.85, 49.6, 286.5, 355.5, 1.881), planetposition.Mars}
	Jupiter = Body{"Jupiter", 69911.0, NewOrbitalElements(5.203, 0.048, 1.3, 100.5, 273.9, 34.4, 11.86), planetposition.Jupiter}
	Saturn  = Body{"Saturn", 58232.0, NewOrbitalElements(9.537, 0.054, 2.5, 113.7, 339.4, 50.0, 29.46), planetposition.Saturn}
	Uranus  = Body{"Uranus", 25362.0, NewOrbitalElements(19.19, 0.047, 0.8, 74.0, 97.0, 313.2, 84.01), planetposition.Uranus}
	Neptune = Body{"Neptune", 24622.0, NewOrbitalElements(30.07, 0.009, 1.8, 131.8, 276.3, 304.9, 164.8), planetposition.Neptune}
	Pluto   = Body{"Pluto", 1188.3, NewOrbitalElements(39.48, 0.249, 17.16, 110.3, 113.8, 238.9, 248.0), -1}
)

// Planets lists the catalog in heliocentric order.
var Planets = []Body{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// BodyByName finds a catalog body, case insensitively.
func BodyByName(name string) (Body, error) {
	for _, b := range Planets {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return Body{}, fmt.Errorf("no body named %q in the catalog", name)
}

var (
	vsopMu     sync.Mutex
	vsopLoaded = map[int]*planetposition.V87Planet{}
)

// vsopPlanet loads (and memoizes) the VSOP87 theory for a planet index from
// the configured directory.
func vsopPlanet(index int) (*planetposition.V87Planet, error) {
	vsopMu.Lock()
	defer vsopMu.Unlock()
	if p, found := vsopLoaded[index]; found {
		return p, nil
	}
	p, err := planetposition.LoadPlanetPath(index, helioConfig().VSOP87Dir)
	if err != nil {
		return nil, err
	}
	vsopLoaded[index] = p
	return p, nil
}

// PositionAt returns the body's ecliptic Cartesian position in AU at jde.
// With the VSOP87 data files configured it uses the full theory (and the
// dedicated series for Pluto); otherwise, or if loading fails, it falls back
// to the mean Keplerian elements.
func (b Body) PositionAt(jde float64) []float64 {
	if helioConfig().VSOP87 {
		if b.vsopIndex == -1 {
			l, bb, r := pluto.Heliocentric(jde)
			return Spherical2Cartesian([]float64{r, math.Pi/2 - bb.Rad(), l.Rad()})
		}
		if planet, err := vsopPlanet(b.vsopIndex); err == nil {
			l, bb, r := planet.Position2000(jde)
			return Spherical2Cartesian([]float64{r, math.Pi/2 - bb.Rad(), l.Rad()})
		}
	}
	return b.Elements.PositionAt(jde)
}

// Ephemeris sampling limits.
const (
	samplesPerOrbit = 128
	maxEphemSamples = 16384
)

// Ephemeris samples the body's track over [startJD, endJD] into a vector
// series, at samplesPerOrbit points per orbital period (bounded overall).
func (b Body) Ephemeris(startJD, endJD float64) *VectorSeries {
	if endJD < startJD {
		startJD, endJD = endJD, startJD
	}
	count := int(math.Ceil((endJD-startJD)/b.Elements.PeriodDays()*samplesPerOrbit)) + 1
	if count < 2 {
		count = 2
	}
	if count > maxEphemSamples {
		count = maxEphemSamples
	}
	epochs := make([]float64, count)
	positions := make([][]float64, count)
	for i := 0; i < count; i++ {
		jde := startJD + (endJD-startJD)*float64(i)/float64(count-1)
		epochs[i] = jde
		positions[i] = b.PositionAt(jde)
	}
	return NewVectorSeries(epochs, positions)
}
