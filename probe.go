package helio

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// trajectorySamples is the resampling resolution of a probe track.
const trajectorySamples = 1000

// Waypoint pins a probe at one epoch: heliocentric distance in AU and
// ecliptic longitude/latitude in degrees.
type Waypoint struct {
	Epoch     float64
	RadialAU  float64
	Longitude float64
	Latitude  float64
}

// cartesian converts the waypoint position to ecliptic Cartesian AU.
func (w Waypoint) cartesian() []float64 {
	θ := math.Pi/2 - w.Latitude*deg2rad
	φ := w.Longitude * deg2rad
	return Spherical2Cartesian([]float64{w.RadialAU, θ, φ})
}

// ProbeTrajectory is a resampled probe track through the outer system. Past
// the last waypoint the probe coasts: the heliocentric distance grows at the
// stated radial rate while the direction of the last waypoint is held.
type ProbeTrajectory struct {
	Name       string
	CruiseKmS  float64
	RadialRate float64 // AU per Julian year; zero for bound orbits

	waypoints []Waypoint
	track     *VectorSeries
}

// NewProbeTrajectory resamples the waypoint table (which must be sorted by
// epoch and hold at least two entries) into a uniform track.
func NewProbeTrajectory(name string, waypoints []Waypoint, cruiseKmS, radialRateAUYr float64) (*ProbeTrajectory, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("probe %s: need at least two waypoints, got %d", name, len(waypoints))
	}
	for i := 1; i < len(waypoints); i++ {
		if waypoints[i].Epoch <= waypoints[i-1].Epoch {
			return nil, fmt.Errorf("probe %s: waypoint epochs not increasing at index %d", name, i)
		}
	}
	p := &ProbeTrajectory{
		Name:       name,
		CruiseKmS:  cruiseKmS,
		RadialRate: radialRateAUYr,
		waypoints:  waypoints,
	}
	start := waypoints[0].Epoch
	end := waypoints[len(waypoints)-1].Epoch
	epochs := make([]float64, trajectorySamples)
	positions := make([][]float64, trajectorySamples)
	for i := 0; i < trajectorySamples; i++ {
		jde := start + (end-start)*float64(i)/float64(trajectorySamples-1)
		epochs[i] = jde
		positions[i] = p.waypointPosition(jde)
	}
	p.track = NewVectorSeries(epochs, positions)
	return p, nil
}

// Range returns the epoch span covered by the waypoint table.
func (p *ProbeTrajectory) Range() (float64, float64) {
	return p.waypoints[0].Epoch, p.waypoints[len(p.waypoints)-1].Epoch
}

// waypointPosition interpolates the raw waypoint table in spherical
// coordinates, which keeps the track on the great-circle-ish arc the probe
// actually flew instead of cutting chords through the inner system.
func (p *ProbeTrajectory) waypointPosition(jde float64) []float64 {
	wps := p.waypoints
	if jde <= wps[0].Epoch {
		return wps[0].cartesian()
	}
	last := wps[len(wps)-1]
	if jde >= last.Epoch {
		return last.cartesian()
	}
	i := sort.Search(len(wps), func(k int) bool { return wps[k].Epoch > jde }) - 1
	a, b := wps[i], wps[i+1]
	f := (jde - a.Epoch) / (b.Epoch - a.Epoch)
	w := Waypoint{
		Epoch:     jde,
		RadialAU:  lerp(a.RadialAU, b.RadialAU, f),
		Longitude: lerp(a.Longitude, b.Longitude, f),
		Latitude:  lerp(a.Latitude, b.Latitude, f),
	}
	return w.cartesian()
}

// PositionAt returns the ecliptic Cartesian position in AU at epoch jde.
// Before the first waypoint the track clamps; after the last it coasts
// radially outward at RadialRate with the direction held fixed. The coast is
// a deliberate simplification: real trajectories keep curving slightly.
func (p *ProbeTrajectory) PositionAt(jde float64) []float64 {
	last := p.waypoints[len(p.waypoints)-1]
	if jde > last.Epoch {
		r := last.RadialAU + p.RadialRate*(jde-last.Epoch)/JulianYear
		out := Waypoint{Epoch: jde, RadialAU: r, Longitude: last.Longitude, Latitude: last.Latitude}
		return out.cartesian()
	}
	return p.track.Interpolate(jde)
}

// RadialAU returns the heliocentric distance in AU at epoch jde.
func (p *ProbeTrajectory) RadialAU(jde float64) float64 {
	return norm(p.PositionAt(jde))
}

// VelocityAt returns the probe velocity in km/s at epoch jde, taken as the
// cruise speed along the outward radial (zero near the origin). This is not a
// kinematic derivative of the track; it is the asymptotic escape velocity.
func (p *ProbeTrajectory) VelocityAt(jde float64) []float64 {
	pos := p.PositionAt(jde)
	if norm(pos) < 1e-9 {
		return []float64{0, 0, 0}
	}
	return scale(unit(pos), p.CruiseKmS)
}

// Probe waypoint tables. Distances and crossing epochs follow the published
// mission timelines; directions are the ecliptic asymptotes.
var (
	voyager1Waypoints = []Waypoint{
		{2443391.5, 1.0, 347.0, 0.0},   // 1977-09-05 launch
		{2443942.5, 5.2, 97.0, 3.0},    // 1979-03-05 Jupiter
		{2444555.5, 9.5, 172.0, 12.0},  // 1980-11-12 Saturn
		{2453355.5, 94.0, 255.3, 34.9}, // 2004-12-16 termination shock
		{2456164.5, 121.6, 255.3, 34.9},
		{2460676.5, 166.2, 255.3, 34.9}, // 2025-01-01
	}
	voyager2Waypoints = []Waypoint{
		{2443375.5, 1.0, 327.0, 0.0},    // 1977-08-20 launch
		{2444063.5, 5.2, 129.0, 1.0},    // 1979-07-09 Jupiter
		{2444841.5, 9.5, 194.0, 2.0},    // 1981-08-25 Saturn
		{2446454.5, 19.2, 261.0, -1.0},  // 1986-01-24 Uranus
		{2447763.5, 30.1, 290.0, -5.0},  // 1989-08-25 Neptune
		{2454342.5, 83.7, 290.3, -31.2}, // 2007-08-30 termination shock
		{2458427.5, 119.0, 290.3, -32.2},
		{2460676.5, 138.9, 290.3, -32.2},
	}
	newHorizonsWaypoints = []Waypoint{
		{2453754.5, 1.0, 120.0, 0.0},   // 2006-01-19 launch
		{2454159.5, 5.2, 137.0, 1.5},   // 2007-02-28 Jupiter
		{2457217.5, 32.9, 278.0, 1.9},  // 2015-07-14 Pluto
		{2458484.5, 43.4, 286.0, 2.4},  // 2019-01-01 Arrokoth
		{2460676.5, 61.3, 293.0, 2.4},
	}
	parkerWaypoints = []Waypoint{
		{2458342.5, 1.0, 320.0, 0.0}, // 2018-08-12 launch
		{2458428.5, 0.17, 340.0, 3.4},
		{2459000.5, 0.62, 130.0, 3.4},
		{2459480.5, 0.074, 250.0, 3.4},
		{2460029.5, 0.72, 10.0, 3.4},
		{2460301.5, 0.053, 200.0, 3.4},
		{2460676.5, 0.3, 60.0, 3.4},
	}
)

// probeCatalog maps normalized probe names to their trajectories.
var probeCatalog = map[string]*ProbeTrajectory{}

func init() {
	register := func(name string, wps []Waypoint, cruiseKmS, rateAUYr float64) {
		p, err := NewProbeTrajectory(name, wps, cruiseKmS, rateAUYr)
		if err != nil {
			panic(err)
		}
		probeCatalog[normalizeProbeName(name)] = p
	}
	register("Voyager 1", voyager1Waypoints, 17.0, 3.58)
	register("Voyager 2", voyager2Waypoints, 15.4, 3.24)
	register("New Horizons", newHorizonsWaypoints, 14.1, 2.98)
	register("Parker Solar Probe", parkerWaypoints, 95.0, 0)
}

func normalizeProbeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "")
	return strings.ReplaceAll(name, "-", "")
}

// ProbeByName returns the catalog trajectory for the given probe. Names are
// case and whitespace insensitive ("Voyager 1", "voyager-1").
func ProbeByName(name string) (*ProbeTrajectory, error) {
	if p, found := probeCatalog[normalizeProbeName(name)]; found {
		return p, nil
	}
	return nil, fmt.Errorf("no probe named %q in the catalog", name)
}

// ProbeNames lists the catalog in display form.
func ProbeNames() []string {
	return []string{"Voyager 1", "Voyager 2", "New Horizons", "Parker Solar Probe"}
}
