package helio

import (
	"math"
	"sync/atomic"

	kitlog "github.com/go-kit/kit/log"
)

// Physical constants (SI).
const (
	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.380649e-23
	// ProtonMass is the proton rest mass in kg.
	ProtonMass = 1.67262192e-27
	// Mu0 is the vacuum permeability in H/m.
	Mu0 = 4 * math.Pi * 1e-7
	// adiabaticIndex is the monatomic ideal-gas heat capacity ratio.
	adiabaticIndex = 5.0 / 3.0
)

// Unit conversions.
const (
	kmToM   = 1e3
	nTToT   = 1e-9
	perCm3  = 1e6 // cm^-3 to m^-3
	paToNPa = 1e9
)

// Solar wind model constants. Temperatures in K, distances in AU.
const (
	// windTemp1AU is the solar wind proton temperature at 1 AU.
	windTemp1AU = 1.2e5
	// pickupTemp100AU sets the scale of pickup-proton heating of the outer
	// wind: the effective temperature gains pickupTemp100AU·(r/100)^1.5, so
	// the wind Mach number falls with distance and the shock search brackets.
	pickupTemp100AU = 5.3e5
	// parkerSplit shares the 1 AU field magnitude between the radial and
	// azimuthal spiral components (45° spiral angle at 1 AU).
	parkerSplit = 0.70710678118654752440
)

// Termination shock solver constants.
const (
	shockNominalAU  = 90.0
	shockStepFactor = 1.02
	shockMaxIter    = 10
	shockMachLow    = 4.9
	shockMachHigh   = 5.1
)

// Boundary (heliopause) solver constants.
const (
	sheathWidthAU    = 30.0
	boundaryMaxIter  = 20
	boundaryTol      = 0.01
	boundaryDamping  = 0.3
	minSheathAU      = 5.0
	bowShockStandoff = 2.5
)

// FlowZone classifies a query direction against the interstellar upstream
// direction: the compressed nose, the stretched tail, or the flanks between.
type FlowZone uint8

const (
	// ZoneNose is the upstream direction facing the interstellar inflow.
	ZoneNose FlowZone = iota + 1
	// ZoneTail is the downstream direction away from the inflow.
	ZoneTail
	// ZoneFlank covers everything between nose and tail.
	ZoneFlank
)

func (z FlowZone) String() string {
	switch z {
	case ZoneNose:
		return "nose"
	case ZoneTail:
		return "tail"
	default:
		return "flank"
	}
}

// Nose/tail dot-product cutoffs and the per-zone empirical corrections. The
// shock factors follow the in-situ asymmetry (compressed nose, stretched
// tail); the boundary factors are anchored so the nose distances reproduce
// the Voyager 1 and Voyager 2 crossings.
const (
	noseCutoff = 0.5
	tailCutoff = -0.3

	shockNoseFactor  = 0.94
	shockTailFactor  = 2.2
	shockFlankFactor = 1.1

	boundaryNoseFactor  = 1.280
	boundaryTailFactor  = 2.6
	boundaryFlankFactor = 1.45
)

// classifyZone tags a unit direction by its angle to the upstream direction.
func classifyZone(dir, nose []float64) FlowZone {
	d := dot(dir, nose)
	switch {
	case d > noseCutoff:
		return ZoneNose
	case d < tailCutoff:
		return ZoneTail
	default:
		return ZoneFlank
	}
}

func shockZoneFactor(z FlowZone) float64 {
	switch z {
	case ZoneNose:
		return shockNoseFactor
	case ZoneTail:
		return shockTailFactor
	default:
		return shockFlankFactor
	}
}

func boundaryZoneFactor(z FlowZone) float64 {
	switch z {
	case ZoneNose:
		return boundaryNoseFactor
	case ZoneTail:
		return boundaryTailFactor
	default:
		return boundaryFlankFactor
	}
}

// DirectionalBoundary holds the solved boundary distances along one direction,
// in AU from the central star. The bow shock only exists when the interstellar
// inflow is supersonic, hence the presence flag.
type DirectionalBoundary struct {
	ShockAU     float64
	BoundaryAU  float64
	BowShockAU  float64
	HasBowShock bool
}

// DrivingSeries bundles the solar-activity series that drive the boundary
// solver: all values are 1 AU references.
type DrivingSeries struct {
	Sunspot       *ScalarSeries // dimensionless activity index
	WindSpeed     *ScalarSeries // km/s
	WindDensity   *ScalarSeries // cm^-3
	FieldStrength *ScalarSeries // nT
}

// DefaultDriving returns constant present-day driving conditions (400 km/s,
// 5 cm^-3, 5 nT), for hosts that do not supply their own series.
func DefaultDriving() *DrivingSeries {
	return &DrivingSeries{
		Sunspot:       NewScalarSeries([]float64{J2000}, []float64{80}),
		WindSpeed:     NewScalarSeries([]float64{J2000}, []float64{400}),
		WindDensity:   NewScalarSeries([]float64{J2000}, []float64{5}),
		FieldStrength: NewScalarSeries([]float64{J2000}, []float64{5}),
	}
}

// ISMParams describes the interstellar medium the astrosphere plows into.
type ISMParams struct {
	Density     float64   // cm^-3
	Temperature float64   // K
	SpeedKmS    float64   // bulk inflow speed, km/s
	FieldNT     float64   // field magnitude, nT
	Nose        []float64 // upstream unit direction, ecliptic frame
}

// DefaultISM returns the local interstellar cloud parameters, with the nose
// direction derived from the measured galactic inflow direction through the
// frame library.
func DefaultISM() ISMParams {
	conf := helioConfig()
	return ISMParams{
		Density:     conf.ISMDensity,
		Temperature: conf.ISMTemperature,
		SpeedKmS:    conf.ISMSpeed,
		FieldNT:     conf.ISMField,
		Nose:        GalacticDirection(conf.ISMLongitude, conf.ISMLatitude),
	}
}

// PressureNPa returns the total (ram + thermal + magnetic) interstellar
// pressure in nPa.
func (p ISMParams) PressureNPa() float64 {
	n := p.Density * perCm3
	v := p.SpeedKmS * kmToM
	ram := n * ProtonMass * v * v
	thermal := 2 * n * Boltzmann * p.Temperature
	b := p.FieldNT * nTToT
	magnetic := b * b / (2 * Mu0)
	return (ram + thermal + magnetic) * paToNPa
}

// Mach returns the sonic Mach number of the bulk inflow.
func (p ISMParams) Mach() float64 {
	cs := soundSpeed(p.Temperature)
	if cs == 0 {
		return 0
	}
	return p.SpeedKmS * kmToM / cs
}

// soundSpeed returns the sonic speed in m/s for a proton gas at temperature T.
func soundSpeed(T float64) float64 {
	return math.Sqrt(adiabaticIndex * Boltzmann * T / ProtonMass)
}

// windTemperature returns the effective solar wind temperature at r AU: the
// adiabatically cooling core wind plus pickup-proton heating of the outer
// wind.
func windTemperature(r float64) float64 {
	if r < 0.1 {
		r = 0.1
	}
	return windTemp1AU*math.Pow(r, -4.0/3.0) + pickupTemp100AU*math.Pow(r/100, 1.5)
}

// BoundaryModel solves the astrosphere boundary distances along any direction
// at any epoch, from pressure balance between the driving stellar wind and the
// interstellar medium. It owns whichever driving-series provider it was given
// and a bounded snapshot cache.
type BoundaryModel struct {
	driving *DrivingSeries
	ism     ISMParams
	cache   *boundaryCache
	logger  kitlog.Logger

	solverCalls atomic.Int64
}

// NewBoundaryModel wires a boundary model to its driving series. A nil driving
// argument falls back to constant present-day conditions.
func NewBoundaryModel(driving *DrivingSeries, ism ISMParams) *BoundaryModel {
	if driving == nil {
		driving = DefaultDriving()
	}
	if len(ism.Nose) != 3 {
		ism.Nose = DefaultISM().Nose
	}
	conf := helioConfig()
	return &BoundaryModel{
		driving: driving,
		ism:     ism,
		cache:   newBoundaryCache(conf.CacheTTL, conf.CacheMaxEntries),
		logger:  kitlog.NewNopLogger(),
	}
}

// SetLogger replaces the model's logger. Must be called before the first
// query; the model never logs on the hot path after that.
func (m *BoundaryModel) SetLogger(l kitlog.Logger) {
	if l != nil {
		m.logger = kitlog.With(l, "component", "boundary")
	}
}

// NoseDirection returns the upstream unit direction in the ecliptic frame.
func (m *BoundaryModel) NoseDirection() []float64 {
	return append([]float64{}, m.ism.Nose...)
}

// ISM returns the interstellar parameters the model was built with.
func (m *BoundaryModel) ISM() ISMParams {
	return m.ism
}

// SolverCalls returns how many times the solver has actually run (cache
// misses). Repeated queries for the same quantized key within the cache
// validity window do not increase this count.
func (m *BoundaryModel) SolverCalls() int64 {
	return m.solverCalls.Load()
}

// BoundaryAt returns the termination shock, boundary and optional outer shock
// distances along the direction given by polar angle θ and azimuth φ
// (ecliptic frame) at epoch jde. Any real epoch is valid; epochs outside the
// driving tables use the nearest sampled conditions.
func (m *BoundaryModel) BoundaryAt(θ, φ, jde float64) DirectionalBoundary {
	key := newBoundaryKey(θ, φ, jde)
	if hit, ok := m.cache.get(key); ok {
		return hit
	}
	qθ, qφ, qt := key.quantized()
	value := m.solve(qθ, qφ, qt)
	m.cache.put(key, value)
	return value
}

// solve runs the full per-direction solution (no cache).
func (m *BoundaryModel) solve(θ, φ, jde float64) DirectionalBoundary {
	m.solverCalls.Add(1)
	solverCallsTotal.Inc()

	dir := Spherical2Cartesian([]float64{1, θ, φ})
	zone := classifyZone(dir, m.ism.Nose)

	shockRaw := m.shockRadius(jde)
	boundaryRaw := m.boundaryRadius(jde, shockRaw)

	out := DirectionalBoundary{
		ShockAU:    shockRaw * shockZoneFactor(zone),
		BoundaryAU: boundaryRaw * boundaryZoneFactor(zone),
	}
	// The sheath never closes entirely: the boundary stays outside the shock.
	if out.BoundaryAU < out.ShockAU+minSheathAU {
		out.BoundaryAU = out.ShockAU + minSheathAU
	}
	if mach := m.ism.Mach(); mach > 1 {
		out.BowShockAU = out.BoundaryAU * (1 + bowShockStandoff/mach)
		out.HasBowShock = true
	}
	return out
}

// shockRadius finds the uncorrected termination shock distance: the radius at
// which the local wind sonic Mach number falls into the target band. The Mach
// number decreases with distance (pickup heating raises the sound speed), so
// a too-supersonic trial radius moves outward and vice versa.
func (m *BoundaryModel) shockRadius(jde float64) float64 {
	v := m.driving.WindSpeed.Interpolate(jde) * kmToM
	r := shockNominalAU
	for i := 0; i < shockMaxIter; i++ {
		mach := v / soundSpeed(windTemperature(r))
		switch {
		case mach > shockMachHigh:
			r *= shockStepFactor
		case mach < shockMachLow:
			r /= shockStepFactor
		default:
			return r
		}
	}
	return r
}

// windPressureNPa returns the total outbound wind pressure at r AU and epoch
// jde: ram pressure with n∝r⁻², thermal pressure of the cooling wind, and the
// Parker spiral magnetic pressure (radial component ∝r⁻², azimuthal ∝r⁻¹).
func (m *BoundaryModel) windPressureNPa(r, jde float64) float64 {
	if r < 0.1 {
		r = 0.1
	}
	n := m.driving.WindDensity.Interpolate(jde) * perCm3 / (r * r)
	v := m.driving.WindSpeed.Interpolate(jde) * kmToM
	ram := n * ProtonMass * v * v
	thermal := 2 * n * Boltzmann * windTemperature(r)
	b1 := m.driving.FieldStrength.Interpolate(jde) * parkerSplit * nTToT
	br := b1 / (r * r)
	bφ := b1 / r
	magnetic := (br*br + bφ*bφ) / (2 * Mu0)
	return (ram + thermal + magnetic) * paToNPa
}

// boundaryRadius finds the uncorrected boundary distance by damped iteration
// on the wind/ISM pressure ratio, starting one sheath width outside the shock.
func (m *BoundaryModel) boundaryRadius(jde, shockAU float64) float64 {
	pISM := m.ism.PressureNPa()
	r := shockAU + sheathWidthAU
	if pISM <= 0 {
		// Degenerate medium: no balance point exists, keep the seed.
		return r
	}
	for i := 0; i < boundaryMaxIter; i++ {
		ratio := m.windPressureNPa(r, jde) / pISM
		if math.Abs(ratio-1) < boundaryTol {
			return r
		}
		r *= math.Pow(ratio, boundaryDamping)
	}
	m.logger.Log("msg", "pressure balance did not converge", "jde", jde, "radius", r)
	return r
}
