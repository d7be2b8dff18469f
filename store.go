package helio

import (
	"fmt"
	"math"
	"sync"

	kitlog "github.com/go-kit/kit/log"
)

// Historical 1 AU driving conditions, sampled at epochs bracketing the major
// outer-system events (launches, shock and boundary crossings, solar-cycle
// extrema). Queries between samples interpolate linearly; queries outside the
// table clamp to the edge sample.
var (
	drivingEpochs = []float64{
		2440587.5, // 1970-01-01
		2443391.5, // 1977-09-05
		2447892.5, // 1990-01-01
		2451545.0, // J2000
		2453355.5, // 2004-12-16
		2454342.5, // 2007-08-30
		2456164.5, // 2012-08-25
		2458427.5, // 2018-11-05
		2460676.5, // 2025-01-01
	}
	sunspotValues     = []float64{104, 27, 142, 119, 41, 10, 62, 8, 152}
	windSpeedValues   = []float64{432, 441, 412, 431, 424.4, 393.0, 400.0, 400.0, 447}
	windDensityValues = []float64{6.1, 5.6, 6.3, 5.9, 5.3, 5.1, 5.0, 4.79, 6.4}
	fieldValues       = []float64{6.2, 5.4, 6.9, 6.1, 5.1, 4.3, 5.0, 5.0, 7.1}
)

// historicalDriving builds the bundled driving-series tables.
func historicalDriving() *DrivingSeries {
	return &DrivingSeries{
		Sunspot:       NewScalarSeries(drivingEpochs, sunspotValues),
		WindSpeed:     NewScalarSeries(drivingEpochs, windSpeedValues),
		WindDensity:   NewScalarSeries(drivingEpochs, windDensityValues),
		FieldStrength: NewScalarSeries(drivingEpochs, fieldValues),
	}
}

// WindConditions describes the ambient wind at one heliocentric distance.
type WindConditions struct {
	SpeedKmS       float64
	DensityPerCm3  float64
	TemperatureK   float64
	FieldNT        float64 // spiral field magnitude
	RadialFieldNT  float64
	SpiralFieldNT  float64 // azimuthal component
	RamPressureNPa float64
}

// ProbeState is a probe snapshot produced by the store.
type ProbeState struct {
	Name        string
	PositionAU  []float64 // ecliptic Cartesian
	VelocityKmS []float64
	RadialAU    float64
	Zone        FlowZone
}

// DataStore ties the driving series, the boundary model, the body catalog and
// the probe catalog together behind one loading point.
type DataStore struct {
	logger kitlog.Logger

	loadOnce sync.Once
	driving  *DrivingSeries
	model    *BoundaryModel
	orbits   map[string]*VectorSeries
}

// NewDataStore returns an unloaded store. The first call to Load (or any
// accessor) builds the driving tables, the boundary model and the per-body
// orbit paths.
func NewDataStore(logger kitlog.Logger) *DataStore {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &DataStore{logger: kitlog.With(logger, "component", "store")}
}

// Load initializes the store. Calling it more than once is a no-op.
func (s *DataStore) Load() {
	s.loadOnce.Do(func() {
		s.driving = historicalDriving()
		s.model = NewBoundaryModel(s.driving, DefaultISM())
		s.model.SetLogger(s.logger)
		s.orbits = make(map[string]*VectorSeries, len(Planets))
		for _, b := range Planets {
			s.orbits[b.Name] = b.Ephemeris(J2000, J2000+b.Elements.PeriodDays())
		}
		start, end := s.driving.WindSpeed.Range()
		s.logger.Log("msg", "data store loaded",
			"drivingSamples", s.driving.WindSpeed.Len(),
			"drivingStart", fmt.Sprintf("%.1f", start),
			"drivingEnd", fmt.Sprintf("%.1f", end),
			"probes", len(probeCatalog),
			"bodies", len(Planets))
	})
}

// Driving exposes the loaded driving series.
func (s *DataStore) Driving() *DrivingSeries {
	s.Load()
	return s.driving
}

// Model exposes the loaded boundary model.
func (s *DataStore) Model() *BoundaryModel {
	s.Load()
	return s.model
}

// BoundaryAt returns the boundary solution along (θ, φ) at epoch jde.
func (s *DataStore) BoundaryAt(θ, φ, jde float64) DirectionalBoundary {
	s.Load()
	return s.model.BoundaryAt(θ, φ, jde)
}

// Mesh tessellates one of the three surfaces at epoch jde.
func (s *DataStore) Mesh(kind SurfaceKind, resolution int, jde float64) SurfaceMesh {
	s.Load()
	return SurfaceMeshAt(s.model, kind, resolution, jde)
}

// ProbeState returns the catalog probe's state at epoch jde, tagged with the
// flow zone its direction falls in.
func (s *DataStore) ProbeState(name string, jde float64) (ProbeState, error) {
	s.Load()
	p, err := ProbeByName(name)
	if err != nil {
		return ProbeState{}, err
	}
	pos := p.PositionAt(jde)
	r := norm(pos)
	zone := ZoneFlank
	if r > 0 {
		zone = classifyZone(unit(pos), s.model.NoseDirection())
	}
	return ProbeState{
		Name:        p.Name,
		PositionAU:  pos,
		VelocityKmS: p.VelocityAt(jde),
		RadialAU:    r,
		Zone:        zone,
	}, nil
}

// ConditionsAt returns the ambient wind at heliocentric distance rAU and
// epoch jde: density falls as the inverse square, the radial spiral field
// component as the inverse square and the azimuthal one inversely with
// distance.
func (s *DataStore) ConditionsAt(jde, rAU float64) WindConditions {
	s.Load()
	if rAU < 0.1 {
		rAU = 0.1
	}
	v := s.driving.WindSpeed.Interpolate(jde)
	n := s.driving.WindDensity.Interpolate(jde) / (rAU * rAU)
	b1 := s.driving.FieldStrength.Interpolate(jde) * parkerSplit
	br := b1 / (rAU * rAU)
	bφ := b1 / rAU
	return WindConditions{
		SpeedKmS:       v,
		DensityPerCm3:  n,
		TemperatureK:   windTemperature(rAU),
		FieldNT:        math.Sqrt(br*br + bφ*bφ),
		RadialFieldNT:  br,
		SpiralFieldNT:  bφ,
		RamPressureNPa: n * perCm3 * ProtonMass * (v * kmToM) * (v * kmToM) * paToNPa,
	}
}

// OrbitPath returns the precomputed one-orbit track of a catalog body,
// sampled from J2000 over one orbital period.
func (s *DataStore) OrbitPath(bodyName string) (*VectorSeries, error) {
	s.Load()
	b, err := BodyByName(bodyName)
	if err != nil {
		return nil, err
	}
	return s.orbits[b.Name], nil
}

// Ephemeris samples a catalog body's track over [startJD, endJD].
func (s *DataStore) Ephemeris(bodyName string, startJD, endJD float64) (*VectorSeries, error) {
	s.Load()
	b, err := BodyByName(bodyName)
	if err != nil {
		return nil, err
	}
	return b.Ephemeris(startJD, endJD), nil
}

// Convert re-expresses a position between the supported frames at epoch jde.
func (s *DataStore) Convert(p []float64, from, to Frame, jde float64) []float64 {
	return Convert(p, from, to, jde)
}

// SolarActivity returns the interpolated sunspot index together with the
// solar-cycle phase and its name at epoch jde.
func (s *DataStore) SolarActivity(jde float64) (sunspot, phase float64, name string) {
	s.Load()
	phase = SolarCyclePhase(jde)
	return s.driving.Sunspot.Interpolate(jde), phase, SolarCycleName(jde)
}
