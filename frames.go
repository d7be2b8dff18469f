package helio

import (
	"fmt"
	"math"
	"strings"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// Frame identifies one of the reference frames supported by Convert.
type Frame uint8

const (
	// FrameEcliptic is the heliocentric ecliptic frame of J2000 (+X to the equinox).
	FrameEcliptic Frame = iota + 1
	// FrameEquatorial is the Earth mean equator and equinox of J2000.
	FrameEquatorial
	// FrameGalactic is the IAU 1958 galactic frame (+X to the galactic center).
	FrameGalactic
	// FrameHCI is the heliographic (solar equatorial) inertial frame.
	FrameHCI
)

func (f Frame) String() string {
	switch f {
	case FrameEcliptic:
		return "ecliptic"
	case FrameEquatorial:
		return "equatorial"
	case FrameGalactic:
		return "galactic"
	case FrameHCI:
		return "HCI"
	default:
		return "unknown frame"
	}
}

// FrameFromString returns the frame from its name.
func FrameFromString(name string) (Frame, error) {
	switch strings.ToLower(name) {
	case "ecliptic":
		return FrameEcliptic, nil
	case "equatorial", "eme2000":
		return FrameEquatorial, nil
	case "galactic":
		return FrameGalactic, nil
	case "hci", "heliographic":
		return FrameHCI, nil
	default:
		return Frame(0), fmt.Errorf("undefined frame '%s'", name)
	}
}

const (
	// Obliquity is the mean obliquity of the ecliptic at J2000 in degrees.
	Obliquity = 23.439281
	// GalacticPoleRA is the right ascension of the north galactic pole (J2000), degrees.
	GalacticPoleRA = 192.85948
	// GalacticPoleDec is the declination of the north galactic pole (J2000), degrees.
	GalacticPoleDec = 27.12825
	// GalacticNodeLon is the galactic longitude of the ascending node of the
	// galactic plane on the equator (J2000), degrees.
	GalacticNodeLon = 32.93192
	// SolarEquatorIncl is the inclination of the solar equator on the ecliptic, degrees.
	SolarEquatorIncl = 7.25
	// SolarNodeLonJ2000 is the ecliptic longitude of the solar equator ascending
	// node at J2000, degrees. The node drifts with equinox precession.
	SolarNodeLonJ2000 = 75.76
	// SolarNodeDrift is the secular drift of the solar node longitude, degrees
	// per Julian century (general precession in longitude).
	SolarNodeDrift = 1.397
	// cKmS is the speed of light in km/s.
	cKmS = 299792.458
)

// eqToGal is the fixed equatorial J2000 -> galactic rotation, built once at
// package init from the published pole and node angles.
var eqToGal *mat64.Dense

func init() {
	p := unitFromRADec(GalacticPoleRA, GalacticPoleDec)
	// Ascending node of the galactic plane on the equator, 90° east of the pole.
	n := unitFromRADec(GalacticPoleRA+90, 0)
	// The node sits at galactic longitude GalacticNodeLon, so the l=0 direction
	// is the node rotated by -GalacticNodeLon about the pole.
	sl, cl := math.Sincos(Deg2rad(GalacticNodeLon))
	pxn := cross(p, n)
	x := add(scale(n, cl), scale(pxn, -sl))
	y := cross(p, x)
	eqToGal = mat64.NewDense(3, 3, []float64{
		x[0], x[1], x[2],
		y[0], y[1], y[2],
		p[0], p[1], p[2],
	})
}

// unitFromRADec returns the unit vector at the given right ascension and
// declination, both in degrees.
func unitFromRADec(ra, dec float64) []float64 {
	sα, cα := math.Sincos(Deg2rad(ra))
	sδ, cδ := math.Sincos(Deg2rad(dec))
	return []float64{cδ * cα, cδ * sα, sδ}
}

// Ecl2Eq rotates a vector from the ecliptic frame to the equatorial frame.
func Ecl2Eq(v []float64) []float64 {
	return MxV33(R1(-Deg2rad(Obliquity)), v)
}

// Eq2Ecl rotates a vector from the equatorial frame to the ecliptic frame.
func Eq2Ecl(v []float64) []float64 {
	return MxV33(R1(Deg2rad(Obliquity)), v)
}

// Eq2Gal rotates a vector from the equatorial frame to the galactic frame.
func Eq2Gal(v []float64) []float64 {
	return MxV33(eqToGal, v)
}

// Gal2Eq rotates a vector from the galactic frame to the equatorial frame.
func Gal2Eq(v []float64) []float64 {
	return MxV33(m33T(eqToGal), v)
}

// Ecl2HCI rotates a vector from the ecliptic frame to the heliographic
// inertial frame at the given epoch. The solar node longitude carries a small
// secular drift, approximated linearly in centuries since J2000.
func Ecl2HCI(v []float64, jde float64) []float64 {
	T := centuriesFromJ2000(jde)
	Ω := Deg2rad(SolarNodeLonJ2000 + SolarNodeDrift*T)
	i := Deg2rad(SolarEquatorIncl)
	return MxV33(m33Mul(R1(i), R3(Ω)), v)
}

// HCI2Ecl rotates a vector from the heliographic inertial frame to the
// ecliptic frame at the given epoch.
func HCI2Ecl(v []float64, jde float64) []float64 {
	T := centuriesFromJ2000(jde)
	Ω := Deg2rad(SolarNodeLonJ2000 + SolarNodeDrift*T)
	i := Deg2rad(SolarEquatorIncl)
	return MxV33(m33T(m33Mul(R1(i), R3(Ω))), v)
}

// GalacticDirection returns the ecliptic-frame unit vector pointing at
// galactic longitude l and latitude b, both in degrees.
func GalacticDirection(l, b float64) []float64 {
	sl, cl := math.Sincos(Deg2rad(l))
	sb, cb := math.Sincos(Deg2rad(b))
	g := []float64{cb * cl, cb * sl, sb}
	return Eq2Ecl(Gal2Eq(g))
}

// Convert rotates position p from one frame to another at epoch jde. Unknown
// frames leave the vector unchanged rather than failing: a renderer asking
// for a frame this kernel does not know simply keeps its coordinates.
func Convert(p []float64, from, to Frame, jde float64) []float64 {
	if from == to {
		return append([]float64{}, p...)
	}
	// Route through the ecliptic hub frame.
	var ecl []float64
	switch from {
	case FrameEcliptic:
		ecl = p
	case FrameEquatorial:
		ecl = Eq2Ecl(p)
	case FrameGalactic:
		ecl = Eq2Ecl(Gal2Eq(p))
	case FrameHCI:
		ecl = HCI2Ecl(p, jde)
	default:
		return append([]float64{}, p...)
	}
	switch to {
	case FrameEcliptic:
		return append([]float64{}, ecl...)
	case FrameEquatorial:
		return Ecl2Eq(ecl)
	case FrameGalactic:
		return Eq2Gal(Ecl2Eq(ecl))
	case FrameHCI:
		return Ecl2HCI(ecl, jde)
	default:
		return append([]float64{}, p...)
	}
}

// Precess applies IAU 1976 equinox precession to an equatorial J2000 position,
// returning the position referred to the mean equator and equinox of date.
// The ζ/θ/z angles are low-order polynomials in centuries since J2000
// (Vallado, Eq. 3-56). The input is not mutated.
func Precess(p []float64, jde float64) []float64 {
	T := centuriesFromJ2000(jde)
	// Arcseconds to radians.
	const as2rad = deg2rad / 3600
	ζ := (2306.2181*T + 0.30188*T*T + 0.017998*T*T*T) * as2rad
	θ := (2004.3109*T - 0.42665*T*T - 0.041833*T*T*T) * as2rad
	z := (2306.2181*T + 1.09468*T*T + 0.018203*T*T*T) * as2rad
	return MxV33(m33Mul(R3(-z), m33Mul(R2(θ), R3(-ζ))), p)
}

// Aberrate returns the apparent direction of the unit vector n as seen by an
// observer moving at vel (km/s). This is the exact relativistic formula,
// which reduces to n' ≈ normalize(n + v/c) at first order. A negligible
// velocity returns the input unchanged to avoid division instability.
func Aberrate(n, vel []float64) []float64 {
	β := norm(vel) / cKmS
	if floats.EqualWithinAbs(β, 0, 1e-12) {
		return append([]float64{}, n...)
	}
	γ := 1 / math.Sqrt(1-β*β)
	βv := scale(vel, 1/cKmS)
	// factor = γ + (n·β)γ²/(γ+1); the (γ-1)/β² term rewritten to stay stable
	// as β -> 0.
	factor := γ + dot(n, βv)*γ*γ/(γ+1)
	return unit(add(n, scale(βv, factor)))
}

// RTN is an orthonormal Radial-Tangential-Normal basis local to a moving body.
// Rows of the basis matrix are the R, T and N unit vectors expressed in the
// frame of the position and velocity it was built from.
type RTN struct {
	basis *mat64.Dense
}

// NewRTN builds the RTN basis from a position and velocity. A velocity
// parallel to the position (or zero) yields a degenerate basis; the tangential
// direction then falls back to an arbitrary vector orthogonal to R so the
// basis stays orthonormal.
func NewRTN(R, V []float64) RTN {
	r := unit(R)
	n := cross(r, V)
	if floats.EqualWithinAbs(norm(n), 0, 1e-12) {
		// Degenerate: pick any direction orthogonal to r.
		ref := []float64{0, 0, 1}
		if math.Abs(r[2]) > 0.9 {
			ref = []float64{1, 0, 0}
		}
		n = cross(r, ref)
	}
	n = unit(n)
	t := cross(n, r)
	return RTN{basis: mat64.NewDense(3, 3, []float64{
		r[0], r[1], r[2],
		t[0], t[1], t[2],
		n[0], n[1], n[2],
	})}
}

// ToRTN expresses the vector v in this RTN basis.
func (b RTN) ToRTN(v []float64) []float64 {
	return MxV33(b.basis, v)
}

// FromRTN expresses an RTN-frame vector v back in the parent frame. The basis
// is orthonormal so its inverse is its transpose.
func (b RTN) FromRTN(v []float64) []float64 {
	return MxV33(m33T(b.basis), v)
}

// Radial returns the radial unit vector of the basis.
func (b RTN) Radial() []float64 {
	return []float64{b.basis.At(0, 0), b.basis.At(0, 1), b.basis.At(0, 2)}
}

// Tangential returns the tangential unit vector of the basis.
func (b RTN) Tangential() []float64 {
	return []float64{b.basis.At(1, 0), b.basis.At(1, 1), b.basis.At(1, 2)}
}

// Normal returns the normal unit vector of the basis.
func (b RTN) Normal() []float64 {
	return []float64{b.basis.At(2, 0), b.basis.At(2, 1), b.basis.At(2, 2)}
}
