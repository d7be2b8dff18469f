package helio

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestFrameStrings(t *testing.T) {
	for _, f := range []Frame{FrameEcliptic, FrameEquatorial, FrameGalactic, FrameHCI} {
		back, err := FrameFromString(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Fatalf("frame %s round trip fail", f)
		}
	}
	if _, err := FrameFromString("perifocal"); err == nil {
		t.Fatal("unknown frame name must error")
	}
}

func TestEclEqRoundTrip(t *testing.T) {
	v := []float64{12.3, -45.6, 78.9}
	if !vectorsEqual(Eq2Ecl(Ecl2Eq(v)), v) {
		t.Fatal("ecliptic/equatorial round trip fail")
	}
	// The +X axis (equinox) is shared between the two frames.
	if !vectorsEqual(Ecl2Eq([]float64{1, 0, 0}), []float64{1, 0, 0}) {
		t.Fatal("equinox direction must be invariant")
	}
}

func TestGalacticRotation(t *testing.T) {
	// The galactic pole must map onto +Z of the galactic frame.
	pole := unitFromRADec(GalacticPoleRA, GalacticPoleDec)
	if !vectorsEqual(Eq2Gal(pole), []float64{0, 0, 1}) {
		t.Fatal("galactic pole fail")
	}
	// Rows of the rotation against the published J2000 matrix.
	expected := [3][3]float64{
		{-0.0548755604, -0.8734370902, -0.4838350155},
		{+0.4941094279, -0.4448296300, +0.7469822445},
		{-0.8676661490, -0.1980763734, +0.4559837762},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !floats.EqualWithinAbs(eqToGal.At(i, j), expected[i][j], 1e-4) {
				t.Fatalf("eqToGal[%d][%d] = %f, expected %f", i, j, eqToGal.At(i, j), expected[i][j])
			}
		}
	}
	v := []float64{0.7, -0.2, 0.3}
	if !vectorsEqual(Gal2Eq(Eq2Gal(v)), v) {
		t.Fatal("galactic round trip fail")
	}
}

func TestGalacticDirection(t *testing.T) {
	// The galactic north pole expressed in the ecliptic frame.
	pole := GalacticDirection(0, 90)
	exp := Eq2Ecl(unitFromRADec(GalacticPoleRA, GalacticPoleDec))
	if !vectorsEqual(pole, exp) {
		t.Fatal("galactic pole direction fail")
	}
	if !floats.EqualWithinAbs(norm(GalacticDirection(255.4, 5.2)), 1, 1e-12) {
		t.Fatal("direction must be a unit vector")
	}
}

func TestConvertRoundTrips(t *testing.T) {
	frames := []Frame{FrameEcliptic, FrameEquatorial, FrameGalactic, FrameHCI}
	v := []float64{90.0, -40.0, 35.0}
	jde := 2455000.5
	for _, from := range frames {
		for _, to := range frames {
			out := Convert(Convert(v, from, to, jde), to, from, jde)
			if !vectorsEqual(out, v) {
				t.Fatalf("%s -> %s round trip fail: %+v", from, to, out)
			}
		}
	}
	// Same frame must return an equal copy.
	same := Convert(v, FrameGalactic, FrameGalactic, jde)
	if !vectorsEqual(same, v) {
		t.Fatal("identity conversion fail")
	}
	same[0] = 1e9
	if v[0] != 90.0 {
		t.Fatal("identity conversion must not alias the input")
	}
	// Unknown frames pass the vector through unchanged.
	if !vectorsEqual(Convert(v, Frame(99), FrameEcliptic, jde), v) {
		t.Fatal("unknown source frame must pass through")
	}
	if !vectorsEqual(Convert(v, FrameEcliptic, Frame(99), jde), v) {
		t.Fatal("unknown target frame must pass through")
	}
}

func TestConvertPreservesNorm(t *testing.T) {
	v := []float64{120.5, 3.2, -45.0}
	jde := 2460676.5
	for _, to := range []Frame{FrameEquatorial, FrameGalactic, FrameHCI} {
		out := Convert(v, FrameEcliptic, to, jde)
		if !floats.EqualWithinAbs(norm(out), norm(v), 1e-9) {
			t.Fatalf("conversion to %s does not preserve the norm", to)
		}
	}
}

func TestPrecess(t *testing.T) {
	v := []float64{1, 0, 0}
	// At J2000 the precession angles vanish.
	if !vectorsEqual(Precess(v, J2000), v) {
		t.Fatal("precession at J2000 must be the identity")
	}
	// One century of precession moves the equinox direction by the general
	// precession angle, about 1.397 degrees.
	moved := Precess(v, J2000+JulianCentury)
	if !floats.EqualWithinAbs(norm(moved), 1, 1e-12) {
		t.Fatal("precession must preserve the norm")
	}
	if Δ := angleBetween(v, moved); !floats.EqualWithinAbs(Δ, Deg2rad(1.3973), 1e-4) {
		t.Fatalf("precession displacement fail: %f degrees", Rad2deg(Δ))
	}
}

func TestAberrate(t *testing.T) {
	n := []float64{1, 0, 0}
	// Negligible velocity returns the input unchanged.
	if !vectorsEqual(Aberrate(n, []float64{0, 0, 0}), n) {
		t.Fatal("zero velocity aberration fail")
	}
	// Earth orbital velocity perpendicular to the line of sight tilts the
	// apparent direction by v/c, about 20.5 arcseconds.
	out := Aberrate(n, []float64{0, 29.78, 0})
	if !floats.EqualWithinAbs(norm(out), 1, 1e-12) {
		t.Fatal("aberrated direction must stay unit")
	}
	exp := 29.78 / cKmS
	if Δ := angleBetween(n, out); !floats.EqualWithinAbs(Δ, exp, 1e-9) {
		t.Fatalf("aberration angle fail: got %e, expected %e", Δ, exp)
	}
	if out[1] <= 0 {
		t.Fatal("apparent direction must tilt toward the velocity")
	}
}

func TestRTN(t *testing.T) {
	R := []float64{1.496e8, 0, 0}
	V := []float64{0, 29.78, 0}
	basis := NewRTN(R, V)
	if !vectorsEqual(basis.Radial(), []float64{1, 0, 0}) {
		t.Fatal("radial fail")
	}
	if !vectorsEqual(basis.Tangential(), []float64{0, 1, 0}) {
		t.Fatal("tangential fail")
	}
	if !vectorsEqual(basis.Normal(), []float64{0, 0, 1}) {
		t.Fatal("normal fail")
	}
	v := []float64{3.3, -0.4, 1.9}
	if !vectorsEqual(basis.FromRTN(basis.ToRTN(v)), v) {
		t.Fatal("RTN round trip fail")
	}
}

func TestRTNDegenerate(t *testing.T) {
	// Velocity parallel to position: the basis must still be orthonormal.
	R := []float64{0, 0, 42.0}
	basis := NewRTN(R, []float64{0, 0, 17.0})
	r, tv, n := basis.Radial(), basis.Tangential(), basis.Normal()
	for _, u := range [][]float64{r, tv, n} {
		if !floats.EqualWithinAbs(norm(u), 1, 1e-12) {
			t.Fatal("degenerate basis not normalized")
		}
	}
	if !floats.EqualWithinAbs(dot(r, tv), 0, 1e-12) ||
		!floats.EqualWithinAbs(dot(r, n), 0, 1e-12) ||
		!floats.EqualWithinAbs(dot(tv, n), 0, 1e-12) {
		t.Fatal("degenerate basis not orthogonal")
	}
	if !floats.EqualWithinAbs(math.Abs(dot(cross(r, tv), n)), 1, 1e-12) {
		t.Fatal("degenerate basis not right-handed")
	}
}
