package helio

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross fail")
	}
}

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if !floats.EqualWithinAbs(norm(v), 5, 1e-12) {
		t.Fatal("norm fail")
	}
	if !vectorsEqual(unit(v), []float64{0.6, 0.8, 0}) {
		t.Fatal("unit fail")
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of zero vector must be zero")
	}
}

func TestDotScaleAdd(t *testing.T) {
	if !floats.EqualWithinAbs(dot([]float64{1, 2, 3}, []float64{4, -5, 6}), 12, 1e-12) {
		t.Fatal("dot fail")
	}
	if !vectorsEqual(scale([]float64{1, -2, 3}, 2), []float64{2, -4, 6}) {
		t.Fatal("scale fail")
	}
	if !vectorsEqual(add([]float64{1, 2, 3}, []float64{4, 5, 6}), []float64{5, 7, 9}) {
		t.Fatal("add fail")
	}
}

func TestSphericalCartesian(t *testing.T) {
	// Polar angle from +Z, azimuth from +X.
	if !vectorsEqual(Spherical2Cartesian([]float64{1, math.Pi / 2, 0}), []float64{1, 0, 0}) {
		t.Fatal("+X fail")
	}
	if !vectorsEqual(Spherical2Cartesian([]float64{2, 0, 1.3}), []float64{0, 0, 2}) {
		t.Fatal("+Z fail")
	}
	for _, sph := range [][]float64{{1, 0.3, 0.2}, {94, 2.1, 4.9}, {121.6, 1.0, 3.0}} {
		back := Cartesian2Spherical(Spherical2Cartesian(sph))
		if !floats.EqualWithinAbs(back[0], sph[0], 1e-9) {
			t.Fatalf("radius round trip fail: %+v != %+v", back, sph)
		}
		if ok, err := anglesEqual(back[1], sph[1]); !ok {
			t.Fatalf("θ round trip: %s", err)
		}
		if ok, err := anglesEqual(back[2], sph[2]); !ok {
			t.Fatalf("φ round trip: %s", err)
		}
	}
	if !vectorsEqual(Cartesian2Spherical([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("zero vector spherical fail")
	}
}

func TestDegRad(t *testing.T) {
	if !floats.EqualWithinAbs(Deg2rad(180), math.Pi, 1e-12) {
		t.Fatal("Deg2rad(180) fail")
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 1.5*math.Pi, 1e-12) {
		t.Fatal("Deg2rad(-90) fail")
	}
	if !floats.EqualWithinAbs(Rad2deg(math.Pi/2), 90, 1e-12) {
		t.Fatal("Rad2deg fail")
	}
}

func TestSign(t *testing.T) {
	if sign(-3.2) != -1 || sign(4.5) != 1 {
		t.Fatal("sign fail")
	}
	if sign(0) != 1 {
		t.Fatal("sign of zero must be positive")
	}
}

func TestLerp(t *testing.T) {
	if !floats.EqualWithinAbs(lerp(2, 4, 0.5), 3, 1e-12) {
		t.Fatal("midpoint fail")
	}
	if !floats.EqualWithinAbs(lerp(2, 4, 0), 2, 1e-12) || !floats.EqualWithinAbs(lerp(2, 4, 1), 4, 1e-12) {
		t.Fatal("endpoint fail")
	}
}
