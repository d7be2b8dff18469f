package helio

import (
	"fmt"
	"math"
	"strings"
)

// SurfaceKind selects which of the solved surfaces to tessellate.
type SurfaceKind uint8

const (
	// SurfaceShock is the inner termination shock.
	SurfaceShock SurfaceKind = iota + 1
	// SurfaceBoundary is the contact boundary between wind and medium.
	SurfaceBoundary
	// SurfaceBowShock is the outer shock in the interstellar inflow.
	SurfaceBowShock
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceShock:
		return "shock"
	case SurfaceBoundary:
		return "boundary"
	case SurfaceBowShock:
		return "bowshock"
	default:
		return "unknown"
	}
}

// SurfaceKindFromString parses a surface name as used on command lines.
func SurfaceKindFromString(s string) (SurfaceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shock", "termination", "ts":
		return SurfaceShock, nil
	case "boundary", "pause", "hp":
		return SurfaceBoundary, nil
	case "bowshock", "bow", "bs":
		return SurfaceBowShock, nil
	}
	return 0, fmt.Errorf("unknown surface kind %q", s)
}

// SurfaceMesh is a triangulated closed surface in the ecliptic frame.
// Positions are in AU, normals are unit outward radials, and UVs map azimuth
// and polar angle onto the unit square. Indices come in triples.
type SurfaceMesh struct {
	Positions [][]float64
	Normals   [][]float64
	UVs       [][2]float64
	Indices   []uint32
}

// VertexCount returns the number of mesh vertices.
func (m SurfaceMesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of mesh triangles.
func (m SurfaceMesh) TriangleCount() int { return len(m.Indices) / 3 }

// SurfaceMeshAt tessellates the requested surface at epoch jde on an
// (N+1)×(N+1) latitude/longitude grid, yielding (N+1)² vertices and 2N²
// triangles. The polar rows collapse onto the poles but are kept as distinct
// vertices so the UV seam stays clean. An unknown kind, a resolution below 2,
// or a request for an absent bow shock returns an empty mesh.
func SurfaceMeshAt(model *BoundaryModel, kind SurfaceKind, resolution int, jde float64) SurfaceMesh {
	if resolution < 2 {
		return SurfaceMesh{}
	}
	switch kind {
	case SurfaceShock, SurfaceBoundary, SurfaceBowShock:
	default:
		return SurfaceMesh{}
	}
	n := resolution
	verts := (n + 1) * (n + 1)
	mesh := SurfaceMesh{
		Positions: make([][]float64, 0, verts),
		Normals:   make([][]float64, 0, verts),
		UVs:       make([][2]float64, 0, verts),
		Indices:   make([]uint32, 0, 6*n*n),
	}
	for i := 0; i <= n; i++ {
		θ := math.Pi * float64(i) / float64(n)
		for j := 0; j <= n; j++ {
			φ := 2 * math.Pi * float64(j) / float64(n)
			b := model.BoundaryAt(θ, φ, jde)
			var r float64
			switch kind {
			case SurfaceShock:
				r = b.ShockAU
			case SurfaceBoundary:
				r = b.BoundaryAU
			case SurfaceBowShock:
				if !b.HasBowShock {
					return SurfaceMesh{}
				}
				r = b.BowShockAU
			}
			normal := Spherical2Cartesian([]float64{1, θ, φ})
			mesh.Positions = append(mesh.Positions, scale(normal, r))
			mesh.Normals = append(mesh.Normals, normal)
			mesh.UVs = append(mesh.UVs, [2]float64{φ / (2 * math.Pi), θ / math.Pi})
		}
	}
	stride := uint32(n + 1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + 1
			c := a + stride
			d := c + 1
			mesh.Indices = append(mesh.Indices, a, c, b, b, c, d)
		}
	}
	return mesh
}

// WriteOBJ renders the mesh in Wavefront OBJ form.
func (m SurfaceMesh) WriteOBJ(sb *strings.Builder, name string) {
	fmt.Fprintf(sb, "o %s\n", name)
	for _, p := range m.Positions {
		fmt.Fprintf(sb, "v %.6f %.6f %.6f\n", p[0], p[1], p[2])
	}
	for _, vn := range m.Normals {
		fmt.Fprintf(sb, "vn %.6f %.6f %.6f\n", vn[0], vn[1], vn[2])
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(sb, "vt %.6f %.6f\n", uv[0], uv[1])
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(sb, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
}
