package postprocess

import (
	"math"

	"github.com/M6D6M6A/boys-surface/mesh"
)

// PolyMesh is a polygon mesh produced by Quadrify: faces are index cycles
// of length 3 or 4. Coordinates are shared with the source mesh.
type PolyMesh struct {
	X, Y, Z   []float64
	Faces     [][]int
	Smoothing []int // smoothing group per face, 0 = unassigned

	NumTris  int
	NumQuads int
}

// SmoothingGroups assigns one uniform smoothing group to every face.
func (pm *PolyMesh) SmoothingGroups(group int) {
	pm.Smoothing = make([]int, len(pm.Faces))
	for i := range pm.Smoothing {
		pm.Smoothing[i] = group
	}
}

// Quadrify greedily merges triangle pairs that share an edge and whose
// normals differ by at most maxAngle degrees, recovering the quads the grid
// tessellation was split from. The input mesh is left untouched. Triangles
// that find no partner survive as triangles, so the result covers the same
// surface.
func Quadrify(m *mesh.Mesh, maxAngle float64) (pm *PolyMesh) {
	var (
		minDot  = math.Cos(maxAngle * math.Pi / 180)
		normals = make([][3]float64, m.NumFaces)
	)
	for i, f := range m.Faces {
		normals[i] = faceNormal(m, f)
	}

	// Edge key -> face indices. Keys are undirected (lo,hi) vertex pairs.
	// Outer-ring edges carry three faces after the Moebius gluing, so the
	// lists are not capped at two.
	type edge struct{ lo, hi int }
	adj := make(map[edge][]int, 3*m.NumFaces/2)
	for i, f := range m.Faces {
		for k := 0; k < 3; k++ {
			u, v := f[k], f[(k+1)%3]
			if u > v {
				u, v = v, u
			}
			adj[edge{u, v}] = append(adj[edge{u, v}], i)
		}
	}

	pm = &PolyMesh{X: m.X, Y: m.Y, Z: m.Z}
	merged := make([]bool, m.NumFaces)
	for i, f := range m.Faces {
		if merged[i] {
			continue
		}
		quad := []int(nil)
		for k := 0; k < 3 && quad == nil; k++ {
			u, v := f[k], f[(k+1)%3]
			lo, hi := u, v
			if lo > hi {
				lo, hi = hi, lo
			}
			for _, other := range adj[edge{lo, hi}] {
				if other == i || merged[other] {
					continue
				}
				if dot3(normals[i], normals[other]) < minDot {
					continue
				}
				w, ok := oppositeVertex(m.Faces[other], u, v)
				if !ok {
					continue
				}
				// Insert the partner's far vertex into the shared edge,
				// preserving the winding of face i.
				quad = []int{u, w, v, f[(k+2)%3]}
				merged[other] = true
				break
			}
		}
		merged[i] = true
		if quad != nil {
			pm.Faces = append(pm.Faces, quad)
			pm.NumQuads++
		} else {
			pm.Faces = append(pm.Faces, []int{f[0], f[1], f[2]})
			pm.NumTris++
		}
	}
	return
}

// oppositeVertex returns the vertex of triangle f not on edge (u,v). The
// merge only applies when f traverses the edge in the opposite direction,
// which is what consistent winding across the seam requires.
func oppositeVertex(f [3]int, u, v int) (w int, ok bool) {
	for k := 0; k < 3; k++ {
		if f[k] == v && f[(k+1)%3] == u {
			return f[(k+2)%3], true
		}
	}
	return 0, false
}

func faceNormal(m *mesh.Mesh, f [3]int) (n [3]float64) {
	var (
		a = m.Vertex(f[0])
		b = m.Vertex(f[1])
		c = m.Vertex(f[2])
		e1, e2 [3]float64
	)
	for d := 0; d < 3; d++ {
		e1[d] = b[d] - a[d]
		e2[d] = c[d] - a[d]
	}
	n[0] = e1[1]*e2[2] - e1[2]*e2[1]
	n[1] = e1[2]*e2[0] - e1[0]*e2[2]
	n[2] = e1[0]*e2[1] - e1[1]*e2[0]
	l := math.Sqrt(dot3(n, n))
	if l > 0 {
		for d := 0; d < 3; d++ {
			n[d] /= l
		}
	}
	return
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
