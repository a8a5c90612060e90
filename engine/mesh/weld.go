package mesh

import (
	"github.com/spaghettifunk/meshforge/engine/core"
)

// Weld merges vertices whose attributes all match within tolerance and
// rewrites the index buffer accordingly. Seams with differing texcoords or
// normals are kept apart. In triangle lists, triangles whose corners weld
// together are dropped.
func Weld(m *Mesh, tolerance float32) *Mesh {
	unique := make([]Vertex, 0, len(m.vertices))
	remap := make([]uint32, len(m.vertices))

	for v := range m.vertices {
		found := false
		for u := range unique {
			if m.vertices[v].Compare(unique[u], tolerance) {
				remap[v] = uint32(u)
				found = true
				break
			}
		}
		if !found {
			unique = append(unique, m.vertices[v])
			remap[v] = uint32(len(unique) - 1)
		}
	}

	indices := make([]uint32, 0, len(m.indices))
	dropped := 0
	if m.topology == TopologyTriangles {
		for i := 0; i+2 < len(m.indices); i += 3 {
			a, b, c := remap[m.indices[i]], remap[m.indices[i+1]], remap[m.indices[i+2]]
			if a == b || b == c || a == c {
				dropped++
				continue
			}
			indices = append(indices, a, b, c)
		}
	} else {
		for _, idx := range m.indices {
			indices = append(indices, remap[idx])
		}
	}

	removed := len(m.vertices) - len(unique)
	core.LogDebug("mesh weld: removed %d vertices and %d collapsed triangles, orig/now %d/%d.", removed, dropped, len(m.vertices), len(unique))

	return &Mesh{vertices: unique, indices: indices, topology: m.topology}
}
