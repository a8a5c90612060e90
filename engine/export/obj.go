// Package export writes meshes out of the process: Wavefront OBJ files,
// PNG previews and size statistics.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spaghettifunk/meshforge/engine/mesh"
)

/**
 * @brief Writes m as a Wavefront OBJ object. Triangle, strip and fan meshes
 * become triangle faces, quad meshes quad faces and line meshes "l"
 * elements. Indices in the file are 1-based and offset by firstIndex - 1 so
 * several objects can share one file.
 * @param w The destination.
 * @param name The object name.
 * @param m The mesh to write.
 * @param firstIndex The OBJ index of the first vertex of m, 1 for a new file.
 * @return The number of vertices written and any write error.
 */
func WriteOBJ(w io.Writer, name string, m *mesh.Mesh, firstIndex int) (int, error) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)

	vertices := m.Vertices()
	for _, v := range vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
	}
	for _, v := range vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.Texcoord.X, v.Texcoord.Y)
	}
	for _, v := range vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
	}

	ref := func(i uint32) string {
		n := int(i) + firstIndex
		return fmt.Sprintf("%d/%d/%d", n, n, n)
	}
	idx := m.Indices()
	switch m.Topology() {
	case mesh.TopologyLines:
		for i := 0; i+1 < len(idx); i += 2 {
			fmt.Fprintf(bw, "l %d %d\n", int(idx[i])+firstIndex, int(idx[i+1])+firstIndex)
		}
	case mesh.TopologyQuads:
		for i := 0; i+3 < len(idx); i += 4 {
			fmt.Fprintf(bw, "f %s %s %s %s\n", ref(idx[i]), ref(idx[i+1]), ref(idx[i+2]), ref(idx[i+3]))
		}
	default:
		for _, tri := range triangleIndices(m.Topology(), idx) {
			fmt.Fprintf(bw, "f %s %s %s\n", ref(tri[0]), ref(tri[1]), ref(tri[2]))
		}
	}
	return len(vertices), bw.Flush()
}

// triangleIndices expands triangle lists, strips and fans into triangles
// with a consistent winding.
func triangleIndices(t mesh.Topology, idx []uint32) [][3]uint32 {
	var out [][3]uint32
	switch t {
	case mesh.TopologyTriangles:
		for i := 0; i+2 < len(idx); i += 3 {
			out = append(out, [3]uint32{idx[i], idx[i+1], idx[i+2]})
		}
	case mesh.TopologyTriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				out = append(out, [3]uint32{idx[i], idx[i+1], idx[i+2]})
			} else {
				out = append(out, [3]uint32{idx[i+1], idx[i], idx[i+2]})
			}
		}
	case mesh.TopologyTriangleFan:
		for i := 1; i+1 < len(idx); i++ {
			out = append(out, [3]uint32{idx[0], idx[i], idx[i+1]})
		}
	}
	return out
}
