// Package model transcodes a Wavefront OBJ mesh into a VRML2 scene
// graph: the vertex positions, triangulated face connectivity, and
// per-face material grouping are preserved; units pass through
// unchanged. There is no equivalent conversion in the other direction;
// this package only ever goes OBJ → VRML.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linkyourbin/nlbn-gui/internal/apperror"
)

// Vertex is one 3D point.
type Vertex struct {
	X, Y, Z float64
}

// Face is a triangle: three 0-based indices into Mesh.Vertices, plus
// the index into Mesh.Materials it was assigned when parsed (-1 if the
// OBJ never named a material).
type Face struct {
	A, B, C  int
	Material int
}

// Mesh is a parsed OBJ model: flat vertex list, triangulated faces,
// and the ordered list of material names referenced by `usemtl`.
type Mesh struct {
	Vertices  []Vertex
	Faces     []Face
	Materials []string
}

// ParseOBJ decodes a Wavefront OBJ byte stream. Only `v` and `f`
// records affect the mesh; `vt`/`vn`/`mtllib`/`o`/`g`/comments are
// skipped. `usemtl` assigns the current material to every face parsed
// after it. Faces with more than three vertices are fan-triangulated
// around their first vertex.
func ParseOBJ(data []byte) (*Mesh, error) {
	mesh := &Mesh{}
	materialIndex := map[string]int{}
	currentMaterial := -1

	lines := strings.Split(string(data), "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, ok := parseVertex(fields[1:])
			if ok {
				mesh.Vertices = append(mesh.Vertices, v)
			}
		case "usemtl":
			if len(fields) < 2 {
				continue
			}
			name := fields[1]
			idx, seen := materialIndex[name]
			if !seen {
				idx = len(mesh.Materials)
				materialIndex[name] = idx
				mesh.Materials = append(mesh.Materials, name)
			}
			currentMaterial = idx
		case "f":
			indices, ok := parseFaceIndices(fields[1:], len(mesh.Vertices))
			if !ok || len(indices) < 3 {
				continue
			}
			for i := 1; i+1 < len(indices); i++ {
				mesh.Faces = append(mesh.Faces, Face{
					A: indices[0], B: indices[i], C: indices[i+1],
					Material: currentMaterial,
				})
			}
		default:
			// vt, vn, mtllib, o, g, s: not needed for the target scene graph.
		}
	}

	if len(mesh.Vertices) == 0 || len(mesh.Faces) == 0 {
		return nil, apperror.InvalidData("obj model has no vertices or faces")
	}
	return mesh, nil
}

func parseVertex(fields []string) (Vertex, bool) {
	if len(fields) < 3 {
		return Vertex{}, false
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	z, errZ := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil || errZ != nil {
		return Vertex{}, false
	}
	return Vertex{X: x, Y: y, Z: z}, true
}

// parseFaceIndices decodes a face record's vertex references, each of
// the form `v`, `v/vt`, `v/vt/vn`, or `v//vn`; only the vertex index
// is kept. Negative indices are relative to the end of the vertex
// list accumulated so far, per the OBJ spec.
func parseFaceIndices(fields []string, vertexCount int) ([]int, bool) {
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		vPart := f
		if slash := strings.IndexByte(f, '/'); slash >= 0 {
			vPart = f[:slash]
		}
		n, err := strconv.Atoi(vPart)
		if err != nil {
			return nil, false
		}
		if n < 0 {
			n = vertexCount + n + 1
		}
		if n < 1 || n > vertexCount {
			return nil, false
		}
		indices = append(indices, n-1)
	}
	return indices, true
}

// defaultMaterialName labels the Shape group for faces that never saw a
// `usemtl` directive.
const defaultMaterialName = "default"

// WriteVRML renders mesh as a VRML2 scene graph: one Shape per material
// group, each an IndexedFaceSet sharing the mesh's full vertex list.
// Faces are already triangulated by ParseOBJ; this step only regroups
// them by material and formats the coordinate/index arrays. Units pass
// through unchanged from the source OBJ.
func WriteVRML(mesh *Mesh) string {
	var b strings.Builder
	b.WriteString("#VRML V2.0 utf8\n")
	b.WriteString("# generated by nlbn obj2vrml\n\n")

	b.WriteString("Group {\n  children [\n")

	for _, group := range groupFacesByMaterial(mesh) {
		writeShape(&b, mesh, group)
	}

	b.WriteString("  ]\n}\n")
	return b.String()
}

type materialGroup struct {
	name  string
	faces []Face
}

// groupFacesByMaterial buckets faces by their material index, preserving
// first-seen order so the emitted Shape order is deterministic.
func groupFacesByMaterial(mesh *Mesh) []materialGroup {
	order := make([]int, 0)
	byMaterial := map[int][]Face{}
	for _, f := range mesh.Faces {
		if _, seen := byMaterial[f.Material]; !seen {
			order = append(order, f.Material)
		}
		byMaterial[f.Material] = append(byMaterial[f.Material], f)
	}

	groups := make([]materialGroup, 0, len(order))
	for _, idx := range order {
		name := defaultMaterialName
		if idx >= 0 && idx < len(mesh.Materials) {
			name = mesh.Materials[idx]
		}
		groups = append(groups, materialGroup{name: name, faces: byMaterial[idx]})
	}
	return groups
}

func writeShape(b *strings.Builder, mesh *Mesh, group materialGroup) {
	fmt.Fprintf(b, "    Shape {\n      appearance Appearance {\n")
	fmt.Fprintf(b, "        material Material { diffuseColor 0.8 0.8 0.8 }\n")
	fmt.Fprintf(b, "      } # material: %s\n", group.name)
	b.WriteString("      geometry IndexedFaceSet {\n")
	b.WriteString("        coord Coordinate {\n          point [\n")
	for _, v := range mesh.Vertices {
		fmt.Fprintf(b, "            %g %g %g,\n", v.X, v.Y, v.Z)
	}
	b.WriteString("          ]\n        }\n")

	b.WriteString("        coordIndex [\n")
	for _, f := range group.faces {
		fmt.Fprintf(b, "          %d, %d, %d, -1,\n", f.A, f.B, f.C)
	}
	b.WriteString("        ]\n")
	b.WriteString("        solid FALSE\n")
	b.WriteString("      }\n    },\n")
}
