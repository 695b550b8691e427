package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleOBJ = `# a single triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
f 1 2 3
`

func TestParseOBJTriangle(t *testing.T) {
	mesh, err := ParseOBJ([]byte(triangleOBJ))
	require.NoError(t, err)
	assert.Len(t, mesh.Vertices, 3)
	require.Len(t, mesh.Faces, 1)
	assert.Equal(t, Face{A: 0, B: 1, C: 2, Material: -1}, mesh.Faces[0])
}

func TestParseOBJFanTriangulatesQuad(t *testing.T) {
	mesh, err := ParseOBJ([]byte("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"))
	require.NoError(t, err)
	require.Len(t, mesh.Faces, 2)
	assert.Equal(t, Face{A: 0, B: 1, C: 2, Material: -1}, mesh.Faces[0])
	assert.Equal(t, Face{A: 0, B: 2, C: 3, Material: -1}, mesh.Faces[1])
}

func TestParseOBJTracksMaterials(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl red\nf 1 2 3\nusemtl blue\nv 1 1 0\nf 1 2 4\n"
	mesh, err := ParseOBJ([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, mesh.Materials)
	assert.Equal(t, 0, mesh.Faces[0].Material)
	assert.Equal(t, 1, mesh.Faces[1].Material)
}

func TestParseOBJEmptyIsInvalidData(t *testing.T) {
	_, err := ParseOBJ([]byte("# nothing here\n"))
	assert.Error(t, err)
}

func TestParseOBJNegativeFaceIndices(t *testing.T) {
	mesh, err := ParseOBJ([]byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"))
	require.NoError(t, err)
	assert.Equal(t, Face{A: 0, B: 1, C: 2, Material: -1}, mesh.Faces[0])
}

func TestWriteVRMLPreservesVerticesAndFaces(t *testing.T) {
	mesh, err := ParseOBJ([]byte(triangleOBJ))
	require.NoError(t, err)

	out := WriteVRML(mesh)
	assert.True(t, strings.HasPrefix(out, "#VRML V2.0 utf8\n"))
	assert.Contains(t, out, "IndexedFaceSet")
	assert.Contains(t, out, "0, 1, 2, -1,")
	assert.Contains(t, out, "1 0 0,")
}

func TestWriteVRMLGroupsByMaterial(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl red\nf 1 2 3\nusemtl blue\nv 1 1 0\nf 1 2 4\n"
	mesh, err := ParseOBJ([]byte(src))
	require.NoError(t, err)

	out := WriteVRML(mesh)
	assert.Equal(t, 2, strings.Count(out, "Shape {"))
	assert.Contains(t, out, "material: red")
	assert.Contains(t, out, "material: blue")
}
