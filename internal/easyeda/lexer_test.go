package easyeda

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFields(t *testing.T) {
	designator, fields := splitFields("R~10~20~~~30~40~#FF0000~1~0~none~gge1~0~")
	assert.Equal(t, "R", designator)
	assert.Equal(t, "30", fields[5])
	assert.Equal(t, "none", fields[10])
}

func TestSplitPinSegments(t *testing.T) {
	segments := splitPinSegments("P~show~P~1~-10~10~180~gge5~0^^-10~10^^M -10,10 h 10~#880000")
	require.Len(t, segments, 3)
	assert.Equal(t, "P", segments[0][0])
	assert.Equal(t, "-10", segments[0][4])
	assert.Equal(t, "M -10,10 h 10", segments[2][0])
}

func TestFieldOutOfRangeIsEmpty(t *testing.T) {
	fields := []string{"a", "b"}
	assert.Equal(t, "b", field(fields, 1))
	assert.Equal(t, "", field(fields, 5))
	assert.Equal(t, "", field(fields, -1))
}

func TestIsFilledSemantics(t *testing.T) {
	assert.False(t, isFilled(""))
	assert.False(t, isFilled("none"))
	assert.True(t, isFilled("#FF0000"))
	assert.True(t, isFilled("1"))
	assert.True(t, isFilled("solid"))
}

// encodeRectangle rebuilds an R record with the decoder's own field
// layout, so decode→encode→decode must reproduce the same rectangle.
func encodeRectangle(r Rectangle) string {
	fill := "none"
	if r.Fill {
		fill = "#FF0000"
	}
	return fmt.Sprintf("R~%s~%s~~~%s~%s~#FF0000~1~0~%s~gge1~0~",
		num(r.X), num(r.Y), num(r.Width), num(r.Height), fill)
}

func encodePad(p Pad) string {
	hole := "0"
	if p.HoleRadius != nil {
		hole = num(*p.HoleRadius)
	}
	length := "0"
	if p.HoleLength != nil {
		length = num(*p.HoleLength)
	}
	return fmt.Sprintf("PAD~%s~%s~%s~%s~%s~%d~~%s~%s~~%s~gge1~%s",
		string(p.Shape), num(p.X), num(p.Y), num(p.Width), num(p.Height),
		p.LayerID, p.Number, hole, num(p.Rotation), length)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestRectangleDecodeEncodeRoundTrip(t *testing.T) {
	record := "R~10~20~~~30.5~40~#FF0000~1~0~#FF0000~gge1~0~"
	sym, err := ParseSymbol([]string{record})
	require.NoError(t, err)
	require.Len(t, sym.Rectangles, 1)

	again, err := ParseSymbol([]string{encodeRectangle(sym.Rectangles[0])})
	require.NoError(t, err)
	require.Len(t, again.Rectangles, 1)
	assert.Equal(t, sym.Rectangles[0], again.Rectangles[0])
}

func TestPadDecodeEncodeRoundTrip(t *testing.T) {
	record := "PAD~OVAL~10~20~30~15~1~~2~5~~90~gge2~8"
	fp, err := ParseFootprint([]string{record})
	require.NoError(t, err)
	require.Len(t, fp.Pads, 1)

	again, err := ParseFootprint([]string{encodePad(fp.Pads[0])})
	require.NoError(t, err)
	require.Len(t, again.Pads, 1)
	assert.Equal(t, fp.Pads[0], again.Pads[0])
}
