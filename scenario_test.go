package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-geom/voronoi/options"
	"github.com/go-geom/voronoi/point"
)

// The tests in this file reproduce the reference end-to-end scenarios: whole-diagram
// cell/vertex/edge counts plus vertex coordinates captured from an independent
// implementation, located order-independently through Diagram.FindVertex with a 1e-6
// tolerance.

func requireVertices(t *testing.T, d *Diagram, coords [][2]float64) {
	t.Helper()
	for _, c := range coords {
		_, ok := d.FindVertex(point.New(c[0], c[1]), options.WithEpsilon(1e-6))
		assert.True(t, ok, "missing vertex near (%v, %v)", c[0], c[1])
	}
}

// Three segments in PPS geometry near (-5000, -5000); the first reference vertex is
// the point-point-segment convergence the scenario is named for.
func TestScenarioThreeSegmentsPPS(t *testing.T) {
	d, err := NewBuilder().
		WithSegments(
			NewSegment(NewPoint(-5138, -5149), NewPoint(-5038, -5142)),
			NewSegment(NewPoint(-5042, -5069), NewPoint(-5165, -5162)),
			NewSegment(NewPoint(-5011, -5195), NewPoint(-5404, -5134)),
		).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 9, d.NumCells())
	assert.Equal(t, 12, d.NumVertices())
	assert.Equal(t, 40, d.NumEdges())

	requireVertices(t, d, [][2]float64{
		{-5161.8029011, -5166.2284211},
		{-5182.8168392, -5138.4357933},
		{-5138.2247187, -5145.7897328},
		{-5142.4025686, -5161.3427932},
		{-5137.0815829, -5162.1202444},
		{-5036.2947365, -5166.3609069},
		{-5040.3041060, -5109.0842007},
		{-5015.4207571, -5104.1531922},
		{-5005.3744656, -5158.7568033},
		{-5279.3601678, -4755.0720361},
		{-5317.3746719, -4575.9056733},
		{-4884.0605458, -5096.9553724},
	})
}

// Four segments forming a square loop plus one diagonal stub outside it; the square's
// corners all become Voronoi vertices.
func TestScenarioSquareLoopPlusDiagonal(t *testing.T) {
	d, err := NewBuilder().
		WithSegments(
			NewSegment(NewPoint(200, 200), NewPoint(200, 400)),
			NewSegment(NewPoint(200, 400), NewPoint(400, 400)),
			NewSegment(NewPoint(400, 400), NewPoint(400, 200)),
			NewSegment(NewPoint(400, 200), NewPoint(200, 200)),
			NewSegment(NewPoint(529, 242), NewPoint(367, 107)),
		).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 11, d.NumVertices())
	requireVertices(t, d, [][2]float64{
		{200.0000000, 200.0000000},
		{200.0000000, 400.0000000},
		{333.3293560, 147.4047728},
		{200.0000000, 3.5591398},
		{400.0000000, 200.0000000},
		{300.0000000, 300.0000000},
		{400.0000000, 400.0000000},
		{400.0000000, 171.5428751},
		{430.6785590, 200.0000000},
		{478.6496933, 302.4203680},
		{561.2596899, 400.0000000},
	})
}

// Near-degenerate three-segment input whose circle events sit inside the float64
// error envelope, forcing the BigInt/ExtFloat recomputation tier.
func TestScenarioNearDegeneratePPS(t *testing.T) {
	d, err := NewBuilder().
		WithSegments(
			NewSegment(NewPoint(-5205, -5210), NewPoint(-5095, -5152)),
			NewSegment(NewPoint(-5166, -5197), NewPoint(-5099, -5209)),
			NewSegment(NewPoint(-5029, -5002), NewPoint(-5500, -5319)),
		).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 9, d.NumCells())
	assert.Equal(t, 12, d.NumVertices())
	assert.Equal(t, 40, d.NumEdges())

	requireVertices(t, d, [][2]float64{
		{-5222.3739979, -5177.0493144},
		{-5165.3404816, -5193.3176891},
		{-5171.5766569, -5228.1363343},
		{-5115.4849717, -5113.1491916},
		{-5161.6211612, -5292.2702116},
		{-5094.2137357, -5182.2766911},
		{-5079.3184829, -5181.7408082},
		{-5149.3525019, -5490.1348021},
		{-4943.4008205, -5129.1836390},
		{-5146.2212550, -5822.0469693},
		{-5136.0921495, -5859.6958915},
		{-4775.4962049, -5203.0616698},
	})
}

// Large-scale stress input: 193 non-intersecting segments (samplePrimary66). The
// whole-diagram counts pin the topology, a handful of reference vertices spot-check
// the geometry, and the twin invariant must hold across all 3440 half-edges.
func TestScenarioStress193Segments(t *testing.T) {
	segments := make([]Segment, len(samplePrimary66))
	for i, s := range samplePrimary66 {
		segments[i] = NewSegment(NewPoint(s[0], s[1]), NewPoint(s[2], s[3]))
	}
	d, err := NewBuilder().WithSegments(segments...).Build()
	require.NoError(t, err)

	assert.Equal(t, 579, d.NumCells())
	assert.Equal(t, 1142, d.NumVertices())
	assert.Equal(t, 3440, d.NumEdges())

	requireVertices(t, d, [][2]float64{
		{-49456.7929234, -49236.9315545},
		{-49041.0986560, -49432.5134604},
		{-49046.1927997, -49824.7984762},
		{-49000.0771171, -49784.8205615},
		{-49610.5000000, -45636.7500000},
	})

	for _, e := range d.Edges() {
		assert.Equal(t, e.ID(), e.Twin().Twin().ID())
		assert.NotEqual(t, e.ID(), e.Twin().ID())
	}
}
