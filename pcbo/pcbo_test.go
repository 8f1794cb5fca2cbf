package pcbo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fcalib/bitset"
	"github.com/katalvlaran/fcalib/fcontext"
	"github.com/katalvlaran/fcalib/pcbo"
)

func rows(patterns ...string) []bitset.Set {
	out := make([]bitset.Set, len(patterns))
	for i, p := range patterns {
		s := bitset.NewSet(len(p))
		for j, ch := range p {
			if ch == '1' {
				s.SetBit(j)
			}
		}
		out[i] = s
	}
	return out
}

// livesInWaterContext builds scenario S2, the classic Ganter/Wille
// "Lives in Water" fixture, exactly as the original Rust test carries it.
func livesInWaterContext(t *testing.T) *fcontext.Context {
	t.Helper()
	objects := []string{
		"fish leech", "bream", "frog", "dog",
		"water weeds", "reed", "bean", "corn",
	}
	attributes := []string{
		"needs water to live", "lives in water", "lives on land",
		"needs chlorophyll", "dicotyledon", "monocotyledon",
		"can move", "has limbs", "breast feeds",
	}
	ctx, err := fcontext.NewContext(objects, attributes, rows(
		"110000100",
		"110000110",
		"111000110",
		"101000111",
		"110101000",
		"111101000",
		"101110000",
		"101101000",
	))
	require.NoError(t, err)
	return ctx
}

type PCbOSuite struct {
	suite.Suite
}

func TestPCbOSuite(t *testing.T) {
	suite.Run(t, new(PCbOSuite))
}

func (s *PCbOSuite) TestS1FourConcepts() {
	ctx, err := fcontext.NewContext(
		[]string{"a", "b", "c"},
		[]string{"1", "2", "3"},
		rows("101", "111", "011"),
	)
	s.Require().NoError(err)

	for _, workers := range []int{1, 2, 8} {
		n, err := pcbo.New(ctx, pcbo.WithWorkers(workers)).NumConcepts(context.Background())
		s.Require().NoError(err)
		s.Equal(4, n, "workers=%d", workers)
	}
}

func (s *PCbOSuite) TestS2LivesInWaterNineteenConcepts() {
	ctx := livesInWaterContext(s.T())
	n, err := pcbo.New(ctx).NumConcepts(context.Background())
	s.Require().NoError(err)
	s.Equal(19, n)
}

func (s *PCbOSuite) TestS3ReductionPreservesConceptCount() {
	ctx, err := fcontext.NewContext(
		[]string{"a", "b", "c"},
		[]string{"1", "2", "3"},
		rows("101", "111", "011"),
	)
	s.Require().NoError(err)

	before, err := pcbo.New(ctx).NumConcepts(context.Background())
	s.Require().NoError(err)
	s.Equal(4, before)

	ctx.Reduce()
	s.True(ctx.IsReduced())

	after, err := pcbo.New(ctx).NumConcepts(context.Background())
	s.Require().NoError(err)
	s.Equal(4, after)
}

func (s *PCbOSuite) TestS4ContranomialScaleSixteenConcepts() {
	ctx := fcontext.ContranomialScale([]string{"w", "x", "y", "z"})
	n, err := pcbo.New(ctx).NumConcepts(context.Background())
	s.Require().NoError(err)
	s.Equal(16, n) // 2^4
}

func (s *PCbOSuite) TestS5EmptyRelationTwoConcepts() {
	ctx := fcontext.NewZeroContext([]string{"a", "b", "c"}, []string{"1", "2", "3"})
	concepts, err := pcbo.New(ctx).AllConcepts(context.Background())
	s.Require().NoError(err)
	s.Len(concepts, 2)

	var sawTop, sawBottom bool
	for _, c := range concepts {
		switch c.Extent.CountOnes() {
		case 3:
			sawTop = true
			s.Equal(0, c.Intent.CountOnes())
		case 0:
			sawBottom = true
			s.Equal(3, c.Intent.CountOnes())
		}
	}
	s.True(sawTop, "expected the top concept (extent=111, intent=000)")
	s.True(sawBottom, "expected the bottom concept (extent=000, intent=111)")
}

func (s *PCbOSuite) TestS6FullRelationDegenerateCase() {
	full := bitset.AllOnes(3)
	ctx, err := fcontext.NewContext(
		[]string{"a", "b", "c"},
		[]string{"1", "2", "3"},
		[]bitset.Set{full.Clone(), full.Clone(), full.Clone()},
	)
	s.Require().NoError(err)

	// Top and bottom coincide when the relation is full: every object has
	// every attribute, so the top concept's intent is already all of M
	// and its extent is already all of O. There is exactly one concept.
	n, err := pcbo.New(ctx).NumConcepts(context.Background())
	s.Require().NoError(err)
	s.Equal(1, n)

	for _, workers := range []int{1, 4} {
		n, err := pcbo.New(ctx, pcbo.WithWorkers(workers)).NumConcepts(context.Background())
		s.Require().NoError(err)
		s.Equal(1, n, "workers=%d", workers)
	}
}

func (s *PCbOSuite) TestAllConceptsAreValid() {
	ctx := livesInWaterContext(s.T())
	concepts, err := pcbo.New(ctx).AllConcepts(context.Background())
	s.Require().NoError(err)
	for _, rc := range concepts {
		extent := ctx.ExtentOf(rc.Intent)
		intent := ctx.IntentOf(rc.Extent)
		eqE, _ := bitset.Equal(extent, rc.Extent)
		eqI, _ := bitset.Equal(intent, rc.Intent)
		s.True(eqE, "extent must equal ExtentOf(intent)")
		s.True(eqI, "intent must equal IntentOf(extent)")
	}
}

func (s *PCbOSuite) TestNoDuplicateExtents() {
	ctx := livesInWaterContext(s.T())
	concepts, err := pcbo.New(ctx).AllConcepts(context.Background())
	s.Require().NoError(err)

	seen := make(map[string]bool, len(concepts))
	for _, rc := range concepts {
		key := rc.Extent.String()
		s.False(seen[key], "duplicate extent emitted")
		seen[key] = true
	}
}

func (s *PCbOSuite) TestCountBound() {
	ctx := livesInWaterContext(s.T())
	n, err := pcbo.New(ctx).NumConcepts(context.Background())
	s.Require().NoError(err)
	s.GreaterOrEqual(n, 1)
	s.LessOrEqual(n, 1<<8) // 2^min(8 objects, 9 attributes)
}

func (s *PCbOSuite) TestCancellationStopsEarly() {
	ctx := fcontext.ContranomialScale([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"})
	cctx, cancel := context.WithCancel(context.Background())

	count := 0
	for range pcbo.New(ctx).AllConceptsSeq(cctx) {
		count++
		if count == 3 {
			cancel()
			break
		}
	}
	s.Equal(3, count)
}
