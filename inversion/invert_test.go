package inversion_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hardcore/inversion"
	"github.com/katalvlaran/hardcore/model"
)

const (
	// goldenTol bounds differences to reference outputs (evaluation order only).
	goldenTol = 1e-9

	// roundTripTol is the iteration tolerance propagated to CRF.
	roundTripTol = 1e-2

	seedDet = int64(42)
)

// InvertSuite exercises Invert under boundary, iterative and degenerate inputs.
type InvertSuite struct {
	suite.Suite
}

func TestInvertSuite(t *testing.T) {
	suite.Run(t, new(InvertSuite))
}

// TestEarthLikeGolden pins Invert(1, 1) to reference values.
func (s *InvertSuite) TestEarthLikeGolden() {
	res, err := inversion.Invert(1, 1, nil)
	require.NoError(s.T(), err)
	s.InDelta(0.4326564270514042, res.Min, goldenTol)
	s.InDelta(0.7714041890116314, res.Max, goldenTol)
	s.Equal(inversion.Newton, res.Method)
	s.Equal(7, res.Steps)
	s.True(res.Converged)
	s.False(res.Inconsistent)
	s.GreaterOrEqual(res.Marg, res.Min)
	s.LessOrEqual(res.Marg, res.Max)
}

// TestRoundTrip verifies Invert(M, Forward(M, c)) recovers c.
func (s *InvertSuite) TestRoundTrip() {
	for _, m := range []float64{0.5, 1, 2, 5, 10} {
		for _, c := range []float64{0.2, 0.4, 0.6, 0.8} {
			r := model.Forward(m, c)
			s.Require().Less(model.CorefullRadius(m), r)
			s.Require().Less(r, model.CorelessRadius(m))

			res, err := inversion.Invert(m, r, nil)
			s.Require().NoError(err)
			s.InDelta(c, res.Min, roundTripTol, "mass=%g crf=%g", m, c)
			s.Equal(inversion.Newton, res.Method)
			s.True(res.Converged)
		}
	}
}

// TestBoundaryCollapse verifies exact 1/0 without iteration at the end-member radii.
func (s *InvertSuite) TestBoundaryCollapse() {
	for _, m := range []float64{0.1, 0.5, 1, 3, 10, 25} {
		res, err := inversion.Invert(m, model.CorefullRadius(m), nil)
		s.Require().NoError(err)
		s.Equal(1.0, res.Min, "iron radius, mass=%g", m)
		s.Equal(inversion.IronBound, res.Method)
		s.Zero(res.Steps)

		res, err = inversion.Invert(m, model.CorelessRadius(m), nil)
		s.Require().NoError(err)
		s.Equal(0.0, res.Min, "silicate radius, mass=%g", m)
		s.Equal(inversion.SilicateBound, res.Method)
		s.Zero(res.Steps)
	}
}

// TestClamping feeds extreme inputs that push raw formulas outside [0,1].
func (s *InvertSuite) TestClamping() {
	cases := []struct {
		name         string
		mass, radius float64
		wantMin      float64
		wantMax      float64
	}{
		{"far below iron radius", 1, 0.1, 1, 1},
		{"far above silicate radius", 1, 100, 0, 0.0077140418901163145},
		{"huge mass", 1e4, 1, 0, 0.013419552248896183},
		{"tiny mass", 1e-4, 1, 0, 0.0410104146194708},
		{"dense giant", 1000, 1.5, 1, 1},
		{"newton undershoots zero", 0.01, 0.2, 0, 0.9307043335382259},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res, err := inversion.Invert(tc.mass, tc.radius, nil)
			s.Require().NoError(err)
			s.InDelta(tc.wantMin, res.Min, goldenTol)
			s.InDelta(tc.wantMax, res.Max, goldenTol)
			s.GreaterOrEqual(res.Min, 0.0)
			s.LessOrEqual(res.Min, 1.0)
			s.GreaterOrEqual(res.Max, 0.0)
			s.LessOrEqual(res.Max, 1.0)
		})
	}
}

// TestContainment verifies Min ≤ Marg ≤ Max over a grid of consistent inputs.
func (s *InvertSuite) TestContainment() {
	opts := inversion.NewOptions(inversion.WithSeed(seedDet))
	for _, m := range []float64{0.3, 1, 4, 12} {
		for r := 0.4; r < 2.5; r += 0.1 {
			res, err := inversion.Invert(m, r, &opts)
			s.Require().NoError(err)
			if res.Inconsistent {
				continue
			}
			s.GreaterOrEqual(res.Marg, res.Min, "mass=%g radius=%g", m, r)
			s.LessOrEqual(res.Marg, res.Max, "mass=%g radius=%g", m, r)
		}
	}
}

// TestIterationFloor verifies at least MinSteps steps run even when the
// tolerance is met immediately, and that the result differs from one step.
func (s *InvertSuite) TestIterationFloor() {
	var calls []int
	opts := inversion.NewOptions(
		inversion.WithTolerance(1), // every step satisfies |Δx| ≤ 1
		inversion.WithStepHook(func(step int, _, _ float64) { calls = append(calls, step) }),
	)
	res, err := inversion.Invert(1, 1, &opts)
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3}, calls)
	s.Equal(3, res.Steps)
	s.InDelta(0.44201406001720445, res.Min, goldenTol)

	oneStep := 0.5 - model.NewtonTerm(1, 1, 0.5)
	s.Greater(math.Abs(res.Min-oneStep), 1e-2, "three steps must move past the first iterate")
}

// TestSilentNonConvergence verifies MaxSteps stops the loop without error.
func (s *InvertSuite) TestSilentNonConvergence() {
	opts := inversion.NewOptions(
		inversion.WithTolerance(1e-12),
		inversion.WithSteps(3, 3),
	)
	res, err := inversion.Invert(1, 1, &opts)
	s.Require().NoError(err)
	s.Equal(3, res.Steps)
	s.False(res.Converged)
	s.InDelta(0.44201406001720445, res.Min, goldenTol)
}

// TestTighterToleranceTakesLonger checks the stopping rule responds to Tolerance.
func (s *InvertSuite) TestTighterToleranceTakesLonger() {
	opts := inversion.NewOptions(inversion.WithTolerance(1e-12), inversion.WithSteps(3, 200))
	res, err := inversion.Invert(1, 1, &opts)
	s.Require().NoError(err)
	s.Greater(res.Steps, 7)
	s.True(res.Converged)
	s.InDelta(1.0, model.Forward(1, res.Min), 1e-3, "root reproduces the observed radius")
}

// TestStepHookSeesEveryIterate verifies the hook reports the final iterate.
func (s *InvertSuite) TestStepHookSeesEveryIterate() {
	var last, lastDelta float64
	n := 0
	opts := inversion.NewOptions(inversion.WithStepHook(func(_ int, crf, delta float64) {
		n++
		last, lastDelta = crf, delta
	}))
	res, err := inversion.Invert(1, 1, &opts)
	s.Require().NoError(err)
	s.Equal(res.Steps, n)
	s.Equal(res.Min, last)
	s.LessOrEqual(lastDelta, inversion.DefaultTolerance)
}

// TestDeterministicBounds verifies Min/Max are bit-identical across calls.
func (s *InvertSuite) TestDeterministicBounds() {
	first, err := inversion.Invert(2.3, 1.2, nil)
	s.Require().NoError(err)
	for i := 0; i < 5; i++ {
		again, err := inversion.Invert(2.3, 1.2, nil)
		s.Require().NoError(err)
		s.Equal(first.Min, again.Min)
		s.Equal(first.Max, again.Max)
		s.Equal(first.Steps, again.Steps)
	}
}

// TestSeededMarg verifies identical seeds reproduce CRFmarg exactly.
func (s *InvertSuite) TestSeededMarg() {
	a := inversion.NewOptions(inversion.WithSeed(seedDet))
	b := inversion.NewOptions(inversion.WithSeed(seedDet))
	ra, err := inversion.Invert(1, 1, &a)
	s.Require().NoError(err)
	rb, err := inversion.Invert(1, 1, &b)
	s.Require().NoError(err)
	s.Equal(ra.Marg, rb.Marg)

	u := inversion.NewRand(seedDet).Float64()
	s.Equal(ra.Min+(ra.Max-ra.Min)*u, ra.Marg)
}

// TestZeroSeedUsesDefault mirrors the seed==0 policy.
func (s *InvertSuite) TestZeroSeedUsesDefault() {
	s.Equal(inversion.NewRand(inversion.DefaultSeed).Int63(), inversion.NewRand(0).Int63())
}

func TestInvert_ConcurrentCallers(t *testing.T) {
	want, err := inversion.Invert(3, 1.4, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				got, err := inversion.Invert(3, 1.4, nil)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, want.Min, got.Min)
				assert.Equal(t, want.Max, got.Max)
			}
		}()
	}
	wg.Wait()
}

func TestInvert_PermissiveDomain(t *testing.T) {
	res, err := inversion.Invert(-1, 1, nil)
	require.NoError(t, err, "garbage in is not an error by default")
	assert.True(t, math.IsNaN(res.Min))
	assert.True(t, math.IsNaN(res.Max))
	assert.True(t, math.IsNaN(res.Marg))
	assert.Equal(t, inversion.DefaultMinSteps, res.Steps, "NaN stops the loop at the floor")
	assert.False(t, res.Converged)
}

func TestInvert_StrictDomain(t *testing.T) {
	opts := inversion.NewOptions(inversion.WithStrict(true))
	cases := []struct {
		name         string
		mass, radius float64
		param        string
	}{
		{"zero mass", 0, 1, "mass"},
		{"negative mass", -2, 1, "mass"},
		{"NaN mass", math.NaN(), 1, "mass"},
		{"zero radius", 1, 0, "radius"},
		{"infinite radius", 1, math.Inf(1), "radius"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := inversion.Invert(tc.mass, tc.radius, &opts)
			require.ErrorIs(t, err, inversion.ErrInvalidDomain)
			var de *inversion.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.param, de.Param)
		})
	}

	_, err := inversion.Invert(1, 1, &opts)
	assert.NoError(t, err, "valid observation passes strict mode")
}

func TestInvert_BadOptions(t *testing.T) {
	bad := []inversion.Options{
		{}, // zero value: MinSteps == 0
		{Tolerance: -1, MinSteps: 3, MaxSteps: 50},
		{Tolerance: math.NaN(), MinSteps: 3, MaxSteps: 50},
		{Tolerance: 1e-3, MinSteps: 5, MaxSteps: 4},
		{Tolerance: 1e-3, MinSteps: 3, MaxSteps: 50, Inconsistent: inversion.Policy(9)},
	}
	for i := range bad {
		_, err := inversion.Invert(1, 1, &bad[i])
		assert.ErrorIs(t, err, inversion.ErrBadOptions, "case %d", i)
	}
}

func TestOptionConstructors_Panic(t *testing.T) {
	assert.Panics(t, func() { inversion.WithTolerance(-1) })
	assert.Panics(t, func() { inversion.WithTolerance(math.Inf(1)) })
	assert.Panics(t, func() { inversion.WithSteps(0, 10) })
	assert.Panics(t, func() { inversion.WithSteps(5, 4) })
	assert.NotPanics(t, func() { inversion.NewOptions(nil, inversion.WithSteps(1, 1)) })
}

func TestPolicy_ParseAndString(t *testing.T) {
	for _, p := range []inversion.Policy{inversion.SampleBetween, inversion.SwapBounds, inversion.RejectInconsistent} {
		got, err := inversion.ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := inversion.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, inversion.SampleBetween, got)

	_, err = inversion.ParsePolicy("clamp")
	assert.ErrorIs(t, err, inversion.ErrBadOptions)
	assert.Equal(t, "unknown", inversion.Policy(7).String())
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "newton", inversion.Newton.String())
	assert.Equal(t, "iron-bound", inversion.IronBound.String())
	assert.Equal(t, "silicate-bound", inversion.SilicateBound.String())
	assert.Equal(t, "unknown", inversion.Method(-1).String())
}

func TestResult_Triple(t *testing.T) {
	lo, hi, mid := inversion.Result{Min: 0.1, Max: 0.9, Marg: 0.5}.Triple()
	assert.Equal(t, [3]float64{0.1, 0.9, 0.5}, [3]float64{lo, hi, mid})
}
