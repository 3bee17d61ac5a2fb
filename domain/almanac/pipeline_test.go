package almanac

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestPipeline_MapPoint(t *testing.T) {
	p := samplePipeline(t)
	require.Equal(t, 7, p.Len())

	// seed -> soil -> fertilizer -> water -> light -> temperature -> humidity -> location
	assert.Equal(t, uint64(82), p.MapPoint(79))
	assert.Equal(t, uint64(43), p.MapPoint(14))
	assert.Equal(t, uint64(86), p.MapPoint(55))
	assert.Equal(t, uint64(35), p.MapPoint(13))
}

func TestPipeline_TwoStageScenario(t *testing.T) {
	p := NewPipeline(
		NewStage("seed-to-soil", mustRule(t, 50, 98, 2), mustRule(t, 52, 50, 48)),
		NewStage("soil-to-fertilizer"),
	)
	seeds, err := Points(79, 14, 55, 13)
	require.NoError(t, err)

	assert.Equal(t, uint64(81), p.Stages()[0].MapPoint(79))
	assert.Equal(t, uint64(81), p.MapPoint(79))

	out := p.Run(seeds)
	starts := make([]uint64, len(out))
	for i, iv := range out {
		starts[i] = iv.Start()
	}
	assert.Equal(t, []uint64{81, 14, 57, 13}, starts)

	got, err := MinimumReachable(seeds, p)
	require.NoError(t, err)
	want, err := BruteForceMinimum(seeds, p)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, uint64(13), got)
}

func TestPipeline_RunIsLeftFold(t *testing.T) {
	p := samplePipeline(t)
	inputs, err := Ranges(79, 14, 55, 13)
	require.NoError(t, err)

	current := inputs
	for _, s := range p.Stages() {
		current = s.Map(current)
	}

	if diff := cmp.Diff(current, p.Run(inputs), allowInterval); diff != "" {
		t.Errorf("Run differs from manual fold (-want +got):\n%s", diff)
	}
}

func TestPipeline_RunIsDeterministic(t *testing.T) {
	p := samplePipeline(t)
	inputs, err := Ranges(79, 14, 55, 13)
	require.NoError(t, err)

	first := p.Run(inputs)
	second := p.Run(inputs)

	if diff := cmp.Diff(first, second, allowInterval); diff != "" {
		t.Errorf("runs differ (-first +second):\n%s", diff)
	}
}

func TestPipeline_RunDropsZeroIntervals(t *testing.T) {
	p := NewPipeline()
	out := p.Run([]Interval{{}, mustInterval(t, 4, 2)})
	require.Len(t, out, 1)
	assert.Equal(t, uint64(4), out[0].Start())
}

func TestPipeline_RunContextParallelMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := samplePipeline(t)
	var pairs []uint64
	for i := uint64(0); i < 40; i++ {
		pairs = append(pairs, i*3, 1+i%7)
	}
	inputs, err := Ranges(pairs...)
	require.NoError(t, err)

	want := p.Run(inputs)
	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		got, err := p.RunContext(context.Background(), inputs, WithWorkers(workers))
		require.NoError(t, err)
		if diff := cmp.Diff(want, got, allowInterval); diff != "" {
			t.Errorf("workers=%d mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

func TestPipeline_RunContextCoalesce(t *testing.T) {
	p := samplePipeline(t)
	inputs, err := Ranges(79, 14, 55, 13)
	require.NoError(t, err)

	plain := p.Run(inputs)
	merged, err := p.RunContext(context.Background(), inputs, WithCoalesce(), WithWorkers(2))
	require.NoError(t, err)

	assert.LessOrEqual(t, len(merged), len(plain))
	if diff := cmp.Diff(Coalesce(plain), Coalesce(merged), allowInterval); diff != "" {
		t.Errorf("coalescing changed the covered values (-want +got):\n%s", diff)
	}
}

func TestPipeline_RunContextCancelled(t *testing.T) {
	p := samplePipeline(t)
	inputs, err := Points(79)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.RunContext(ctx, inputs, WithWorkers(4))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChunk(t *testing.T) {
	ivs := make([]Interval, 10)
	for i := range ivs {
		ivs[i] = mustInterval(t, uint64(i), 1)
	}

	chunks := chunk(ivs, 3)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 4)
	assert.Len(t, chunks[1], 4)
	assert.Len(t, chunks[2], 2)

	assert.Len(t, chunk(ivs[:2], 8), 2)
}

func TestPipeline_RunContextCoalesceWithoutStages(t *testing.T) {
	inputs := []Interval{mustInterval(t, 20, 5), mustInterval(t, 10, 10)}

	got, err := NewPipeline().RunContext(context.Background(), inputs, WithCoalesce())
	require.NoError(t, err)

	want := []Interval{mustInterval(t, 10, 15)}
	if diff := cmp.Diff(want, got, allowInterval); diff != "" {
		t.Errorf("coalesced identity pipeline mismatch (-want +got):\n%s", diff)
	}
}
