package localsearch

// Test-only bridges to unexported kernels, so white-box tests can pin the
// candidate-generation and selection contracts without widening the prod API.

var (
	EnumerateMovesForTest  = enumerateMoves
	SampleMovesForTest     = sampleMoves
	DeriveSeedForTest      = deriveSeed
	RngFromSeedForTest     = rngFromSeed
	PrefetchWeightsForTest = prefetchWeights
	TourCostBufForTest     = tourCostBuf
)

// BestAdmissibleForTest forwards to the private tabu selection kernel.
func BestAdmissibleForTest(
	w []float64,
	n int,
	cur, scratch []int,
	candidates []Move,
	memory map[Move]int,
	iteration int,
	bestCost float64,
) (Move, float64, bool) {
	return bestAdmissible(w, n, cur, scratch, candidates, tabuMemory(memory), iteration, bestCost)
}
