package universe

import "gonum.org/v1/gonum/stat"

// Phases is the number of values a phase cell can take (Z₃).
const Phases = 3

// Dominant returns the most frequent value in neigh. Ties go to the smallest
// phase value.
func Dominant(neigh [8]uint8) uint8 {
	var counts [Phases]int
	for _, v := range neigh {
		counts[v%Phases]++
	}
	best := uint8(0)
	for v := uint8(1); v < Phases; v++ {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

// NextPhase applies the stability/drift rule to a single cell. A cell with two
// or three neighbors sharing its value is kept; any other cell drifts to
// (cell + dominant + Σneighbors) mod 3.
func NextPhase(cell uint8, neigh [8]uint8) uint8 {
	same := 0
	total := 0
	for _, v := range neigh {
		total += int(v)
		if v == cell {
			same++
		}
	}
	if same == 2 || same == 3 {
		return cell
	}
	return uint8((int(cell) + int(Dominant(neigh)) + total%Phases) % Phases)
}

// PhaseVariance returns the population variance of the eight phase neighbors.
func PhaseVariance(neigh [8]uint8) float64 {
	var xs [8]float64
	for i, v := range neigh {
		xs[i] = float64(v)
	}
	return stat.PopVariance(xs[:], nil)
}

// NextLife applies the survival/birth rule to a single cell. Live cells survive
// inside the [SurvivalMin, SurvivalMax] neighbor window; dead cells are born
// next to at least one live cell when the local phase variance exceeds
// BirthVariance.
func NextLife(alive bool, lifeNeighbors int, variance float64, p Params) uint8 {
	if alive {
		if lifeNeighbors >= p.SurvivalMin && lifeNeighbors <= p.SurvivalMax {
			return 1
		}
		return 0
	}
	if lifeNeighbors >= 1 && variance > p.BirthVariance {
		return 1
	}
	return 0
}
