package domain

// TripletFound is the classification of any sequence that contains a
// strictly decreasing triplet.
const TripletFound = -1

// tripletSlots 是需要检测的递减子序列长度
const tripletSlots = 3

// Classify returns TripletFound when seq holds three positions i<j<k with
// seq[i] > seq[j] > seq[k]. Otherwise it returns len(seq) for a strictly
// increasing sequence and len(seq)-1 for anything else.
func Classify(seq []int) int {
	if HasDecreasingTriplet(seq) {
		return TripletFound
	}
	if IsStrictlyIncreasing(seq) {
		return len(seq)
	}
	return len(seq) - 1
}

// HasDecreasingTriplet reports whether seq contains a strictly decreasing
// subsequence of length three.
//
// slots[k] holds the largest value that ends a strictly decreasing run of
// length k+1 seen so far. A number goes into the first slot it does not fall
// below; landing in the last slot means the run reached three.
func HasDecreasingTriplet(seq []int) bool {
	var slots [tripletSlots]int
	filled := 0

	for _, num := range seq {
		placed := false
		for j := 0; j < filled; j++ {
			if num >= slots[j] {
				slots[j] = num
				placed = true
				break
			}
		}
		if !placed {
			slots[filled] = num
			filled++
		}
		if filled == tripletSlots {
			return true
		}
	}
	return false
}

// IsStrictlyIncreasing reports whether every element is greater than its
// predecessor. Sequences of length 0 and 1 qualify trivially.
func IsStrictlyIncreasing(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] <= seq[i-1] {
			return false
		}
	}
	return true
}
