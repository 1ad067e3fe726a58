package inmemory

import "sort"

// positionIndex maps a key to the ascending positions of its messages in the store log.
// Positions are only ever appended.
type positionIndex struct {
	positions map[string][]uint64
}

func newPositionIndex() *positionIndex {
	return &positionIndex{
		positions: map[string][]uint64{},
	}
}

// add appends a log position for the given key
func (i *positionIndex) add(key string, position uint64) {
	i.positions[key] = append(i.positions[key], position)
}

// get returns the log positions of the given key
func (i *positionIndex) get(key string) []uint64 {
	return i.positions[key]
}

// from returns the log positions of the given key that are greater than or equal to offset
func (i *positionIndex) from(key string, offset uint64) []uint64 {
	positions := i.positions[key]
	if offset == 0 {
		return positions
	}

	start := sort.Search(len(positions), func(n int) bool {
		return positions[n] >= offset
	})

	return positions[start:]
}
