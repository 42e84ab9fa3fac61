package coverage

// SeenSet tracks which block keys have been observed during a run. It only
// grows: there is no eviction, and the whole set is discarded with the run.
// Distinct-block counts are bounded by code size rather than execution
// length, so unbounded growth is acceptable.
//
// Not safe for concurrent use on its own; the coverage manager serializes
// the whole check-insert-emit sequence.
type SeenSet struct {
	hash    HashFunc
	buckets map[uint64][]BlockKey
	size    int
}

// NewSeenSet creates an empty set using the given hash function, or
// DefaultHash when nil.
func NewSeenSet(hash HashFunc) *SeenSet {
	if hash == nil {
		hash = DefaultHash
	}
	return &SeenSet{
		hash:    hash,
		buckets: make(map[uint64][]BlockKey),
	}
}

// Add inserts key if absent and reports whether it was newly inserted.
func (s *SeenSet) Add(key BlockKey) bool {
	h := s.hash(key)
	for _, existing := range s.buckets[h] {
		if existing == key {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], key)
	s.size++
	return true
}

// Contains reports whether key was added before.
func (s *SeenSet) Contains(key BlockKey) bool {
	for _, existing := range s.buckets[s.hash(key)] {
		if existing == key {
			return true
		}
	}
	return false
}

// Len returns the number of distinct keys added so far.
func (s *SeenSet) Len() int {
	return s.size
}
