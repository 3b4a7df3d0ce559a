package piece

import "math/rand"

// Source produces the next piece to spawn. The session polls it only at
// spawn time; its internal policy is its own business.
type Source interface {
	Next() Shape
}

// SevenBag deals shapes in shuffled batches of seven, so every shape
// appears exactly once per batch and a drought can never exceed twelve
// pieces.
type SevenBag struct {
	rng   *rand.Rand
	queue []Shape
}

// NewSevenBag creates a bag randomizer seeded deterministically.
func NewSevenBag(seed int64) *SevenBag {
	return &SevenBag{rng: rand.New(rand.NewSource(seed))}
}

// Next deals the next shape, reshuffling a fresh batch when the bag is
// empty.
func (b *SevenBag) Next() Shape {
	if len(b.queue) == 0 {
		b.queue = append(b.queue, Shapes[:]...)
		b.rng.Shuffle(len(b.queue), func(i, j int) {
			b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
		})
	}
	s := b.queue[0]
	b.queue = b.queue[1:]
	return s
}
