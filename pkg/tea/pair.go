package tea

import "fmt"

// Pair is a two-element tuple used by zip/unzip and collection entries.
type Pair[A, B any] struct {
	First  A
	Second B
}

func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
