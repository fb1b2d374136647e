package Sets

type Set[E any] interface {
	//Put e into the set. Returns false if e is already in it.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns false if e isn't in it.
	Remove(E) bool
	Size() uint
	//Take an element without removing it. Returns the zero value if the set is empty.
	Take() E
	//Range over the elements until f returns false.
	Range(func(E) bool)
}

type ExtendedSet[E any] interface {
	PutAll(Set[E]) uint
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	Filter(func(E) bool) ExtendedSet[E]
}
