package search

// Searcher is a pure transformation from an assignment to an improved one
// over a fixed formula. Implementations never mutate the input assignment
// nor share state between calls beyond their injected random source.
type Searcher interface {
	Search(formula Formula, assignment Assignment) Assignment
}
