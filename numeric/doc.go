// Package numeric implements the multifrontal numeric factorization
// driver (spec §4.4, §5): given a matrix and its Symbolic analysis, it
// walks the elimination tree in postorder — sequentially when nproc == 1,
// or as a fork-join task tree bounded by nproc otherwise — allocating each
// supercolumn's factor block, focusing its front from the matrix and its
// descendants' contribution blocks, factoring it with partial pivoting,
// and propagating the resulting contribution block to its ancestors.
//
// Grounded on core's concurrency-test idiom ("what must stay race-free")
// re-expressed with errgroup/semaphore fork-join instead of raw
// goroutine+WaitGroup, per spec §9's request to avoid unstructured
// continuation handlers.
package numeric
