package foodmatchdb

// Optimistic captures an optimistic local mutation: the caller applies the
// change immediately, commits the store write, and reverts to the snapshot
// if the write fails.
type Optimistic[T any] struct {
	prev T
	next T
}

// ApplyOptimistic applies mutate to state, keeping the pre-mutation
// snapshot for rollback.
func ApplyOptimistic[T any](state T, mutate func(T) T) Optimistic[T] {
	return Optimistic[T]{prev: state, next: mutate(state)}
}

// State returns the optimistically applied state.
func (o Optimistic[T]) State() T {
	return o.next
}

// Undo returns the pre-mutation snapshot.
func (o Optimistic[T]) Undo() T {
	return o.prev
}

// Commit runs the store write. It returns the applied state on success, and
// the reverted snapshot together with the error on failure.
func (o Optimistic[T]) Commit(write func() error) (T, error) {
	if err := write(); err != nil {
		return o.prev, err
	}
	return o.next, nil
}
