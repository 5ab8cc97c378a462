package syntax

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(r RedRef) error

// Walk performs a pre-order traversal of the red tree starting at root.
// If fn returns a non-nil error, the walk stops immediately and returns
// that error.
func Walk(root RedRef, fn WalkFunc) error {
	if err := fn(root); err != nil {
		return err
	}

	for child := range root.Children() {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns refs for all nodes matching the predicate, in source order.
func FindAll(root RedRef, predicate func(r RedRef) bool) []RedRef {
	var result []RedRef

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(root, func(r RedRef) error {
		if predicate(r) {
			result = append(result, r)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate.
func FindFirst(root RedRef, predicate func(r RedRef) bool) (RedRef, bool) {
	var found RedRef
	ok := false

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(root, func(r RedRef) error {
		if predicate(r) {
			found = r
			ok = true
			return errStopWalk
		}
		return nil
	})

	return found, ok
}

// FindByKind returns refs for all nodes with the given kind tag.
func FindByKind(root RedRef, tag Kind) []RedRef {
	return FindAll(root, func(r RedRef) bool {
		return r.Kind().Tag == tag
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
