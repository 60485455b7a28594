// Package internal holds helpers shared by the search and the stepper.
package internal

import "errors"

// ErrParentCycle is reported when following parent links never reaches a
// root. Searches only link forward into unclosed nodes, so seeing it means
// the search itself is broken.
var ErrParentCycle = errors.New("parent links form a cycle")

// Backtrace rebuilds the index sequence from the root to goal by following
// parent links. A negative parent marks the root. limit bounds the walk; any
// chain longer than limit is a cycle.
func Backtrace(parent func(index int) int32, goal int, limit int) ([]int, error) {
	path := []int{goal}
	current := goal
	for {
		previous := parent(current)
		if previous < 0 {
			break
		}
		if len(path) > limit {
			return nil, ErrParentCycle
		}
		current = int(previous)
		path = append(path, current)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
