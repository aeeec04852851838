// Package utils
package utils

import (
	"testing"
)

func TestReverseForEach(t *testing.T) {
	src := []int{1, 2, 3}
	visited := make([]int, 0, len(src))
	ReverseForEach(src, func(idx int, element int) {
		visited = append(visited, element)
	})
	expected := []int{3, 2, 1}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("ReverseForEach visited %v; expected %v", visited, expected)
			break
		}
	}
}

func TestReverseForEachEmpty(t *testing.T) {
	calls := 0
	ReverseForEach([]int{}, func(idx int, element int) { calls++ })
	if calls != 0 {
		t.Errorf("ReverseForEach on empty slice made %d calls; expected 0", calls)
	}
}
