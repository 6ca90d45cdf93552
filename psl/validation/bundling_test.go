package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBundleState_Next(t *testing.T) {
	tests := []struct {
		from   bundleState
		sorted bool
		to     bundleState
		ok     bool
	}{
		{bundleInit, true, bundleSortHead, true},
		{bundleInit, false, bundleText, true},
		{bundleSortHead, true, bundleSortHead, true},
		{bundleSortHead, false, bundleText, true},
		{bundleText, false, bundleText, true},
		{bundleText, true, bundleSortTail, true},
		{bundleSortTail, true, bundleSortTail, true},
		{bundleSortTail, false, bundleSortTail, false},
	}
	for _, tt := range tests {
		to, ok := tt.from.next(tt.sorted)
		assert.Equal(t, tt.to, to, "%s + sorted=%v", tt.from, tt.sorted)
		assert.Equal(t, tt.ok, ok, "%s + sorted=%v", tt.from, tt.sorted)
	}
}

func TestTextFieldsBundled(t *testing.T) {
	tests := []struct {
		name   string
		sorted []bool
		want   bool
	}{
		{"empty", nil, true},
		{"sorted, sorted", []bool{true, true}, true},
		{"unsorted, unsorted", []bool{false, false}, true},
		{"sorted, unsorted, sorted", []bool{true, false, true}, true},
		{"unsorted, sorted, unsorted", []bool{false, true, false}, false},
		{"sorted, unsorted, sorted, unsorted", []bool{true, false, true, false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textFieldsBundled(tt.sorted))
		})
	}
}
