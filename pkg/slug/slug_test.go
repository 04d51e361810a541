// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lequocan/ladle/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Beef Pho", "beef-pho"},
		{"diacritics_stripped", "Crème Brûlée", "creme-brulee"},
		{"punctuation_collapsed", "Mac & Cheese!!", "mac-cheese"},
		{"extra_whitespace", "  Garlic   Bread  ", "garlic-bread"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.in))
		})
	}
}
