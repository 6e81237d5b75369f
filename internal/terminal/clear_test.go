// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import "testing"

func TestPromptLines(t *testing.T) {
	tests := []struct {
		length, width, want int
	}{
		{length: 0, width: 80, want: 1},
		{length: 10, width: 80, want: 1},
		{length: 80, width: 80, want: 1},
		{length: 81, width: 80, want: 2},
		{length: 200, width: 0, want: 3},
	}

	for _, tt := range tests {
		if got := PromptLines(tt.length, tt.width); got != tt.want {
			t.Errorf("PromptLines(%d, %d) = %d, want %d", tt.length, tt.width, got, tt.want)
		}
	}
}
