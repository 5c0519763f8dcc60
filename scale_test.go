package collage

import (
	"testing"

	"github.com/bodgit/collage/picture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name                      string
		sourceWidth, sourceHeight int
		targetWidth, targetHeight int
	}{
		{"identity", 8, 8, 8, 8},
		{"downsample", 40, 30, 7, 5},
		{"upsample", 3, 4, 13, 11},
		{"mixed", 20, 3, 6, 9},
		{"single pixel target", 5, 5, 1, 1},
	}

	marker := picture.RGB(1, 2, 3)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := gradient(t, tt.sourceWidth, tt.sourceHeight)
			orig := source.Clone()
			target := solid(t, tt.targetWidth, tt.targetHeight, marker)

			Scale(source, target)

			for tc := 0; tc < tt.targetWidth; tc++ {
				for tr := 0; tr < tt.targetHeight; tr++ {
					if tc == tt.targetWidth-1 || tr == tt.targetHeight-1 {
						assert.Equal(t, marker, target.Get(tc, tr), "(%d, %d)", tc, tr)
						continue
					}
					want := source.Get(tc*tt.sourceWidth/tt.targetWidth, tr*tt.sourceHeight/tt.targetHeight)
					assert.Equal(t, want, target.Get(tc, tr), "(%d, %d)", tc, tr)
				}
			}

			assert.True(t, orig.Equal(source))
		})
	}
}

func TestScaleLeavesLastRowAndColumnBlack(t *testing.T) {
	source := solid(t, 4, 4, picture.RGB(255, 255, 255))
	target, err := picture.New(4, 4)
	require.NoError(t, err)

	Scale(source, target)

	for i := 0; i < 4; i++ {
		assert.Equal(t, picture.RGB(0, 0, 0), target.Get(3, i))
		assert.Equal(t, picture.RGB(0, 0, 0), target.Get(i, 3))
	}
	assert.Equal(t, picture.RGB(255, 255, 255), target.Get(2, 2))
}
