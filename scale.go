package collage

import "github.com/bodgit/collage/picture"

// Scale resamples source onto target using nearest neighbour, truncating
// the proportional source coordinate. The last column and last row of
// target are left untouched. source is only read.
func Scale(source, target *picture.Picture) {
	width, height := target.Width(), target.Height()

	for targetCol := 0; targetCol < width-1; targetCol++ {
		for targetRow := 0; targetRow < height-1; targetRow++ {
			sourceCol := targetCol * source.Width() / width
			sourceRow := targetRow * source.Height() / height
			target.Set(targetCol, targetRow, source.Get(sourceCol, sourceRow))
		}
	}
}
