package overlay

import (
	"image"

	"github.com/pkg/errors"
)

// DilateSquare applies a morphological dilation with a k x k structuring
// element to each color channel and returns the result as a new image.
func DilateSquare(img *image.RGBA, k int) (*image.RGBA, error) {
	if k <= 0 || k%2 == 0 {
		return nil, errors.Errorf("structuring element size must be a positive odd number, got %d", k)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	radius := k / 2
	out := image.NewRGBA(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var maxR, maxG, maxB, maxA uint8
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					xx, yy := x+dx, y+dy
					if xx < 0 || yy < 0 || xx >= w || yy >= h {
						continue
					}
					i := img.PixOffset(xx, yy)
					maxR = maxU8(maxR, img.Pix[i])
					maxG = maxU8(maxG, img.Pix[i+1])
					maxB = maxU8(maxB, img.Pix[i+2])
					maxA = maxU8(maxA, img.Pix[i+3])
				}
			}
			i := out.PixOffset(x, y)
			out.Pix[i] = maxR
			out.Pix[i+1] = maxG
			out.Pix[i+2] = maxB
			out.Pix[i+3] = maxA
		}
	}
	return out, nil
}

// MaxComposite merges src into dst in place with a per-channel maximum on
// the color channels, leaving dst's alpha untouched, and returns dst.
func MaxComposite(dst, src *image.RGBA) (*image.RGBA, error) {
	if dst.Bounds() != src.Bounds() {
		return nil, errors.Errorf("image bounds do not match: %v vs %v", dst.Bounds(), src.Bounds())
	}
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = maxU8(dst.Pix[i], src.Pix[i])
		dst.Pix[i+1] = maxU8(dst.Pix[i+1], src.Pix[i+1])
		dst.Pix[i+2] = maxU8(dst.Pix[i+2], src.Pix[i+2])
	}
	return dst, nil
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
