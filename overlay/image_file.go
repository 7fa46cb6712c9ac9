package overlay

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// WriteImageToFile saves an image to the given path, with the format
// chosen by the file extension.
func WriteImageToFile(path string, img image.Image) error {
	return errors.Wrapf(imaging.Save(img, path), "cannot save image to %q", path)
}

// ReadImageFromFile loads an image from the given path.
func ReadImageFromFile(path string) (*image.RGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open image %q", path)
	}
	return ConvertImage(img), nil
}
