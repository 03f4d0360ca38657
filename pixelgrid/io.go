package pixelgrid

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned by Save for file extensions without an encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Load decodes the image at path (png, jpeg, gif, bmp, tiff or webp) into a grid.
func Load(path string) (*RGBGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %v: %w", path, err)
	}
	logrus.Debugf("Loaded %v image %v (%vx%v)", format, path, img.Bounds().Dx(), img.Bounds().Dy())
	return FromImage(img), nil
}

// Save encodes g to path, choosing the format from the file extension.
// The file is only created once the format is known to be supported.
func Save(g Grid, path string) error {
	encode, lossy, err := encoderFor(path)
	if err != nil {
		return err
	}
	if lossy {
		logrus.Warnf("%v is a lossy format, hidden low order bits will not survive", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = encode(f, ToImage(g))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("unable to encode %v: %w", path, err)
	}
	return nil
}

// CheckFormat reports ErrUnsupportedFormat when Save has no encoder for path.
func CheckFormat(path string) error {
	_, _, err := encoderFor(path)
	return err
}

type encoder func(w io.Writer, img image.Image) error

func encoderFor(path string) (enc encoder, lossy bool, err error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, false, nil
	case ".bmp":
		return bmp.Encode, false, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, false, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		}, true, nil
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
