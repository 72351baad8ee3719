package sui

import (
	"github.com/pkg/errors"
)

// maxDimension is the largest window side the X protocol can address
// with the signed 16 bit coordinates used by PutImage.
const maxDimension = 1<<15 - 1

// Image is the native frame buffer: 4 bytes per pixel laid out as
// B, G, R and an unused padding byte, which is what a 24 bit TrueColor
// ZPixmap looks like on a little-endian connection.
type Image struct {
	W, H   int
	Stride int
	Pix    []uint8
}

// NewImage allocates a native image of w×h pixels.
func NewImage(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	if w > maxDimension || h > maxDimension {
		return nil, errors.Wrapf(ErrAlloc, "%dx%d exceeds the protocol limit", w, h)
	}
	return &Image{
		W:      w,
		H:      h,
		Stride: 4 * w,
		Pix:    make([]uint8, 4*w*h),
	}, nil
}

// Fill sets every pixel to the given colour, leaving the padding bytes alone.
func (img *Image) Fill(b, g, r uint8) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = b
		img.Pix[i+1] = g
		img.Pix[i+2] = r
	}
}

// Copy converts src, a w×h buffer of the given number of channels whose
// rows are stride bytes apart, into the native layout. Single channel
// sources are treated as grayscale, three channel sources are copied
// triplet by triplet and four channel sources are already native.
// On error the image is left untouched.
func (img *Image) Copy(src []uint8, w, h, stride, channels int) error {
	if channels != 1 && channels != 3 && channels != 4 {
		return errors.Wrapf(ErrUnsupportedChannels, "got %d", channels)
	}
	if w <= 0 || h <= 0 {
		return ErrInvalidSize
	}
	if w != img.W || h != img.H {
		return errors.Wrapf(ErrSizeMismatch, "frame %dx%d, image %dx%d", w, h, img.W, img.H)
	}
	if stride < w*channels || len(src) < (h-1)*stride+w*channels {
		return ErrShortBuffer
	}

	switch channels {
	case 4:
		if stride == img.Stride {
			copy(img.Pix, src[:img.Stride*h])
			return nil
		}
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:(y+1)*img.Stride], src[y*stride:y*stride+img.Stride])
		}
	case 3:
		for y := 0; y < h; y++ {
			di := y * img.Stride
			si := y * stride
			for x := 0; x < w; x++ {
				img.Pix[di+0] = src[si+0]
				img.Pix[di+1] = src[si+1]
				img.Pix[di+2] = src[si+2]
				di += 4
				si += 3
			}
		}
	case 1:
		for y := 0; y < h; y++ {
			di := y * img.Stride
			si := y * stride
			for x := 0; x < w; x++ {
				v := src[si+x]
				img.Pix[di+0] = v
				img.Pix[di+1] = v
				img.Pix[di+2] = v
				di += 4
			}
		}
	}
	return nil
}

// Convert allocates a native image and fills it from src.
func Convert(src []uint8, w, h, stride, channels int) (*Image, error) {
	img, err := NewImage(w, h)
	if err != nil {
		return nil, err
	}
	if err := img.Copy(src, w, h, stride, channels); err != nil {
		return nil, err
	}
	return img, nil
}
