package sui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_ThreeChannelRoundTrip(t *testing.T) {
	const w, h = 3, 2
	src := make([]uint8, w*h*3)
	for i := range src {
		src[i] = uint8(10 + i)
	}
	img, err := Convert(src, w, h, w*3, 3)
	require.NoError(t, err)
	assert.Equal(t, 4*w, img.Stride)

	back := make([]uint8, 0, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + 4*x
			back = append(back, img.Pix[i:i+3]...)
		}
	}
	assert.Equal(t, src, back)
}

func TestCopy_ThreeChannelKeepsPadding(t *testing.T) {
	img, err := NewImage(1, 1)
	require.NoError(t, err)
	img.Pix[3] = 0xAB

	require.NoError(t, img.Copy([]uint8{1, 2, 3}, 1, 1, 3, 3))
	assert.Equal(t, []uint8{1, 2, 3, 0xAB}, img.Pix)
}

func TestConvert_GrayReplicates(t *testing.T) {
	src := []uint8{
		7, 8, 0xFF, // padded row
		9, 10, 0xFF,
	}
	img, err := Convert(src, 2, 2, 3, 1)
	require.NoError(t, err)

	for i, v := range []uint8{7, 8, 9, 10} {
		px := img.Pix[4*i : 4*i+3]
		assert.Equal(t, []uint8{v, v, v}, px)
	}
}

func TestConvert_FourChannel(t *testing.T) {
	tight := []uint8{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	img, err := Convert(tight, 2, 2, 8, 4)
	require.NoError(t, err)
	assert.Equal(t, tight, img.Pix)

	padded := []uint8{
		1, 2, 3, 4, 5, 6, 7, 8, 0, 0,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	img, err = Convert(padded, 2, 2, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, tight, img.Pix)
}

func TestCopy_Errors(t *testing.T) {
	img, err := NewImage(2, 2)
	require.NoError(t, err)
	img.Fill(0x2C, 0x2C, 0x2C)
	before := append([]uint8(nil), img.Pix...)

	assert.ErrorIs(t, img.Copy(make([]uint8, 8), 2, 2, 4, 2), ErrUnsupportedChannels)
	assert.ErrorIs(t, img.Copy(make([]uint8, 27), 3, 3, 9, 3), ErrSizeMismatch)
	assert.ErrorIs(t, img.Copy(make([]uint8, 11), 2, 2, 6, 3), ErrShortBuffer)
	assert.ErrorIs(t, img.Copy(make([]uint8, 12), 2, 2, 5, 3), ErrShortBuffer)
	assert.Equal(t, before, img.Pix, "failed copies leave the image untouched")

	_, err = Convert(nil, 0, 2, 0, 3)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNewImage_Limits(t *testing.T) {
	_, err := NewImage(-1, 5)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewImage(5, maxDimension+1)
	assert.ErrorIs(t, err, ErrAlloc)

	img, err := NewImage(2, 1)
	require.NoError(t, err)
	img.Fill(1, 2, 3)
	assert.Equal(t, []uint8{1, 2, 3, 0, 1, 2, 3, 0}, img.Pix)
}
