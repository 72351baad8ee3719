package preview

import (
	"image"
	"time"
	"unicode"
	"unicode/utf8"

	"gioui.org/io/key"
)

// Key codes returned by Show.
const (
	KeyNone      = -1
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyEscape    = 27
	KeyDelete    = 127
)

// Pointer event codes passed to the callback.
const (
	eventMouseMove = iota
	eventLButtonDown
	eventRButtonDown
	eventMButtonDown
	eventLButtonUp
	eventRButtonUp
	eventMButtonUp
)

const (
	flagLButton = 1
	flagRButton = 2
	flagMButton = 4
)

// Show hands the frame to the window and waits up to timeout for input.
// Pointer events go to the callback on the calling goroutine; the first
// key pressed is returned. Once the user closes the window Show reports
// KeyEscape.
func (p *Window) Show(pix []uint8, w, h, stride, channels int, timeout time.Duration) (int, error) {
	if p.destroyed {
		return KeyNone, ErrDestroyed
	}
	if w != p.w || h != p.h {
		return KeyNone, ErrSizeMismatch
	}
	img, err := toRGBA(pix, w, h, stride, channels)
	if err != nil {
		return KeyNone, err
	}

	// Keep only the newest frame.
	select {
	case <-p.frames:
	default:
	}
	p.frames <- img

	return p.wait(timeout), nil
}

func (p *Window) wait(timeout time.Duration) int {
	if timeout <= 0 {
		for {
			select {
			case in := <-p.inputs:
				if in.isKey {
					return in.key
				}
				p.cb(in.event, in.x, in.y, in.flag, p.data)
			case <-p.done:
				p.destroyed = true
				return KeyEscape
			default:
				return KeyNone
			}
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case in := <-p.inputs:
			if in.isKey {
				return in.key
			}
			p.cb(in.event, in.x, in.y, in.flag, p.data)
		case <-p.done:
			p.destroyed = true
			return KeyEscape
		case <-timer.C:
			return KeyNone
		}
	}
}

// translateKey maps a Gio key press to a key code. Letters follow the
// shift modifier; other printable names map to their first rune.
func translateKey(e key.Event) (int, bool) {
	if e.State != key.Press {
		return 0, false
	}
	switch e.Name {
	case key.NameEscape:
		return KeyEscape, true
	case key.NameReturn, key.NameEnter:
		return KeyEnter, true
	case key.NameDeleteBackward:
		return KeyBackspace, true
	case key.NameDeleteForward:
		return KeyDelete, true
	case key.NameTab:
		return KeyTab, true
	case key.NameSpace:
		return ' ', true
	}
	r, n := utf8.DecodeRuneInString(e.Name)
	if r == utf8.RuneError || n != len(e.Name) || r < 0x20 || r > 0x7e {
		return 0, false
	}
	if !e.Modifiers.Contain(key.ModShift) {
		r = unicode.ToLower(r)
	}
	return int(r), true
}

// toRGBA converts a BGR(X) or gray buffer to an RGBA image Gio can paint.
func toRGBA(pix []uint8, w, h, stride, channels int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, ErrUnsupportedChannels
	}
	if stride < w*channels || len(pix) < (h-1)*stride+w*channels {
		return nil, ErrShortBuffer
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := pix[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			d := dst[x*4 : x*4+4]
			switch channels {
			case 1:
				v := src[x]
				d[0], d[1], d[2] = v, v, v
			default:
				s := src[x*channels:]
				d[0], d[1], d[2] = s[2], s[1], s[0]
			}
			d[3] = 0xff
		}
	}
	return img, nil
}
