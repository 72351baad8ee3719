package mui

import (
	"unicode/utf8"
)

// KeyboardKind selects which keys of the on-screen keyboard are enabled.
type KeyboardKind int

const (
	KeyboardFull KeyboardKind = iota
	// KeyboardChar disables the digit row.
	KeyboardChar
	// KeyboardNum disables every letter and symbol key.
	KeyboardNum
)

// DefaultMaxLen is the longest text the keyboard accepts when no limit is
// given.
const DefaultMaxLen = 32

type keyRole int

const (
	keyChar keyRole = iota
	keyDelete
	keyEnter
)

type keyCap struct {
	row, col int
	label    string
	role     keyRole
}

// keyboardLayout lists the 40 keys in the order they are drawn.
var keyboardLayout = func() []keyCap {
	rows := []string{"1234567890", "QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM_@"}
	var keys []keyCap
	for r, row := range rows {
		for c, ch := range row {
			keys = append(keys, keyCap{row: r, col: c, label: string(ch), role: keyChar})
		}
		switch r {
		case 2:
			keys = append(keys, keyCap{row: r, col: 9, label: "Del", role: keyDelete})
		case 3:
			keys = append(keys, keyCap{row: r, col: 9, label: "En", role: keyEnter})
		}
	}
	return keys
}()

func (k KeyboardKind) disables(key keyCap) bool {
	if key.role != keyChar {
		return false
	}
	switch k {
	case KeyboardChar:
		return key.row == 0
	case KeyboardNum:
		return key.row > 0
	}
	return false
}

// Keyboard is a modal on-screen keyboard editing a line of text.
type Keyboard struct {
	Color Color

	label *Button
	keys  []*Button
}

// NewKeyboard returns a keyboard with the default dark colors.
func NewKeyboard() *Keyboard {
	c := Color(0x23252C)
	label := NewLabel()
	label.Palette = Flat(c.Add(-10), label.Palette.Disabled)

	keys := make([]*Button, len(keyboardLayout))
	for i := range keys {
		keys[i] = NewButton()
	}
	return &Keyboard{Color: c, label: label, keys: keys}
}

func (k *Keyboard) reset() {
	k.label.Reset()
	for _, b := range k.keys {
		b.Reset()
	}
}

// Draw runs the keyboard at x, y with width w until the En key or Escape
// is pressed. Text is edited on a copy of *input which is written back
// only by En, in which case Draw returns Clicked; Escape returns Idle.
// Clicking the text line clears it. The covered part of the screen is
// restored before Draw returns.
func (k *Keyboard) Draw(s *Screen, input *string, x, y, w int, kind KeyboardKind, maxLen int) (Status, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	gap := int(float64(w) * 0.01)
	size := int(float64(w+gap)*0.1 - float64(gap))
	roi := Rect(x, y, 10*(size+gap)-gap+2, 5*(size+gap)-2*gap+2)

	ov := s.Canvas.Overlay(roi)
	defer ov.Restore()
	s.Canvas.Region(roi).Fill(k.Color)

	startX, startY := roi.Min.X+1, roi.Min.Y+1
	text := *input
	k.reset()

	for {
		if k.label.Draw(s, text, startX, startY, roi.Dx()-2, size) == Clicked {
			text = ""
			k.label.Redraw()
		}

		entered := false
		for i, key := range keyboardLayout {
			b := k.keys[i]
			b.Disable(kind.disables(key))
			px := startX + key.col*(size+gap)
			py := startY + size + key.row*(size+gap)
			if b.Draw(s, key.label, px, py, size, size) != Clicked {
				continue
			}
			switch key.role {
			case keyChar:
				if utf8.RuneCountInString(text) < maxLen {
					text += key.label
					k.label.Redraw()
				}
			case keyDelete:
				if text != "" {
					_, n := utf8.DecodeLastRuneInString(text)
					text = text[:len(text)-n]
					k.label.Redraw()
				}
			case keyEnter:
				entered = true
			}
		}
		if entered {
			*input = text
			return Clicked, nil
		}

		key, err := s.Show(DefaultTimeout)
		if err != nil {
			return Idle, err
		}
		if key == KeyEscape {
			return Idle, nil
		}
	}
}
