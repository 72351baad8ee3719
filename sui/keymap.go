package sui

// Keysyms with a fixed key code outside the printable Latin-1 range.
var specialKeysyms = map[uint32]int{
	0xff08: KeyBackspace,
	0xff09: KeyTab,
	0xff0d: KeyEnter,
	0xff8d: KeyEnter, // KP_Enter
	0xff1b: KeyEscape,
	0xffff: KeyDelete,
}

// legacyKeys maps evdev keycodes of a US layout straight to ASCII. It is
// used when the server did not hand out a keyboard mapping, or the mapping
// has no usable keysym for a keycode.
var legacyKeys = func() (lut [256]uint8) {
	for i := range lut {
		lut[i] = uint8(i)
	}
	rows := []struct {
		start int
		keys  string
	}{
		{10, "1234567890-="},
		{24, "qwertyuiop[]"},
		{38, "asdfghjkl;'`"},
		{51, `\zxcvbnm,./`},
	}
	for _, r := range rows {
		for i := 0; i < len(r.keys); i++ {
			lut[r.start+i] = r.keys[i]
		}
	}
	lut[9] = KeyEscape
	lut[22] = KeyBackspace
	lut[23] = KeyTab
	lut[36] = KeyEnter
	lut[50] = 16 // shift
	lut[62] = 16
	lut[65] = ' '
	return lut
}()

// keymap is the server keyboard mapping: keysyms holds perCode entries
// for every keycode starting at minCode.
type keymap struct {
	minCode byte
	perCode int
	keysyms []uint32
}

// lookup returns the key code for a hardware keycode, using the first
// keysym of the keycode.
func (m *keymap) lookup(code byte) int {
	if m != nil && m.perCode > 0 && code >= m.minCode {
		i := int(code-m.minCode) * m.perCode
		if i < len(m.keysyms) {
			if k, ok := keysymToKey(m.keysyms[i]); ok {
				return k
			}
		}
	}
	return int(legacyKeys[code])
}

func keysymToKey(sym uint32) (int, bool) {
	if sym >= 0x20 && sym <= 0x7e {
		return int(sym), true
	}
	k, ok := specialKeysyms[sym]
	return k, ok
}
