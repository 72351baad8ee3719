package mui

// MessageBox is a modal showing a message with an OK button.
type MessageBox struct {
	Panel Color

	label *Button
	ok    *Button
}

// NewMessageBox returns a message box with a yellow, larger message font.
func NewMessageBox() *MessageBox {
	label := NewLabel()
	label.Font.Color = 0xE3D567
	label.Font.Size = 20
	return &MessageBox{Panel: 0x161616, label: label, ok: NewButton()}
}

// Draw shows msg in the rectangle at x, y until OK is clicked, which
// returns Clicked, or Escape is pressed, which returns Idle. The covered
// part of the screen is restored before Draw returns.
func (m *MessageBox) Draw(s *Screen, msg string, x, y, w, h int) (Status, error) {
	roi := Rect(x, y, w, h)
	m.label.Reset()
	m.ok.Reset()

	ov := s.Canvas.Overlay(roi)
	defer ov.Restore()
	fillRect(s.Canvas.Region(roi), Rect(x+2, y+2, w-4, 143), m.Panel)

	for {
		m.label.Draw(s, msg, x+3, y+3, w-6, 60)
		if m.ok.Draw(s, "OK", x+3, y+83, w-6, 60) == Clicked {
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
