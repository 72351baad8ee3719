package main

import (
	"image"
	"image/color"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/esimov/mui"
	"github.com/esimov/mui/utils"
	"github.com/pkg/errors"
)

// Size of the picture shown by the image label.
const (
	imgWidth  = 270
	imgHeight = 190
)

const namePlaceholder = "Enter your name!!"

// demo holds the widgets and the values they edit. Widgets are long
// lived so that each one only repaints when its status changes.
type demo struct {
	orig, img  image.Image
	brightness float64

	name     string
	checked  bool
	selected int
	rng      float64
	maxInput int

	label, labelEdit, labelMui *mui.Button
	btnDark, btnLight, btnExit *mui.Button
	imgLabel                   *mui.ImageLabel
	checkbox                   *mui.CheckBox
	male, female, animal       *mui.RadioBox
	rangebox                   *mui.RangeBox
	lineh, linev               *mui.Line
	keyboard                   *mui.Keyboard
	msgbox                     *mui.MessageBox
}

func newDemo(img image.Image, maxInput int) *demo {
	d := &demo{
		orig:      img,
		img:       img,
		name:      namePlaceholder,
		selected:  1,
		rng:       34,
		maxInput:  maxInput,
		label:     mui.NewLabel(),
		labelEdit: mui.NewLabel(),
		labelMui:  mui.NewLabel(),
		btnDark:   mui.NewButton(),
		btnLight:  mui.NewButton(),
		btnExit:   mui.NewButton(),
		imgLabel:  mui.NewImageLabel(),
		checkbox:  mui.NewCheckBox(),
		male:      mui.NewRadioBox(),
		female:    mui.NewRadioBox(),
		animal:    mui.NewRadioBox(),
		rangebox:  mui.NewRangeBox(),
		lineh:     mui.NewLine(),
		linev:     mui.NewLine(),
		keyboard:  mui.NewKeyboard(),
		msgbox:    mui.NewMessageBox(),
	}
	d.labelMui.Font.Size = mui.DefaultFontSize * 2.4
	d.labelMui.Disable(true)
	return d
}

// frame draws every widget once and reacts to their status. It reports
// whether the user asked to leave.
func (d *demo) frame(s *mui.Screen) (bool, error) {
	d.label.Draw(s, "I am Label, there is a picture!", 30, 30, imgWidth, 30)
	d.imgLabel.Draw(s, d.img, 30, 100, imgWidth, imgHeight)

	if d.btnDark.Draw(s, "Press me to darken the picture!", 30, 300, imgWidth, 30) == mui.Pressed {
		d.adjust(-1)
	}
	if d.btnLight.Draw(s, "Press me to light up the picture!", 30, 340, imgWidth, 30) == mui.Pressed {
		d.adjust(1)
	}

	if d.labelEdit.Draw(s, d.name, 30, 380, imgWidth, 30) == mui.Clicked {
		var input string
		if d.name != namePlaceholder {
			input = d.name
		}
		if _, err := d.keyboard.Draw(s, &input, 445, 300, 400, mui.KeyboardChar, d.maxInput); err != nil {
			return false, err
		}
		if input != "" {
			d.name = input
			d.labelEdit.Redraw()
		}
	}

	d.rangebox.Draw(s, &d.rng, 0, 100, 1, 30, 420, imgWidth, 25)
	d.checkbox.Draw(s, "One", &d.checked, 330, 300, 100, 25)
	d.male.Draw(s, "Male", 1, &d.selected, 330, 340, 100, 25)
	d.female.Draw(s, "Female", 2, &d.selected, 330, 380, 100, 25)
	d.animal.Draw(s, "Animal", 3, &d.selected, 330, 420, 100, 25)

	d.lineh.Draw(s, 1, 5, 535, 450, 535)
	d.linev.Draw(s, 1, 440, 5, 440, 545)
	d.labelMui.Draw(s, "MUI", 445, 10, 400, 100)

	if d.btnExit.Draw(s, "Exit", 330, 480, 80, 30) == mui.Clicked {
		st, err := d.msgbox.Draw(s, "Leave the demo?", 250, 200, 350, 150)
		if err != nil {
			return false, err
		}
		if st == mui.Clicked {
			return true, nil
		}
		d.btnExit.Redraw()
	}
	return false, nil
}

// adjust changes the picture brightness by step percent.
func (d *demo) adjust(step float64) {
	b := utils.Clamp(d.brightness+step, -100, 100)
	if b == d.brightness {
		return
	}
	d.brightness = b
	d.img = imaging.AdjustBrightness(d.orig, b)
	d.imgLabel.Redraw()
}

// run shows frames until Escape is pressed or the user leaves.
func (d *demo) run(s *mui.Screen, timeout time.Duration) error {
	for {
		quit, err := d.frame(s)
		if err != nil || quit {
			return err
		}
		key, err := s.Show(timeout)
		if err != nil {
			return err
		}
		if key == mui.KeyEscape {
			return nil
		}
	}
}

// loadImage opens a local file or downloads src when it is an URL. An
// empty src returns a generated gradient.
func loadImage(src string) (image.Image, error) {
	if src == "" {
		return gradient(imgWidth, imgHeight), nil
	}
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return nil, err
		}
		defer os.Remove(f.Name())
		defer f.Close()
		src = f.Name()
	}
	img, err := imaging.Open(src)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open the source image")
	}
	return imaging.Fit(img, imgWidth, imgHeight, imaging.Linear), nil
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 0x80,
				A: 0xff,
			})
		}
	}
	return img
}
