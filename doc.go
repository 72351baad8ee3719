/*
Package mui is a small immediate-mode UI toolkit. Widgets draw straight into
a shared pixel canvas and repaint their region only when their interaction
status changes, so a frame where nothing happened costs no pixel writes.

A host owns a Screen bound to a Backend, calls its widgets every frame with
absolute geometry and then presents the canvas:

	ui, err := sui.Create(640, 480, sui.Windowed)
	if err != nil {
		log.Fatal(err)
	}
	screen, err := mui.NewScreen(ui, 640, 480)
	if err != nil {
		log.Fatal(err)
	}
	defer screen.Close()

	btn := mui.NewButton()
	for {
		if btn.Draw(screen, "Quit", 10, 10, 120, 40) == mui.Clicked {
			break
		}
		if key, err := screen.Show(mui.DefaultTimeout); err != nil || key == mui.KeyEscape {
			break
		}
	}

Nothing in the package is safe for concurrent use: widgets, the screen and
the backend must all be driven from one goroutine.
*/
package mui
