// This file is part of accelcircle.
//
// accelcircle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// accelcircle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with accelcircle.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlscreen displays the simulated OLED panel in an SDL window.
//
// SDL requires that window creation and event handling happen in the main
// thread. The Screen type is therefore created through the creator channel of
// the main program and its Service() function is called repeatedly from the
// main thread. Pixels arrive from the simulation goroutine through the
// oled.PixelRenderer interface.
package sdlscreen

import (
	"fmt"
	"io"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/hardware/peripherals/oled"
	"github.com/accelcircle/accelcircle/logger"
)

const windowTitle = "accelcircle"

const pixelDepth = 4

// Event is sent by the Screen in response to user input.
type Event int

// List of valid Event values.
const (
	EventQuit Event = iota
	EventPause
	EventScreenshot
)

func (ev Event) String() string {
	switch ev {
	case EventQuit:
		return "quit"
	case EventPause:
		return "pause"
	case EventScreenshot:
		return "screenshot"
	}
	return "unknown"
}

// Screen is an SDL window showing the contents of the panel.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels are written by the simulation goroutine and copied to the
	// texture in the main thread
	crit   sync.Mutex
	pixels []byte
	dirty  bool
	frame  int

	events chan Event
}

// NewScreen is the preferred method of initialisation for the Screen type.
// Each panel pixel is drawn as a square of scale window pixels.
//
// MUST ONLY be called from the #mainthread
func NewScreen(scale int) (*Screen, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &Screen{
		pixels: make([]byte, oled.Width*oled.Height*pixelDepth),
		events: make(chan Event, 16),
	}

	// panel is black and opaque at power on
	for i := 3; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 0xff
	}
	scr.dirty = true

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	// MOUSEMOTION events fill up the event queue and we have no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(oled.Width*scale), int32(oled.Height*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	// the renderer scales the panel to the size of the window
	err = scr.renderer.SetLogicalSize(oled.Width, oled.Height)
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), oled.Width, oled.Height)
	if err != nil {
		scr.Destroy(io.Discard)
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	return scr, nil
}

// Events returns the channel on which user input is sent.
func (scr *Screen) Events() <-chan Event {
	return scr.events
}

// send event without blocking. events are dropped if nobody is listening.
func (scr *Screen) send(ev Event) {
	select {
	case scr.events <- ev:
	default:
	}
}

// Destroy implements the GuiCreator interface.
func (scr *Screen) Destroy(output io.Writer) {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
		scr.texture = nil
	}

	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
		scr.renderer = nil
	}

	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
		scr.window = nil
	}

	sdl.Quit()
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *Screen) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(EventQuit)

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue // for loop
			}

			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				scr.send(EventQuit)
			case sdl.K_SPACE, sdl.K_p:
				scr.send(EventPause)
			case sdl.K_s, sdl.K_F12:
				scr.send(EventScreenshot)
			}
		}
	}

	if err := scr.update(); err != nil {
		logger.Log(logger.Allow, "sdlscreen", err)
	}
}

// copy pixels to the texture and present
func (scr *Screen) update() error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if !scr.dirty {
		return nil
	}
	scr.dirty = false

	pix, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	for y := 0; y < oled.Height; y++ {
		copy(pix[y*pitch:], scr.pixels[y*oled.Width*pixelDepth:(y+1)*oled.Width*pixelDepth])
	}
	scr.texture.Unlock()

	scr.window.SetTitle(fmt.Sprintf("%s [%d]", windowTitle, scr.frame))

	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	scr.renderer.Present()

	return nil
}

// NewFrame implements the oled.PixelRenderer interface.
func (scr *Screen) NewFrame(frameNum int) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.frame = frameNum
	scr.dirty = true
	return nil
}

// SetPixel implements the oled.PixelRenderer interface.
func (scr *Screen) SetPixel(x, y int, red, green, blue byte) error {
	if x < 0 || x >= oled.Width || y < 0 || y >= oled.Height {
		return curated.Errorf("sdlscreen: pixel out of range (%d, %d)", x, y)
	}

	scr.crit.Lock()
	defer scr.crit.Unlock()

	i := (y*oled.Width + x) * pixelDepth
	scr.pixels[i] = red
	scr.pixels[i+1] = green
	scr.pixels[i+2] = blue
	scr.pixels[i+3] = 0xff

	return nil
}

// EndRendering implements the oled.PixelRenderer interface.
func (scr *Screen) EndRendering() error {
	return nil
}
