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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/accelcircle/accelcircle/hardware/peripherals/oled"
)

// Video is an implementation of the oled.PixelRenderer interface. It is also
// an io.Writer and should be attached to the UART sink so that serial output
// is included in the digest.
type Video struct {
	digest [sha1.Size]byte

	// the head of the pixels array is reserved for the previous digest
	pixels []byte

	// serial bytes since the start of the frame
	serial []byte

	frameNum int
}

const pixelDepth = 3

// VideoError is the sentinel error for problems with the video digest.
const VideoError = "video digest: %v"

// NewVideo initialises a new instance of Video. The Video is added as a
// renderer of the panel. The panel argument can be nil, in which case the
// caller is responsible for forwarding pixels.
func NewVideo(pnl *oled.Panel) *Video {
	dig := &Video{
		pixels: make([]byte, sha1.Size+oled.Width*oled.Height*pixelDepth),
		serial: make([]byte, 0, 64),
	}

	if pnl != nil {
		pnl.AddPixelRenderer(dig)
	}

	return dig
}

// Hash implements digest.Digest interface.
func (dig Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.serial = dig.serial[:0]
}

// Frame returns the number of the most recent frame to be included in the
// digest.
func (dig *Video) Frame() int {
	return dig.frameNum
}

// Write implements the io.Writer interface.
func (dig *Video) Write(p []byte) (int, error) {
	dig.serial = append(dig.serial, p...)
	return len(p), nil
}

// NewFrame implements the oled.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf(VideoError, "digest error during new frame")
	}

	h := sha1.New()
	h.Write(dig.pixels)
	h.Write(dig.serial)
	copy(dig.digest[:], h.Sum(nil))

	dig.serial = dig.serial[:0]
	dig.frameNum = frameNum

	return nil
}

// SetPixel implements the oled.PixelRenderer interface.
func (dig *Video) SetPixel(x, y int, red, green, blue byte) error {
	if x < 0 || x >= oled.Width || y < 0 || y >= oled.Height {
		return curated.Errorf(VideoError, fmt.Sprintf("pixel out of range (%d, %d)", x, y))
	}

	// preserve the first few bytes for a chained fingerprint
	i := len(dig.digest)
	i += (y*oled.Width + x) * pixelDepth

	dig.pixels[i] = red
	dig.pixels[i+1] = green
	dig.pixels[i+2] = blue

	return nil
}

// EndRendering implements the oled.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
