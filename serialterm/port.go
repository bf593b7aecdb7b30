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

package serialterm

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/accelcircle/accelcircle/curated"
	"github.com/pkg/term"
)

// Sentinel errors for the serialterm package.
const (
	PortError = "serial port: %v"
)

// DefaultBaud is the baud rate of the UART on the board.
const DefaultBaud = 115200

// how long a read of the port waits before giving the monitor a chance to
// check for cancellation.
const readTimeout = 100 * time.Millisecond

// Port is a serial device opened in raw mode.
type Port struct {
	name string
	t    *term.Term
}

// OpenPort opens the named serial device at the baud rate.
func OpenPort(name string, baud int) (*Port, error) {
	t, err := term.Open(name, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(PortError, err)
	}

	if err := t.SetReadTimeout(readTimeout); err != nil {
		t.Close()
		return nil, curated.Errorf(PortError, err)
	}

	return &Port{name: name, t: t}, nil
}

func (p *Port) String() string {
	return p.name
}

// Read implements the io.Reader interface. A read that times out returns
// zero bytes and no error. A serial port never reaches the end of file.
func (p *Port) Read(b []byte) (int, error) {
	n, err := p.t.Read(b)
	if errors.Is(err, io.EOF) {
		return n, nil
	}
	if err != nil {
		return n, curated.Errorf(PortError, err)
	}
	return n, nil
}

// Close the port. The terminal attributes of the device are restored.
func (p *Port) Close() error {
	if err := p.t.Restore(); err != nil {
		p.t.Close()
		return curated.Errorf(PortError, err)
	}
	if err := p.t.Close(); err != nil {
		return curated.Errorf(PortError, err)
	}
	return nil
}

// Monitor copies bytes from the reader to the writer until the context is
// cancelled or the reader reaches the end of file. The writer will usually
// be a Framer.
func Monitor(ctx context.Context, src io.Reader, dest io.Writer) error {
	buf := make([]byte, 256)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dest.Write(buf[:n]); werr != nil {
				return werr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
