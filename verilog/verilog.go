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

package verilog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/accelcircle/accelcircle/curated"
)

// Sentinal errors returned by Convert().
const (
	NoDataSection = "verilog: no DATA line in hex file"
	BadWord       = "verilog: line %d: invalid word (%s)"
	TooManyWords  = "verilog: %s has %d words but only %d slots"
)

// the line that separates instruction words from data constants.
const dataMarker = "DATA"

// Memory describes the memories the module initialises.
type Memory struct {
	InstrName string
	DataName  string

	// number of slots in each memory
	Slots int
}

// DefaultMemory returns the memory layout of the SoC.
func DefaultMemory() Memory {
	return Memory{
		InstrName: "INSTR_MEM",
		DataName:  "DATA_CONST_MEM",
		Slots:     128,
	}
}

// Image is the content of a hex file split into its two sections.
type Image struct {
	Instr []uint32
	Data  []uint32
}

// Parse a hex file.
func Parse(r io.Reader) (Image, error) {
	var img Image

	data := false
	found := false

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue // for loop
		}

		// only the first marker starts the data section
		if s == dataMarker && !found {
			found = true
			data = true
			continue // for loop
		}

		if len(s) > 8 {
			return Image{}, curated.Errorf(BadWord, n, s)
		}
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Image{}, curated.Errorf(BadWord, n, s)
		}

		if data {
			img.Data = append(img.Data, uint32(v))
		} else {
			img.Instr = append(img.Instr, uint32(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return Image{}, curated.Errorf("verilog: %v", err)
	}

	if !found {
		return Image{}, curated.Errorf(NoDataSection)
	}

	return img, nil
}

// Write the initialisation module for the image.
func (img Image) Write(w io.Writer, mem Memory) error {
	if len(img.Instr) > mem.Slots {
		return curated.Errorf(TooManyWords, mem.InstrName, len(img.Instr), mem.Slots)
	}
	if len(img.Data) > mem.Slots {
		return curated.Errorf(TooManyWords, mem.DataName, len(img.Data), mem.Slots)
	}

	s := &strings.Builder{}
	s.WriteString("module memory_initialization;\n")
	s.WriteString("integer i;\n\n")
	s.WriteString("// Instruction Memory Initialization\n")
	assignments(s, mem.InstrName, img.Instr, mem.Slots)
	s.WriteString("\n\n")
	s.WriteString("// Data Constant Memory Initialization\n")
	assignments(s, mem.DataName, img.Data, mem.Slots)
	s.WriteString("\nendmodule")

	if _, err := io.WriteString(w, s.String()); err != nil {
		return curated.Errorf("verilog: %v", err)
	}
	return nil
}

// one assignment per word followed by a loop clearing the remaining slots.
// lines are separated, not terminated, by newlines.
func assignments(s *strings.Builder, name string, words []uint32, slots int) {
	var lines []string
	for i, v := range words {
		lines = append(lines, fmt.Sprintf("\t%s[%d] = 32'h%08x;", name, i, v))
	}
	if len(words) < slots {
		lines = append(lines,
			fmt.Sprintf("\tfor (i = %d; i < %d; i = i + 1) begin", len(words), slots),
			fmt.Sprintf("\t\t%s[i] = 32'h0;", name),
			"\tend")
	}
	s.WriteString(strings.Join(lines, "\n"))
}

// Convert reads a hex file and writes the initialisation module.
func Convert(r io.Reader, w io.Writer, mem Memory) error {
	img, err := Parse(r)
	if err != nil {
		return err
	}
	return img.Write(w, mem)
}
