package machine

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitwidth/m6502/internal/memory"
)

// Image is a program image together with the address it runs at.
type Image struct {
	Code []byte
	Base uint16
}

// ReadImageFile reads a program image from disk.
//
// Supported formats:
//   - .prg: the first two bytes are a little-endian load address,
//     the rest is machine code
//   - anything else is treated as raw machine code running at the
//     default program base
func ReadImageFile(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("couldn't read the file: %s", err)
	}

	img := Image{Code: data, Base: memory.ProgramBase}
	if strings.EqualFold(filepath.Ext(path), ".prg") {
		if len(data) < 2 {
			return Image{}, fmt.Errorf("prg image is too short: %d bytes", len(data))
		}
		img.Base = binary.LittleEndian.Uint16(data)
		img.Code = data[2:]
	}

	if len(img.Code) == 0 {
		return Image{}, fmt.Errorf("image contains no code")
	}
	if int(img.Base)+len(img.Code) > memory.Size {
		return Image{}, fmt.Errorf("image of %d bytes doesn't fit at %04X", len(img.Code), img.Base)
	}
	return img, nil
}

// LoadImage loads an image at its own base address.
func (m *Machine) LoadImage(img Image) error {
	return m.LoadAt(img.Code, img.Base)
}
