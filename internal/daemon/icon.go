//go:build windows
// +build windows

package daemon

import (
	"bytes"
	"encoding/binary"
)

// getCalendarIcon builds a 16x16 ICO in memory: a dark blue square with a
// lighter header band, enough to be recognizable in the tray without
// shipping an asset file.
func getCalendarIcon() []byte {
	const size = 16

	var buf bytes.Buffer

	// ICONDIR
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // type: icon
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // one image

	imageSize := 40 + size*size*4 + size*4 // header + pixels + AND mask

	// ICONDIRENTRY
	buf.WriteByte(size)                                        // width
	buf.WriteByte(size)                                        // height
	buf.WriteByte(0)                                           // colors
	buf.WriteByte(0)                                           // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1))         // planes
	binary.Write(&buf, binary.LittleEndian, uint16(32))        // bpp
	binary.Write(&buf, binary.LittleEndian, uint32(imageSize)) // data size
	binary.Write(&buf, binary.LittleEndian, uint32(22))        // data offset

	// BITMAPINFOHEADER (height doubled for the AND mask)
	binary.Write(&buf, binary.LittleEndian, uint32(40))
	binary.Write(&buf, binary.LittleEndian, int32(size))
	binary.Write(&buf, binary.LittleEndian, int32(size*2))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(32))
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	binary.Write(&buf, binary.LittleEndian, uint32(size*size*4))
	binary.Write(&buf, binary.LittleEndian, int32(0))
	binary.Write(&buf, binary.LittleEndian, int32(0))
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	// Pixels, bottom-up, BGRA
	for y := size - 1; y >= 0; y-- {
		for x := 0; x < size; x++ {
			if y < 4 { // header band (top of the icon)
				buf.Write([]byte{0x28, 0x28, 0xc6, 0xff}) // red
			} else {
				buf.Write([]byte{0xc0, 0x65, 0x15, 0xff}) // blue
			}
		}
	}

	// AND mask: fully opaque
	buf.Write(make([]byte, size*4))

	return buf.Bytes()
}
