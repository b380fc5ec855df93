// internal/export/ico.go
package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"unfold-icons/internal/config"
)

// icoHeaderSize and icoEntrySize are fixed by the ICO file format:
// a 6-byte ICONDIR followed by one 16-byte ICONDIRENTRY per image.
const (
	icoHeaderSize = 6
	icoEntrySize  = 16
)

// ExportICO bundles the given renditions into a single icon.ico in the
// output directory. Entries are stored PNG-compressed, which every modern
// ICO consumer accepts.
func (e *Exporter) ExportICO(renditions map[int]image.Image, sizes []int) error {
	path := filepath.Join(e.OutDir, config.ICOFileName)

	blobs := make([][]byte, 0, len(sizes))
	for _, size := range sizes {
		img, ok := renditions[size]
		if !ok {
			return fmt.Errorf("encode %s: no %dpx rendition", path, size)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("encode %s: %dpx entry: %w", path, size, err)
		}
		blobs = append(blobs, buf.Bytes())
	}

	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(&out, binary.LittleEndian, uint16(1)) // type: icon
	binary.Write(&out, binary.LittleEndian, uint16(len(sizes)))

	offset := uint32(icoHeaderSize + icoEntrySize*len(sizes))
	for i, size := range sizes {
		// width/height bytes; 0 means 256
		dim := byte(size)
		if size >= 256 {
			dim = 0
		}
		out.WriteByte(dim)
		out.WriteByte(dim)
		out.WriteByte(0) // no palette
		out.WriteByte(0) // reserved
		binary.Write(&out, binary.LittleEndian, uint16(1))  // color planes
		binary.Write(&out, binary.LittleEndian, uint16(32)) // bits per pixel
		binary.Write(&out, binary.LittleEndian, uint32(len(blobs[i])))
		binary.Write(&out, binary.LittleEndian, offset)
		offset += uint32(len(blobs[i]))
	}
	for _, blob := range blobs {
		out.Write(blob)
	}

	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("wrote %s", path)
	return nil
}
