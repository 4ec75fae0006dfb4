package fib

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ParseFIB reads a byte slice (from the WordDocument stream)
// and parses it into a FileInformationBlock struct.
func ParseFIB(data []byte) (*FileInformationBlock, error) {
	if len(data) < 32 { // Minimum size for FibBase
		return nil, errors.New("fib: data too short for FibBase")
	}

	r := bytes.NewReader(data)
	fib := &FileInformationBlock{}

	// Read the fixed-size FibBase
	if err := binary.Read(r, binary.LittleEndian, &fib.Base); err != nil {
		return nil, fmt.Errorf("fib: could not read FibBase: %w", err)
	}

	// Validate Word document identifier
	if fib.Base.WIdent != 0xA5EC {
		return nil, errors.New("fib: invalid wIdent, not a Word document")
	}

	// Move the reader back to the start to parse the whole structure
	r.Seek(0, 0)

	if err := binary.Read(r, binary.LittleEndian, &fib.Base); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &fib.Csw); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &fib.FibRgW); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &fib.Cslw); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &fib.FibRgLw); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &fib.CbRgFcLcb); err != nil {
		return nil, err
	}

	// Read the variable-length FibRgFcLcb
	// CbRgFcLcb is a count of 64-bit values (8 bytes).
	blobSize := int(fib.CbRgFcLcb) * 8
	if r.Len() < blobSize {
		return nil, fmt.Errorf("fib: data too short for RgFcLcbBlob, expected %d bytes, have %d", blobSize, r.Len())
	}
	fib.RgFcLcbBlob = make([]byte, blobSize)
	if _, err := r.Read(fib.RgFcLcbBlob); err != nil {
		return nil, fmt.Errorf("fib: could not read RgFcLcbBlob: %w", err)
	}

	// Parse known fields from RgFcLcbBlob for text extraction.
	// For nFib=0x00C1 (Word 97), the FibRgFcLcb97 structure is used.
	// Offsets below are fixed by the Word 97 FIB layout.
	readPair := func(offset int) (fc, lcb uint32, ok bool) {
		if len(fib.RgFcLcbBlob) < offset+8 {
			return 0, 0, false
		}
		return binary.LittleEndian.Uint32(fib.RgFcLcbBlob[offset:]),
			binary.LittleEndian.Uint32(fib.RgFcLcbBlob[offset+4:]), true
	}

	if fc, lcb, ok := readPair(0x030); ok {
		fib.RgFcLcb.FcPlcfsed, fib.RgFcLcb.LcbPlcfsed = fc, lcb
	}
	if fc, lcb, ok := readPair(0x058); ok {
		fib.RgFcLcb.FcPlcfhdd, fib.RgFcLcb.LcbPlcfhdd = fc, lcb
	}
	if fc, lcb, ok := readPair(0x060); ok {
		fib.RgFcLcb.FcPlcfbteChpx, fib.RgFcLcb.LcbPlcfbteChpx = fc, lcb
	}
	if fc, lcb, ok := readPair(0x068); ok {
		fib.RgFcLcb.FcPlcfbtePapx, fib.RgFcLcb.LcbPlcfbtePapx = fc, lcb
	}
	if fc, lcb, ok := readPair(0x078); ok {
		fib.RgFcLcb.FcSttbfffn, fib.RgFcLcb.LcbSttbfffn = fc, lcb
	}
	if fc, lcb, ok := readPair(0x0F8); ok {
		fib.RgFcLcb.FcDop, fib.RgFcLcb.LcbDop = fc, lcb
	}
	if fc, lcb, ok := readPair(0x108); ok {
		fib.RgFcLcb.FcClx, fib.RgFcLcb.LcbClx = fc, lcb
	}

	return fib, nil
}
