package structures

import "fmt"

// PLC (Plex) is a common structure in .doc files. It is an array of
// Character Positions (CPs) followed by an array of data elements.
// The number of CPs is always one more than the number of data elements.
type PLC struct {
	CPs      []CP
	Data     [][]byte // Generic representation of data elements
	dataSize int
}

// ParsePLC parses a PLC from raw bytes. A PLC of n data elements, each
// dataSize bytes, is laid out as (n+1) 4-byte CPs followed by n
// dataSize-byte elements, so len(data) must equal (n+1)*4 + n*dataSize
// for some non-negative n.
func ParsePLC(data []byte, dataSize int) (*PLC, error) {
	if dataSize <= 0 {
		return nil, fmt.Errorf("plc: invalid element size %d", dataSize)
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("plc: data too short for a single CP")
	}

	// len(data) = (n+1)*4 + n*dataSize  =>  n = (len(data)-4) / (4+dataSize)
	remainder := len(data) - 4
	stride := 4 + dataSize
	if remainder%stride != 0 {
		return nil, fmt.Errorf("plc: data size %d is not consistent with element size %d", len(data), dataSize)
	}
	n := remainder / stride

	plc := &PLC{
		CPs:      make([]CP, n+1),
		Data:     make([][]byte, n),
		dataSize: dataSize,
	}

	for i := 0; i <= n; i++ {
		off := i * 4
		plc.CPs[i] = CP(uint32(data[off]) | uint32(data[off+1])<<8 | uint32(data[off+2])<<16 | uint32(data[off+3])<<24)
	}

	dataStart := (n + 1) * 4
	for i := 0; i < n; i++ {
		off := dataStart + i*dataSize
		elem := make([]byte, dataSize)
		copy(elem, data[off:off+dataSize])
		plc.Data[i] = elem
	}

	return plc, nil
}

// Count returns the number of data elements (one fewer than the number
// of CPs).
func (p *PLC) Count() int {
	return len(p.Data)
}

// Validate checks the PLC's internal consistency: one more CP than data
// element, and non-decreasing CPs.
func (p *PLC) Validate() error {
	if len(p.CPs) != len(p.Data)+1 {
		return fmt.Errorf("plc: expected %d CPs for %d data elements, got %d", len(p.Data)+1, len(p.Data), len(p.CPs))
	}
	for i := 1; i < len(p.CPs); i++ {
		if p.CPs[i] < p.CPs[i-1] {
			return fmt.Errorf("plc: CPs not non-decreasing at index %d", i)
		}
	}
	return nil
}

// GetRange returns the [start, end) character range covered by the
// data element at index.
func (p *PLC) GetRange(index int) (start, end CP, err error) {
	if index < 0 || index >= len(p.Data) {
		return 0, 0, fmt.Errorf("plc: invalid index %d", index)
	}
	return p.CPs[index], p.CPs[index+1], nil
}

// GetDataAt returns the raw data element at index.
func (p *PLC) GetDataAt(index int) ([]byte, error) {
	if index < 0 || index >= len(p.Data) {
		return nil, fmt.Errorf("plc: invalid index %d", index)
	}
	return p.Data[index], nil
}
