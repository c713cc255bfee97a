package intelhex

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Structure with high level editor over one parsed IntelHex image. Addresses
// and data payloads are accepted in textual hexadecimal form with optional
// 0x prefix, case insensitive.
type Editor struct {
	mem *Memory
}

// Constructor of Editor structure, parses the whole IntelHex data from reader
func NewEditor(reader io.Reader) (*Editor, error) {
	m := NewMemory()
	err := m.ParseIntelHex(reader)
	if err != nil {
		return nil, err
	}
	return &Editor{mem: m}, nil
}

// Method to getting underlying memory of editor
func (e *Editor) Memory() *Memory {
	return e.mem
}

// Method to getting start address of edited image in 0x prefixed form
func (e *Editor) StartAddress() string {
	adr, _ := e.mem.GetStartAddress()
	return fmt.Sprintf("0x%08X", adr)
}

// Method to getting total length of the occupied memory block in bytes, from
// the lowest to the highest present address, gaps included
func (e *Editor) Length() uint32 {
	segs := e.mem.GetDataSegments()
	if len(segs) == 0 {
		return 0
	}
	first := segs[0]
	last := segs[len(segs)-1]
	return last.Address + uint32(len(last.Data)) - first.Address
}

// Method to reading memory content from the given textual address. Read data
// is returned as an uppercase hex string. Reading addresses absent from the
// image fails with RANGE_ERROR.
func (e *Editor) Read(address string, size uint32) (string, error) {
	adr, err := ParseAddress(address)
	if err != nil {
		return "", err
	}
	data, err := e.mem.GetBinary(adr, size)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(data)), nil
}

// Method to writing textual data to memory at the given textual address.
// Empty data writes nothing.
func (e *Editor) Write(address string, data string) error {
	adr, err := ParseAddress(address)
	if err != nil {
		return err
	}
	bytes, err := parseDataBytes(data)
	if err != nil {
		return newAccessError(VALUE_ERROR, err.Error(), adr)
	}
	e.mem.SetBinary(adr, bytes)
	return nil
}

// Method to saving edited memory as IntelHex data
func (e *Editor) Save(writer io.Writer, lineLength byte) error {
	return e.mem.DumpIntelHex(writer, lineLength)
}
