package intelhex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// Default number of data bytes in one emitted data record
const DefaultLineLength byte = 32

// Structure with binary data segment fields
type DataSegment struct {
	Address uint32 // Starting address of data segment
	Data    []byte // Data segment bytes
}

// Helper type for memory addresses sorting operations
type sortByAddress []uint32

func (adrs sortByAddress) Len() int           { return len(adrs) }
func (adrs sortByAddress) Swap(i, j int)      { adrs[i], adrs[j] = adrs[j], adrs[i] }
func (adrs sortByAddress) Less(i, j int) bool { return adrs[i] < adrs[j] }

// Main structure with private fields of IntelHex parser. Memory data is kept
// in a sparse address to byte map: addresses never written are absent, not
// zero.
type Memory struct {
	data            map[uint32]byte // Sparse map with memory data bytes
	startAddress    uint32          // Start linear address
	startFlag       bool            // Start address exist flag
	extendedAddress uint32          // Extended linear address
	eofFlag         bool            // End of file record exist flag
	lineNum         uint            // Parser input line number
}

// Constructor of Memory structure
func NewMemory() *Memory {
	m := new(Memory)
	m.Clear()
	return m
}

// Method to getting start address from IntelHex data
func (m *Memory) GetStartAddress() (adr uint32, ok bool) {
	if m.startFlag {
		return m.startAddress, true
	}
	return 0, false
}

// Method to setting start address to IntelHex data
func (m *Memory) SetStartAddress(adr uint32) {
	m.startAddress = adr
	m.startFlag = true
}

// Method to getting data segments from IntelHex data. Segments are maximal
// contiguous runs of present addresses, sorted ascending, copied out of the
// internal map.
func (m *Memory) GetDataSegments() []DataSegment {
	return m.segments(m.sortedAddresses())
}

func (m *Memory) Clear() {
	m.startAddress = 0
	m.extendedAddress = 0
	m.lineNum = 0
	m.data = map[uint32]byte{}
	m.startFlag = false
	m.eofFlag = false
}

// Method to writing binary data to memory. Bytes are copied into the map at
// [adr, adr+len(bytes)), overwriting any previous values. Writing into absent
// addresses extends the sparse image, so this method always succeeds.
func (m *Memory) SetBinary(adr uint32, bytes []byte) {
	for i, b := range bytes {
		m.data[adr+uint32(i)] = b
	}
}

// Method to reading binary data from memory. Returns size bytes for
// [adr, adr+size) in ascending address order. Reading any address absent from
// the image fails with RANGE_ERROR, there is no implicit zero filling.
func (m *Memory) GetBinary(adr uint32, size uint32) ([]byte, error) {
	data := make([]byte, size)
	for i := uint32(0); i < size; i++ {
		b, ok := m.data[adr+i]
		if ok == false {
			return nil, newAccessError(RANGE_ERROR, fmt.Sprintf("no data at address 0x%08X", adr+i), adr+i)
		}
		data[i] = b
	}
	return data, nil
}

// Method to dumping binary data from memory. Addresses absent from the image
// are filled with the padding byte.
func (m *Memory) ToBinary(adr uint32, size uint32, padding byte) []byte {
	data := make([]byte, size)
	for i := uint32(0); i < size; i++ {
		b, ok := m.data[adr+i]
		if ok == false {
			b = padding
		}
		data[i] = b
	}
	return data
}

func (m *Memory) applyRecord(record Record) {
	switch record.Type {
	case DATA_RECORD:
		adr := m.extendedAddress + uint32(record.Address)
		for i, b := range record.Data {
			m.data[adr+uint32(i)] = b
		}
	case EOF_RECORD:
		m.eofFlag = true
	case ADDRESS_RECORD:
		m.extendedAddress = uint32(binary.BigEndian.Uint16(record.Data)) << 16
	case START_RECORD:
		m.startAddress = binary.BigEndian.Uint32(record.Data)
		m.startFlag = true
	}
}

func (m *Memory) parseIntelHexLine(line string) error {
	if len(line) == 0 {
		return nil
	}
	record, err := DecodeRecord(line)
	if err != nil {
		if perr, ok := err.(*ParseError); ok == true {
			perr.LineNum = m.lineNum
		}
		return err
	}
	m.applyRecord(record)
	return nil
}

// Method to parsing IntelHex data. The whole reader is consumed line by line
// up to the end of file record, lines after it are ignored. Parser state is
// cleared on entry, so the extended address bias never leaks between loads,
// and cleared again on any error, so a partially built image is never left
// behind. After a successful parse the start address is always set: either
// from a start linear address record (last one wins) or derived as the lowest
// address present in the image.
func (m *Memory) ParseIntelHex(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	m.Clear()
	for scanner.Scan() {
		m.lineNum++
		line := scanner.Text()
		err := m.parseIntelHexLine(line)
		if err != nil {
			m.Clear()
			return err
		}
		if m.eofFlag {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		lineNum := m.lineNum
		m.Clear()
		return newParseError(SYNTAX_ERROR, err.Error(), lineNum)
	}
	if m.eofFlag == false {
		lineNum := m.lineNum
		m.Clear()
		return newParseError(DATA_ERROR, "no end of file line", lineNum)
	}
	if m.startFlag == false {
		if len(m.data) == 0 {
			lineNum := m.lineNum
			m.Clear()
			return newParseError(EMPTY_ERROR, "no data or start address lines", lineNum)
		}
		m.startAddress = m.minAddress()
		m.startFlag = true
	}
	return nil
}

func (m *Memory) minAddress() uint32 {
	var min uint32
	first := true
	for adr := range m.data {
		if first || adr < min {
			min = adr
			first = false
		}
	}
	return min
}

func (m *Memory) sortedAddresses() []uint32 {
	adrs := make([]uint32, 0, len(m.data))
	for adr := range m.data {
		adrs = append(adrs, adr)
	}
	sort.Sort(sortByAddress(adrs))
	return adrs
}

func (m *Memory) addressesInRange(adr uint32, size uint32) []uint32 {
	adrs := []uint32{}
	for a := range m.data {
		if a-adr < size {
			adrs = append(adrs, a)
		}
	}
	sort.Sort(sortByAddress(adrs))
	return adrs
}

func (m *Memory) segments(adrs []uint32) []DataSegment {
	segs := []DataSegment{}
	for _, adr := range adrs {
		n := len(segs)
		if n > 0 && adr == segs[n-1].Address+uint32(len(segs[n-1].Data)) {
			segs[n-1].Data = append(segs[n-1].Data, m.data[adr])
		} else {
			segs = append(segs, DataSegment{Address: adr, Data: []byte{m.data[adr]}})
		}
	}
	return segs
}

func (m *Memory) toRecords(segs []DataSegment, lineLength byte) []Record {
	if lineLength == 0 {
		lineLength = DefaultLineLength
	}
	records := []Record{}
	if m.startFlag {
		records = append(records, newStartAddressRecord(m.startAddress))
	}
	// extended address bias in force during this emission pass only
	extendedAddress := uint32(0)
	for _, s := range segs {
		lineAdr := s.Address
		lineData := []byte{}
		for i := range s.Data {
			byteAdr := s.Address + uint32(i)
			if (byteAdr & 0xFFFF0000) != extendedAddress {
				if len(lineData) != 0 {
					records = append(records, newDataRecord(uint16(lineAdr), lineData))
					lineData = []byte{}
				}
				lineAdr = byteAdr
				extendedAddress = byteAdr & 0xFFFF0000
				records = append(records, newExtendedAddressRecord(uint16(extendedAddress>>16)))
			}
			if len(lineData) >= int(lineLength) {
				records = append(records, newDataRecord(uint16(lineAdr), lineData))
				lineData = []byte{}
				lineAdr = byteAdr
			}
			lineData = append(lineData, s.Data[i])
		}
		if len(lineData) != 0 {
			records = append(records, newDataRecord(uint16(lineAdr), lineData))
		}
	}
	records = append(records, newEofRecord())
	return records
}

// Method to serializing the whole memory into a sequence of records: start
// address record first when a start address is set, then data records in
// ascending address order with extended linear address records interleaved
// right before the first record that needs them, end of file record always
// last. Data records carry at most lineLength bytes and never cross a 64 KiB
// boundary. Zero lineLength selects DefaultLineLength.
func (m *Memory) ToRecords(lineLength byte) []Record {
	return m.toRecords(m.segments(m.sortedAddresses()), lineLength)
}

// Method to serializing a memory range into a sequence of records. Only
// addresses within [adr, adr+size) are emitted, addresses absent from the
// image are skipped, not zero filled.
func (m *Memory) ToRecordsRange(adr uint32, size uint32, lineLength byte) []Record {
	return m.toRecords(m.segments(m.addressesInRange(adr, size)), lineLength)
}

// Method to dumping IntelHex data to writer
func (m *Memory) DumpIntelHex(writer io.Writer, lineLength byte) error {
	return dumpRecords(writer, m.ToRecords(lineLength))
}

// Method to dumping IntelHex data range to writer
func (m *Memory) DumpIntelHexRange(writer io.Writer, adr uint32, size uint32, lineLength byte) error {
	return dumpRecords(writer, m.ToRecordsRange(adr, size, lineLength))
}

func dumpRecords(writer io.Writer, records []Record) error {
	for _, record := range records {
		_, err := fmt.Fprintln(writer, EncodeRecord(record))
		if err != nil {
			return err
		}
	}
	return nil
}
