package intelhex

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Type of IntelHex records
type RecordType byte

// Constants definitions of IntelHex record types
const (
	DATA_RECORD    RecordType = 0 // Record with data bytes
	EOF_RECORD     RecordType = 1 // Record with end of file indicator
	ADDRESS_RECORD RecordType = 4 // Record with extended linear address
	START_RECORD   RecordType = 5 // Record with start linear address
)

// Structure with fields of one decoded IntelHex line. Address field holds the
// raw 16-bit address field of the line: for data records it is the low half
// of the absolute address before the extended address bias is applied, for
// other record types it is zero. Data field holds the record payload: data
// bytes for data records, the big-endian upper address word for extended
// linear address records, the big-endian entry point for start linear address
// records, empty for end of file records.
type Record struct {
	Type    RecordType // Record type field
	Address uint16     // Record address field
	Data    []byte     // Record payload bytes
}

// Function to decoding single IntelHex line into Record structure. Line
// checksum is verified and record fields are validated against the record
// type. Unknown record types are rejected, not skipped.
func DecodeRecord(line string) (Record, error) {
	if len(line) == 0 || line[0] != ':' {
		return Record{}, newParseError(SYNTAX_ERROR, "no colon char on the first line character", 0)
	}
	bytes, err := hex.DecodeString(line[1:])
	if err != nil {
		return Record{}, newParseError(SYNTAX_ERROR, err.Error(), 0)
	}
	return decodeRecordBytes(bytes)
}

func decodeRecordBytes(bytes []byte) (Record, error) {
	if len(bytes) < 5 {
		return Record{}, newParseError(DATA_ERROR, "not enough data bytes", 0)
	}
	err := checkSum(bytes)
	if err != nil {
		return Record{}, newParseError(CHECKSUM_ERROR, err.Error(), 0)
	}
	err = checkRecordSize(bytes)
	if err != nil {
		return Record{}, newParseError(DATA_ERROR, err.Error(), 0)
	}
	record := Record{
		Type:    RecordType(bytes[3]),
		Address: binary.BigEndian.Uint16(bytes[1:3]),
		Data:    bytes[4 : len(bytes)-1],
	}
	switch record.Type {
	case DATA_RECORD:
		if len(record.Data) == 0 {
			return Record{}, newParseError(DATA_ERROR, "no data bytes in data line", 0)
		}
	case EOF_RECORD:
		err = checkEOF(bytes)
		if err != nil {
			return Record{}, newParseError(RECORD_ERROR, err.Error(), 0)
		}
	case ADDRESS_RECORD:
		err = checkExtendedAddress(bytes)
		if err != nil {
			return Record{}, newParseError(RECORD_ERROR, err.Error(), 0)
		}
	case START_RECORD:
		err = checkStartAddress(bytes)
		if err != nil {
			return Record{}, newParseError(RECORD_ERROR, err.Error(), 0)
		}
	default:
		return Record{}, newParseError(RECORD_ERROR, fmt.Sprintf("unknown record type %02X", bytes[3]), 0)
	}
	return record, nil
}

// Function to encoding Record structure into single IntelHex line. Output is
// the exact inverse of DecodeRecord: colon prefix, uppercase hex fields,
// trailing checksum, no whitespace. Record payload must fit in one line
// (up to 255 bytes).
func EncodeRecord(record Record) string {
	bytes := make([]byte, 0, len(record.Data)+5)
	bytes = append(bytes, byte(len(record.Data)))
	bytes = append(bytes, byte(record.Address>>8), byte(record.Address))
	bytes = append(bytes, byte(record.Type))
	bytes = append(bytes, record.Data...)
	bytes = append(bytes, calcSum(bytes))
	return ":" + strings.ToUpper(hex.EncodeToString(bytes))
}

func newDataRecord(adr uint16, data []byte) Record {
	return Record{Type: DATA_RECORD, Address: adr, Data: data}
}

func newExtendedAddressRecord(upper uint16) Record {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, upper)
	return Record{Type: ADDRESS_RECORD, Data: data}
}

func newStartAddressRecord(adr uint32) Record {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, adr)
	return Record{Type: START_RECORD, Data: data}
}

func newEofRecord() Record {
	return Record{Type: EOF_RECORD}
}
