package intelhex

import (
	"encoding/hex"
	"testing"
)

func assertDecodeError(t *testing.T, line string, et ParseErrorType, err string) {
	if _, e := DecodeRecord(line); e != nil {
		perr, ok := e.(*ParseError)
		if ok == true {
			if perr.ErrorType != et {
				t.Error(perr.Error())
				t.Error(err)
			}
		} else {
			t.Error(err)
		}
	} else {
		t.Error(err)
	}
}

func assertEncode(t *testing.T, record Record, line string) {
	if s := EncodeRecord(record); s != line {
		t.Errorf("wrong encoded line %s (expected %s)", s, line)
	}
}

func TestDecodeDataRecord(t *testing.T) {
	record, err := DecodeRecord(":02000200ABCD84")
	if err != nil {
		t.Error(err.Error())
	}
	if record.Type != DATA_RECORD {
		t.Errorf("wrong record type")
	}
	if record.Address != 0x0002 {
		t.Errorf("wrong record address")
	}
	if len(record.Data) != 2 || record.Data[0] != 0xAB || record.Data[1] != 0xCD {
		t.Errorf("wrong record data")
	}
}

func TestDecodeLowercaseLine(t *testing.T) {
	record, err := DecodeRecord(":02000200abcd84")
	if err != nil {
		t.Error(err.Error())
	}
	if record.Data[0] != 0xAB || record.Data[1] != 0xCD {
		t.Errorf("wrong record data")
	}
}

func TestDecodeEofRecord(t *testing.T) {
	record, err := DecodeRecord(":00000001FF")
	if err != nil {
		t.Error(err.Error())
	}
	if record.Type != EOF_RECORD {
		t.Errorf("wrong record type")
	}
	if record.Address != 0 || len(record.Data) != 0 {
		t.Errorf("wrong record fields")
	}
}

func TestDecodeExtendedAddressRecord(t *testing.T) {
	record, err := DecodeRecord(":020000040001F9")
	if err != nil {
		t.Error(err.Error())
	}
	if record.Type != ADDRESS_RECORD {
		t.Errorf("wrong record type")
	}
	if len(record.Data) != 2 || record.Data[0] != 0x00 || record.Data[1] != 0x01 {
		t.Errorf("wrong record data")
	}
}

func TestDecodeStartAddressRecord(t *testing.T) {
	record, err := DecodeRecord(":04000005803000A0A7")
	if err != nil {
		t.Error(err.Error())
	}
	if record.Type != START_RECORD {
		t.Errorf("wrong record type")
	}
	if len(record.Data) != 4 {
		t.Errorf("wrong record data size")
	}
}

func TestDecodeSyntaxErrors(t *testing.T) {
	assertDecodeError(t, "", SYNTAX_ERROR, "no empty line error")
	assertDecodeError(t, "00000001FF", SYNTAX_ERROR, "no colon error")
	assertDecodeError(t, ":qw00000001FF", SYNTAX_ERROR, "no ascii hex error")
	assertDecodeError(t, ":0000001FF", SYNTAX_ERROR, "no odd/even hex error")
}

func TestDecodeDataErrors(t *testing.T) {
	assertDecodeError(t, ":000000FF", DATA_ERROR, "no line length error")
	assertDecodeError(t, ":02000000FE", DATA_ERROR, "no data length error")
	assertDecodeError(t, ":0000000000", DATA_ERROR, "no empty data record error")
}

func TestDecodeChecksumErrors(t *testing.T) {
	assertDecodeError(t, ":00000101FF", CHECKSUM_ERROR, "no checking checksum error")
	assertDecodeError(t, ":00000001FE", CHECKSUM_ERROR, "no checking checksum error")
	assertDecodeError(t, ":0000000001", CHECKSUM_ERROR, "no checking checksum error")
	assertDecodeError(t, ":000000FF02", CHECKSUM_ERROR, "no checking checksum error")
}

func TestDecodeRecordErrors(t *testing.T) {
	assertDecodeError(t, ":000000FF01", RECORD_ERROR, "no unknown record type error")
	assertDecodeError(t, ":00000003FD", RECORD_ERROR, "no unknown record type error")
	assertDecodeError(t, ":020000021000EC", RECORD_ERROR, "no unknown record type error")
	assertDecodeError(t, ":00000101FE", RECORD_ERROR, "no eof record error")
	assertDecodeError(t, ":00010001FE", RECORD_ERROR, "no eof record error")
	assertDecodeError(t, ":0100000100FE", RECORD_ERROR, "no eof record error")
	assertDecodeError(t, ":020001040101F7", RECORD_ERROR, "no extended address record error")
	assertDecodeError(t, ":020100040101F7", RECORD_ERROR, "no extended address record error")
	assertDecodeError(t, ":03000004010100F7", RECORD_ERROR, "no extended address record error")
	assertDecodeError(t, ":0400010501010101F2", RECORD_ERROR, "no start address record error")
	assertDecodeError(t, ":0401000501010101F2", RECORD_ERROR, "no start address record error")
	assertDecodeError(t, ":050000050101010100F2", RECORD_ERROR, "no start address record error")
}

func TestEncodeRecords(t *testing.T) {
	assertEncode(t, newEofRecord(), ":00000001FF")
	assertEncode(t, newDataRecord(0x0100, []byte{0xDE, 0xAD, 0xBE, 0xEF}), ":04010000DEADBEEFC3")
	assertEncode(t, newExtendedAddressRecord(0x0001), ":020000040001F9")
	assertEncode(t, newExtendedAddressRecord(0x8030), ":0200000480304A")
	assertEncode(t, newStartAddressRecord(0x803000A0), ":04000005803000A0A7")
}

func TestDecodeEncodeIdentity(t *testing.T) {
	line := ":1000A000000102030405060708090A0B0C0D0E0FD8"
	record, err := DecodeRecord(line)
	if err != nil {
		t.Error(err.Error())
	}
	if EncodeRecord(record) != line {
		t.Errorf("encode is not the inverse of decode")
	}
}

func TestEncodedChecksums(t *testing.T) {
	records := []Record{
		newDataRecord(0xFFFE, []byte{0x11, 0x22}),
		newDataRecord(0x0000, []byte{0xFF}),
		newExtendedAddressRecord(0xFFFF),
		newStartAddressRecord(0xFFFFFFFF),
		newEofRecord(),
	}
	for _, record := range records {
		line := EncodeRecord(record)
		if _, err := DecodeRecord(line); err != nil {
			t.Error(err.Error())
			continue
		}
		bytes, err := hex.DecodeString(line[1:])
		if err != nil {
			t.Error(err.Error())
			continue
		}
		sum := 0
		for _, b := range bytes[:len(bytes)-1] {
			sum += int(b)
		}
		if byte((0x100-(sum%0x100))%0x100) != bytes[len(bytes)-1] {
			t.Errorf("wrong checksum byte in line %s", line)
		}
	}
}
