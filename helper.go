package intelhex

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

func calcSum(bytes []byte) byte {
	sum := 0
	for _, b := range bytes {
		sum += int(b)
	}
	sum %= 256
	sum = (256 - sum) % 256
	return byte(sum)
}

func checkSum(bytes []byte) error {
	sum := calcSum(bytes[:len(bytes)-1])
	last := bytes[len(bytes)-1]
	if sum != last {
		return errors.New("incorrect checksum (sum = " + fmt.Sprintf("%02X != %02X", sum, last) + ")")
	}
	return nil
}

func checkRecordSize(bytes []byte) error {
	if (int(bytes[0]) + 5) != len(bytes) {
		return errors.New("incorrect data length")
	}
	return nil
}

func checkEOF(bytes []byte) error {
	if bytes[0] != 0 {
		return errors.New("incorrect data length field in eof line")
	}
	if binary.BigEndian.Uint16(bytes[1:3]) != 0 {
		return errors.New("incorrect address field in eof line")
	}
	return nil
}

func checkExtendedAddress(bytes []byte) error {
	if bytes[0] != 2 {
		return errors.New("incorrect data length field in extended linear address line")
	}
	if binary.BigEndian.Uint16(bytes[1:3]) != 0 {
		return errors.New("incorrect address field in extended linear address line")
	}
	return nil
}

func checkStartAddress(bytes []byte) error {
	if bytes[0] != 4 {
		return errors.New("incorrect data length field in start address line")
	}
	if binary.BigEndian.Uint16(bytes[1:3]) != 0 {
		return errors.New("incorrect address field in start address line")
	}
	return nil
}

func stripHexPrefix(str string) string {
	if len(str) >= 2 && (str[0:2] == "0x" || str[0:2] == "0X") {
		return str[2:]
	}
	return str
}

// Function to parsing textual memory address. Accepted form is a hexadecimal
// string with optional 0x prefix, case insensitive, up to 32 bits.
func ParseAddress(address string) (adr uint32, err error) {
	a, err := strconv.ParseUint(stripHexPrefix(address), 16, 32)
	if err != nil {
		return 0, newAccessError(ADDRESS_ERROR, fmt.Sprintf("invalid address %q", address), 0)
	}
	return uint32(a), nil
}

func parseDataBytes(data string) ([]byte, error) {
	str := stripHexPrefix(data)
	if len(str)%2 != 0 {
		return nil, errors.New("odd number of hex digits in data")
	}
	bytes, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.New("invalid hex digits in data")
	}
	return bytes, nil
}
