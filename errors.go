package intelhex

import (
	"fmt"
)

// Type of record parsing errors
type ParseErrorType uint

// Constants definitions of record parsing error types
const (
	SYNTAX_ERROR   ParseErrorType = 1 // No colon prefix or invalid hex characters
	DATA_ERROR     ParseErrorType = 2 // Inconsistent record length fields
	RECORD_ERROR   ParseErrorType = 3 // Unknown record type or invalid record fields
	CHECKSUM_ERROR ParseErrorType = 4 // Incorrect line checksum
	EMPTY_ERROR    ParseErrorType = 5 // No data and no start address in image
)

// Structure with details of record parsing error
type ParseError struct {
	ErrorType ParseErrorType // Type of parse error
	Message   string         // Error details message
	LineNum   uint           // Parser input line number
}

func (e *ParseError) Error() string {
	var str string = "error"
	switch e.ErrorType {
	case SYNTAX_ERROR:
		str = "syntax error"
	case DATA_ERROR:
		str = "data error"
	case RECORD_ERROR:
		str = "record error"
	case CHECKSUM_ERROR:
		str = "checksum error"
	case EMPTY_ERROR:
		str = "empty image error"
	}
	if e.LineNum == 0 {
		return fmt.Sprintf("%s: %s", str, e.Message)
	}
	return fmt.Sprintf("%s: %s at line %d", str, e.Message, e.LineNum)
}

func newParseError(et ParseErrorType, msg string, line uint) error {
	return &ParseError{ErrorType: et, Message: msg, LineNum: line}
}

// Type of memory access errors
type AccessErrorType uint

// Constants definitions of memory access error types
const (
	ADDRESS_ERROR AccessErrorType = 1 // Unparseable or out of range textual address
	VALUE_ERROR   AccessErrorType = 2 // Unparseable textual data payload
	RANGE_ERROR   AccessErrorType = 3 // Read of an address absent from the image
)

// Structure with details of memory access error
type AccessError struct {
	ErrorType AccessErrorType // Type of access error
	Message   string          // Error details message
	Address   uint32          // Memory address related to the error
}

func (e *AccessError) Error() string {
	var str string = "error"
	switch e.ErrorType {
	case ADDRESS_ERROR:
		str = "address error"
	case VALUE_ERROR:
		str = "value error"
	case RANGE_ERROR:
		str = "range error"
	}
	return fmt.Sprintf("%s: %s", str, e.Message)
}

func newAccessError(et AccessErrorType, msg string, adr uint32) error {
	return &AccessError{ErrorType: et, Message: msg, Address: adr}
}
