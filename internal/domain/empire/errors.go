package empire

import "fmt"

// SaveError is the base error type for failures while reading a save file.
type SaveError struct {
	Message string
}

func (e *SaveError) Error() string {
	return e.Message
}

func NewSaveError(message string) *SaveError {
	return &SaveError{Message: message}
}

// SaveNotFoundError means the save file path does not exist or cannot be
// opened at all.
type SaveNotFoundError struct {
	*SaveError
	Path string
}

func NewSaveNotFoundError(path string) *SaveNotFoundError {
	return &SaveNotFoundError{
		SaveError: NewSaveError(fmt.Sprintf("save file not found: %s", path)),
		Path:      path,
	}
}

// MalformedSaveError means the save's structure could not be parsed. The whole
// extraction fails; no partial snapshot is returned.
type MalformedSaveError struct {
	*SaveError
	// Element identifies the node being processed when parsing failed,
	// when known. Large saves make this essential for diagnosis.
	Element string
}

func NewMalformedSaveError(element, message string) *MalformedSaveError {
	msg := fmt.Sprintf("malformed save: %s", message)
	if element != "" {
		msg = fmt.Sprintf("malformed save at %s: %s", element, message)
	}
	return &MalformedSaveError{
		SaveError: NewSaveError(msg),
		Element:   element,
	}
}

// UnsupportedCompressionError means every decompression probe failed and the
// raw bytes were not parseable either.
type UnsupportedCompressionError struct {
	*SaveError
	Path string
}

func NewUnsupportedCompressionError(path string) *UnsupportedCompressionError {
	return &UnsupportedCompressionError{
		SaveError: NewSaveError(fmt.Sprintf("unsupported compression: %s is neither gzip, lz4 nor plain XML", path)),
		Path:      path,
	}
}
