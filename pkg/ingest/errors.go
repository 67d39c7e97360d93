package ingest

import "fmt"

// UnsupportedFormatError is returned when the declared file extension is
// not one of the supported model formats. User-correctable: the caller
// should report it and keep its prior state.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported model format %q (supported: .stl, .obj)", e.Ext)
}

// MalformedDataError is returned when a parser cannot extract a
// conforming triangle buffer from the file bytes. Ingestion aborts for
// that file; the caller's prior mesh is retained.
type MalformedDataError struct {
	Format string // "stl" or "obj"
	Reason string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed %s data: %s", e.Format, e.Reason)
}
