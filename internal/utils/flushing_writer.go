package utils

import (
	"io"
	"sync"
)

// FlushingWriter makes report lines visible immediately by invoking Flush on buffered writers,
// and remembers the first write failure so callers printing with fmt can check it once at the end.
type FlushingWriter struct {
	writer     io.Writer
	mutex      sync.Mutex
	firstError error
}

// NewFlushingWriter wraps the provided writer. A nil writer discards output.
func NewFlushingWriter(writer io.Writer) *FlushingWriter {
	if writer == nil {
		writer = io.Discard
	}
	if existing, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return existing
	}
	return &FlushingWriter{writer: writer}
}

// Write delegates to the underlying writer and flushes it when possible.
// Once a write or flush fails every later call returns that error without writing.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	if flushingWriter.firstError != nil {
		return 0, flushingWriter.firstError
	}

	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		flushingWriter.firstError = writeError
		return bytesWritten, writeError
	}

	if flushableWriter, implementsFlush := flushingWriter.writer.(interface{ Flush() error }); implementsFlush {
		if flushError := flushableWriter.Flush(); flushError != nil {
			flushingWriter.firstError = flushError
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}

// Err returns the first write or flush failure, if any.
func (flushingWriter *FlushingWriter) Err() error {
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()
	return flushingWriter.firstError
}
