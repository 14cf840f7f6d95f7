package objects

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"strconv"
)

// ObjectContent is the body of a stored object, without header.
type ObjectContent []byte

// CompressedData is DEFLATE-compressed object data as it sits on disk.
type CompressedData []byte

// SerializedObject is an object with its header.
// Format: "<type> <size>\0<content>"
type SerializedObject []byte

// Bytes returns the underlying byte slice
func (oc ObjectContent) Bytes() []byte {
	return []byte(oc)
}

// Compress compresses the content with DEFLATE.
func (oc ObjectContent) Compress() (CompressedData, error) {
	if len(oc) == 0 {
		return CompressedData{}, nil
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}

	if _, err := w.Write(oc); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize compression: %w", err)
	}

	return CompressedData(buf.Bytes()), nil
}

// Bytes returns the underlying byte slice
func (cd CompressedData) Bytes() []byte {
	return []byte(cd)
}

// Decompress reverses Compress.
func (cd CompressedData) Decompress() (ObjectContent, error) {
	if len(cd) == 0 {
		return ObjectContent{}, nil
	}

	r := flate.NewReader(bytes.NewReader(cd))
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}

	return ObjectContent(data), nil
}

// Bytes returns the underlying byte slice
func (so SerializedObject) Bytes() []byte {
	return []byte(so)
}

// ParseHeader returns the object type, declared content size and the offset
// at which the content starts.
func (so SerializedObject) ParseHeader() (ObjectType, int64, int, error) {
	data := []byte(so)
	nullIndex := bytes.IndexByte(data, NullByte)
	if nullIndex == -1 {
		return "", 0, 0, fmt.Errorf("invalid object header: missing null byte")
	}

	spaceIndex := bytes.IndexByte(data[:nullIndex], SpaceByte)
	if spaceIndex == -1 {
		return "", 0, 0, fmt.Errorf("invalid object header: missing space")
	}

	objType, err := ParseObjectType(string(data[:spaceIndex]))
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid object type: %w", err)
	}

	size, err := strconv.ParseInt(string(data[spaceIndex+1:nullIndex]), 10, 64)
	if err != nil || size < 0 {
		return "", 0, 0, fmt.Errorf("invalid size in header: %q", data[spaceIndex+1:nullIndex])
	}

	return objType, size, nullIndex + 1, nil
}

// Content returns the body after verifying it against the header size.
func (so SerializedObject) Content() (ObjectType, ObjectContent, error) {
	objType, expectedSize, contentStart, err := so.ParseHeader()
	if err != nil {
		return "", nil, err
	}

	content := []byte(so)[contentStart:]
	if int64(len(content)) != expectedSize {
		return "", nil, fmt.Errorf("content size mismatch: expected %d, got %d", expectedSize, len(content))
	}

	return objType, ObjectContent(content), nil
}

// Compress compresses the entire serialized object
func (so SerializedObject) Compress() (CompressedData, error) {
	return ObjectContent(so).Compress()
}

// NewSerializedObject prefixes content with its header.
func NewSerializedObject(objType ObjectType, content ObjectContent) SerializedObject {
	header := CreateHeader(objType, int64(len(content)))
	return SerializedObject(append(header, content.Bytes()...))
}
