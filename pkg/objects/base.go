package objects

import (
	"fmt"
	"strconv"
)

// ObjectType identifies what a stored object holds.
type ObjectType string

const (
	CommitType ObjectType = "commit"
)

const (
	NullByte  = byte(0)
	SpaceByte = byte(' ')
)

// String implements the Stringer interface
func (o ObjectType) String() string {
	return string(o)
}

// ParseObjectType converts a string to ObjectType
func ParseObjectType(s string) (ObjectType, error) {
	switch ObjectType(s) {
	case CommitType:
		return ObjectType(s), nil
	default:
		return "", fmt.Errorf("unknown object type: %s", s)
	}
}

// CreateHeader builds the "<type> <size>\0" prefix of a stored object.
func CreateHeader(objType ObjectType, size int64) []byte {
	header := make([]byte, 0, len(objType)+22)
	header = append(header, objType...)
	header = append(header, SpaceByte)
	header = strconv.AppendInt(header, size, 10)
	return append(header, NullByte)
}
