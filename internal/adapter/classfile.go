package adapter

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

const classMagic = 0xCAFEBABE

// constant pool tags
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

var errNotClassFile = errors.New("not a class file")

// classFileName returns the internal name (e.g. "com/foo/Bar") of the class
// declared by a compiled class file.
func classFileName(data []byte) (string, error) {
	r := bytes.NewReader(data)

	var header struct {
		Magic   uint32
		Minor   uint16
		Major   uint16
		CPCount uint16
	}
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return "", fmt.Errorf("read class header: %w", err)
	}

	if header.Magic != classMagic {
		return "", errNotClassFile
	}

	utf8s := make(map[uint16]string)
	classes := make(map[uint16]uint16)

	for i := uint16(1); i < header.CPCount; i++ {
		tag, err := r.ReadByte()
		if err != nil {
			return "", fmt.Errorf("read constant %d: %w", i, err)
		}

		switch tag {
		case tagUtf8:
			var n uint16
			if err := binary.Read(r, binary.BigEndian, &n); err != nil {
				return "", err
			}

			buf := make([]byte, n)
			if _, err := io.ReadFull(r, buf); err != nil {
				return "", fmt.Errorf("read utf8 constant %d: %w", i, err)
			}

			utf8s[i] = string(buf)
		case tagClass:
			var idx uint16
			if err := binary.Read(r, binary.BigEndian, &idx); err != nil {
				return "", err
			}

			classes[i] = idx
		case tagString, tagMethodType, tagModule, tagPackage:
			if err := skip(r, 2); err != nil {
				return "", err
			}
		case tagMethodHandle:
			if err := skip(r, 3); err != nil {
				return "", err
			}
		case tagInteger, tagFloat, tagFieldref, tagMethodref, tagInterfaceMethodref,
			tagNameAndType, tagDynamic, tagInvokeDynamic:
			if err := skip(r, 4); err != nil {
				return "", err
			}
		case tagLong, tagDouble:
			if err := skip(r, 8); err != nil {
				return "", err
			}
			// 8-byte constants occupy two slots
			i++
		default:
			return "", fmt.Errorf("unknown constant tag %d at %d", tag, i)
		}
	}

	var tail struct {
		AccessFlags uint16
		ThisClass   uint16
	}
	if err := binary.Read(r, binary.BigEndian, &tail); err != nil {
		return "", fmt.Errorf("read this_class: %w", err)
	}

	nameIdx, ok := classes[tail.ThisClass]
	if !ok {
		return "", fmt.Errorf("this_class %d is not a class constant", tail.ThisClass)
	}

	name, ok := utf8s[nameIdx]
	if !ok {
		return "", fmt.Errorf("class name %d is not a utf8 constant", nameIdx)
	}

	return name, nil
}

// classFileNamespace returns the dotted package of a compiled class, or ""
// for the default package.
func classFileNamespace(data []byte) (string, error) {
	name, err := classFileName(data)
	if err != nil {
		return "", err
	}

	i := strings.LastIndex(name, "/")
	if i < 0 {
		return "", nil
	}

	return strings.ReplaceAll(name[:i], "/", "."), nil
}

func skip(r *bytes.Reader, n int64) error {
	if int64(r.Len()) < n {
		return errors.New("truncated constant pool")
	}

	_, err := r.Seek(n, io.SeekCurrent)

	return err
}
