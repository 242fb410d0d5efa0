package adapter

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildClassFile assembles the smallest class file that declares internalName.
// A long constant is placed first so the two-slot rule is exercised.
func buildClassFile(internalName string) []byte {
	var buf bytes.Buffer
	w := func(v any) { _ = binary.Write(&buf, binary.BigEndian, v) }

	w(uint32(classMagic))
	w(uint16(0))
	w(uint16(52))
	w(uint16(5))

	buf.WriteByte(tagLong)
	w(uint64(42))

	buf.WriteByte(tagUtf8)
	w(uint16(len(internalName)))
	buf.WriteString(internalName)

	buf.WriteByte(tagClass)
	w(uint16(3))

	w(uint16(0x21))
	w(uint16(4))
	w(uint16(0))

	return buf.Bytes()
}

func TestClassFileNamespace(t *testing.T) {
	ns, err := classFileNamespace(buildClassFile("com/foo/Bar"))
	require.NoError(t, err)
	assert.Equal(t, "com.foo", ns)

	ns, err = classFileNamespace(buildClassFile("Bar"))
	require.NoError(t, err)
	assert.Equal(t, "", ns)
}

func TestClassFileName_Invalid(t *testing.T) {
	_, err := classFileName([]byte("package com.foo;"))
	require.Error(t, err)

	data := buildClassFile("com/foo/Bar")
	_, err = classFileName(data[:len(data)-8])
	require.Error(t, err)

	_, err = classFileName(nil)
	require.Error(t, err)
}
