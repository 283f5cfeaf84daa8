// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// AppendVarint64 - append a Varint64 encoded value to a buffer
func AppendVarint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a length prefixed byte slice to a buffer
//
// the length is a Varint64 byte count
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// TakeVarint64 - remove a Varint64 from the front of a buffer
//
// returns the value and the remaining buffer, ok is false if the
// buffer was truncated
func TakeVarint64(buffer []byte) (uint64, []byte, bool) {
	value, n := FromVarint64(buffer)
	if 0 == n {
		return 0, nil, false
	}
	return value, buffer[n:], true
}

// TakeBytes - remove a length prefixed byte slice from the front of a buffer
//
// the returned slice is a copy
func TakeBytes(buffer []byte) ([]byte, []byte, bool) {
	length, rest, ok := TakeVarint64(buffer)
	if !ok || uint64(len(rest)) < length {
		return nil, nil, false
	}
	data := make([]byte, length)
	copy(data, rest[:length])
	return data, rest[length:], true
}
