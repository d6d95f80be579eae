// memory.go - guest memory contract and a flat reference implementation

package ppc32

import "encoding/binary"

// Memory is the byte-addressable guest memory abstraction the core consumes.
// Values are read and written in host byte order; the core applies whatever
// byteswaps the big-endian ISA requires. Implementations need not be
// thread-safe beyond what a single emulator instance requires (§5).
type Memory interface {
	ReadU8(addr uint32) uint8
	WriteU8(addr uint32, v uint8)
	ReadU16(addr uint32) uint16
	WriteU16(addr uint32, v uint16)
	ReadU32(addr uint32) uint32
	WriteU32(addr uint32, v uint32)
	ReadU64(addr uint32) uint64
	WriteU64(addr uint32, v uint64)
}

// FlatMemory is a minimal host-byte-order Memory backed by a contiguous
// slice. There is no memory-mapped I/O table: the core has no opinion on
// device mapping, only on the typed accessors it requires from a host.
type FlatMemory struct {
	bytes []byte
}

// NewFlatMemory allocates size bytes of zeroed guest memory.
func NewFlatMemory(size int) *FlatMemory {
	return &FlatMemory{bytes: make([]byte, size)}
}

func (m *FlatMemory) ReadU8(addr uint32) uint8 { return m.bytes[addr] }

func (m *FlatMemory) WriteU8(addr uint32, v uint8) { m.bytes[addr] = v }

func (m *FlatMemory) ReadU16(addr uint32) uint16 {
	return binary.NativeEndian.Uint16(m.bytes[addr : addr+2])
}

func (m *FlatMemory) WriteU16(addr uint32, v uint16) {
	binary.NativeEndian.PutUint16(m.bytes[addr:addr+2], v)
}

func (m *FlatMemory) ReadU32(addr uint32) uint32 {
	return binary.NativeEndian.Uint32(m.bytes[addr : addr+4])
}

func (m *FlatMemory) WriteU32(addr uint32, v uint32) {
	binary.NativeEndian.PutUint32(m.bytes[addr:addr+4], v)
}

func (m *FlatMemory) ReadU64(addr uint32) uint64 {
	return binary.NativeEndian.Uint64(m.bytes[addr : addr+8])
}

func (m *FlatMemory) WriteU64(addr uint32, v uint64) {
	binary.NativeEndian.PutUint64(m.bytes[addr:addr+8], v)
}

// LoadBytes copies data into guest memory starting at addr, for test and CLI
// bootstrapping.
func (m *FlatMemory) LoadBytes(addr uint32, data []byte) {
	copy(m.bytes[addr:], data)
}

// Bytes exposes the backing slice read-only-by-convention, for disassembly
// drivers that want to scan a range directly.
func (m *FlatMemory) Bytes() []byte { return m.bytes }

func (m *FlatMemory) Len() int { return len(m.bytes) }
