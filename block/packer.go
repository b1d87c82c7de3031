package block

import "encoding/binary"

// PutUint32 encodes v into buf[0:4] in little-endian order, regardless of the host byte order.
func PutUint32(buf []byte, v uint32) {
	binary.LittleEndian.PutUint32(buf, v)
}

// PutUint16 encodes v into buf[0:2] in little-endian order, regardless of the host byte order.
func PutUint16(buf []byte, v uint16) {
	binary.LittleEndian.PutUint16(buf, v)
}

func Uint32(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

func Uint16(buf []byte) uint16 {
	return binary.LittleEndian.Uint16(buf)
}
