package glcew

import (
	"runtime"
	"unsafe"
)

// OpenGL scalar types, sized to match the C declarations.
type (
	Enum     uint32
	Boolean  uint8
	Bitfield uint32
	Byte     int8
	Short    int16
	Int      int32
	Ubyte    uint8
	Ushort   uint16
	Uint     uint32
	Sizei    int32
	Float    float32
	Clampf   float32
	Double   float64
	Clampd   float64
)

// GLX and Xlib types. Display and XVisualInfo are only ever handled by
// pointer.
type (
	Display     struct{}
	XVisualInfo struct{}

	Context    unsafe.Pointer
	Drawable   uintptr
	Pixmap     uintptr
	ExtFuncPtr uintptr
)

// Values passed to and returned by the wrapped functions.
const (
	False Boolean = 0
	True  Boolean = 1

	DepthBufferBit Bitfield = 0x00000100
	ColorBufferBit Bitfield = 0x00004000

	Vendor     Enum = 0x1F00
	Renderer   Enum = 0x1F01
	Version    Enum = 0x1F02
	Extensions Enum = 0x1F03

	Texture2D Enum = 0x0DE1
	Blend     Enum = 0x0BE2
	DepthTest Enum = 0x0B71
)

// GoString copies a NUL-terminated C string, such as the result of
// GetString or XQueryExtensionsString, into a Go string.
func GoString[T ~uint8 | ~int8](p *T) string {
	if p == nil {
		return ""
	}
	ptr := unsafe.Pointer(p)
	var length int
	for *(*byte)(unsafe.Add(ptr, length)) != 0 {
		length++
	}
	return string(unsafe.Slice((*byte)(ptr), length))
}

// ProcAddress looks up an extension entry point through
// glXGetProcAddressARB. It returns 0 when the driver does not know name.
func ProcAddress(name string) ExtFuncPtr {
	b := append([]byte(name), 0)
	addr := XGetProcAddressARB((*Ubyte)(&b[0]))
	runtime.KeepAlive(b)
	return addr
}
