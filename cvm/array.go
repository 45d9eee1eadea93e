package cvm

import (
	"encoding/binary"
	"math"
)

// Primitive array storage is raw bytes, little-endian, exactly
// length × ElementSize. The copy engine only ever distinguishes the four
// size classes (1/2/4/8), so booleans travel as bytes, chars as shorts,
// floats as ints and doubles as longs, the way the runtime's memmove paths
// treat them.

var byteOrder = binary.LittleEndian

func (this ArrayRef) ArrayLength() Int {
	vmAssert(this.IsArray(), "ArrayLength on non-array reference")
	return this.oop.length
}

func (this ArrayRef) GetArrayElement(index Int) Value {
	vmAssert(this.IsArray(), "GetArrayElement on non-array reference")
	vmAssert(index >= 0 && index < this.oop.length, "index %d out of range [0,%d)", index, this.oop.length)

	obj := this.oop
	kind := obj.class.ComponentKind()
	switch kind {
	case KindReference:
		return obj.references[index]
	case KindBoolean:
		return Boolean(obj.primitives[index])
	case KindByte:
		return Byte(obj.primitives[index])
	case KindChar:
		return Char(byteOrder.Uint16(obj.primitives[index*2:]))
	case KindShort:
		return Short(byteOrder.Uint16(obj.primitives[index*2:]))
	case KindInt:
		return Int(byteOrder.Uint32(obj.primitives[index*4:]))
	case KindFloat:
		return Float(math.Float32frombits(byteOrder.Uint32(obj.primitives[index*4:])))
	case KindLong:
		return Long(byteOrder.Uint64(obj.primitives[index*8:]))
	case KindDouble:
		return Double(math.Float64frombits(byteOrder.Uint64(obj.primitives[index*8:])))
	case KindVoid:
		VM.FatalUnreachable("array %s with void component", obj.class.Name())
	}
	VM.FatalUnreachable("unknown component kind %d of %s", kind, obj.class.Name())
	return nil
}

func (this ArrayRef) SetArrayElement(index Int, value Value) {
	vmAssert(this.IsArray(), "SetArrayElement on non-array reference")
	vmAssert(index >= 0 && index < this.oop.length, "index %d out of range [0,%d)", index, this.oop.length)

	obj := this.oop
	kind := obj.class.ComponentKind()
	switch kind {
	case KindReference:
		obj.references[index] = value
	case KindBoolean:
		obj.primitives[index] = byte(value.(Boolean))
	case KindByte:
		obj.primitives[index] = byte(value.(Byte))
	case KindChar:
		byteOrder.PutUint16(obj.primitives[index*2:], uint16(value.(Char)))
	case KindShort:
		byteOrder.PutUint16(obj.primitives[index*2:], uint16(value.(Short)))
	case KindInt:
		byteOrder.PutUint32(obj.primitives[index*4:], uint32(value.(Int)))
	case KindFloat:
		byteOrder.PutUint32(obj.primitives[index*4:], math.Float32bits(float32(value.(Float))))
	case KindLong:
		byteOrder.PutUint64(obj.primitives[index*8:], uint64(value.(Long)))
	case KindDouble:
		byteOrder.PutUint64(obj.primitives[index*8:], math.Float64bits(float64(value.(Double))))
	case KindVoid:
		VM.FatalUnreachable("array %s with void component", obj.class.Name())
	default:
		VM.FatalUnreachable("unknown component kind %d of %s", kind, obj.class.Name())
	}
}

//--------------------------------------------------------------------------------------
// Bulk move/copy primitives. The engine has already validated bounds and
// picked the strategy; these only assert.

// Memmove moves count primitive elements from src to this array. Source and
// destination may be the same array with overlapping ranges; the result is as
// if the range went through a temporary.
func (this ArrayRef) Memmove(dstPos Int, src ArrayRef, srcPos Int, count Int) {
	dstKind := this.Class().ComponentKind()
	srcKind := src.Class().ComponentKind()
	vmAssert(dstKind.IsPrimitive() && srcKind.IsPrimitive(), "Memmove on reference array")
	vmAssert(dstKind.ElementSize() == srcKind.ElementSize(),
		"Memmove size mismatch: %s vs %s", this.Class().Name(), src.Class().Name())

	es := dstKind.ElementSize()
	d := this.oop.primitives[int(dstPos)*es : (int(dstPos)+int(count))*es]
	s := src.oop.primitives[int(srcPos)*es : (int(srcPos)+int(count))*es]
	// Go's copy has memmove semantics, so aliasing ranges are fine.
	copy(d, s)
}

// AssignableMemmove moves count reference elements between arrays of the
// identical declared component type. No per-element check is needed and the
// ranges may alias.
func (this ArrayRef) AssignableMemmove(dstPos Int, src ArrayRef, srcPos Int, count Int) {
	vmAssert(this.Class().ComponentKind() == KindReference, "AssignableMemmove on primitive array")
	vmAssert(this.Class() == src.Class(), "AssignableMemmove across component types")
	copy(this.oop.references[dstPos:int(dstPos)+int(count)], src.oop.references[srcPos:int(srcPos)+int(count)])
}

// AssignableMemcpy copies count reference elements where the destination's
// component type statically covers the source's. The component types differ,
// so the two arrays cannot be the same object and the ranges cannot alias.
func (this ArrayRef) AssignableMemcpy(dstPos Int, src ArrayRef, srcPos Int, count Int) {
	vmAssert(this.oop != src.oop, "AssignableMemcpy on aliasing arrays")
	vmAssert(this.Class().ComponentKind() == KindReference, "AssignableMemcpy on primitive array")
	copy(this.oop.references[dstPos:int(dstPos)+int(count)], src.oop.references[srcPos:int(srcPos)+int(count)])
}

// AssignableCheckingMemcpy copies element by element, checking each value's
// concrete runtime type against the destination's component type. On the
// first non-assignable element the copy stops and throws; everything copied
// before the failing index stays copied. That partial-completion behavior is
// the documented java.lang.System#arraycopy contract.
func (this ArrayRef) AssignableCheckingMemcpy(dstPos Int, src ArrayRef, srcPos Int, count Int) {
	dstComponent := this.Class().ComponentType().(*Class)
	for i := Int(0); i < count; i++ {
		elem := src.oop.references[srcPos+i].(Reference)
		if !elem.IsNull() && !dstComponent.IsAssignableFrom(elem.Class()) {
			VM.Throw(ExArrayStore, "%s cannot be stored in an array of type %s",
				PrettyTypeOf(elem), this.Class().PrettyName())
		}
		this.oop.references[dstPos+i] = elem
	}
}

//--------------------------------------------------------------------------------------
// Multi-dimensional construction.

// createMultiArray builds the nested array tree for the given element type
// and dimension vector, outermost dimension first. Dimensions are already
// validated by the native.
func (this *CVM) createMultiArray(elementType Type, dims []Int) ArrayRef {
	arrayClass := this.FindArrayClass(elementType)
	for i := 1; i < len(dims); i++ {
		arrayClass = this.FindArrayClass(arrayClass)
	}
	return this.recursiveCreateMultiArray(arrayClass, dims)
}

func (this *CVM) recursiveCreateMultiArray(arrayClass *Class, dims []Int) ArrayRef {
	arr := this.Heap.NewArray(arrayClass, dims[0])
	if len(dims) > 1 {
		subClass := arrayClass.ComponentType().(*Class)
		for i := Int(0); i < dims[0]; i++ {
			arr.SetArrayElement(i, this.recursiveCreateMultiArray(subClass, dims[1:]))
		}
	}
	return arr
}
