package cvm

import (
	"sync/atomic"

	log "github.com/inconshreveable/log15"
)

// Heap hands out zero-filled objects and arrays and keeps per-kind allocation
// accounting (bytes and object counts), in the spirit of the tracking
// allocators of the full runtime. Reclamation belongs to the collector, not
// to this core.
type Heap struct {
	bytesAllocated [kindCount]uint64
	arraysMade     [kindCount]uint64
	objectsMade    uint64

	logger log.Logger
}

func NewHeap(logger log.Logger) *Heap {
	return &Heap{logger: logger}
}

// NewArray allocates a zero-filled array of the given array class. Length
// validation against user input happens in the natives; a negative length
// here is a caller bug.
func (this *Heap) NewArray(arrayClass *Class, length Int) ArrayRef {
	vmAssert(arrayClass.IsArray(), "NewArray on non-array class %s", arrayClass.Name())
	vmAssert(length >= 0, "NewArray with negative length %d", length)

	kind := arrayClass.ComponentKind()
	obj := &Object{class: arrayClass, length: length}
	switch {
	case kind == KindReference:
		obj.references = make([]Value, length)
		for i := range obj.references {
			obj.references[i] = NULL
		}
	case kind.IsPrimitive():
		obj.primitives = make([]byte, int(length)*kind.ElementSize())
	default:
		VM.FatalUnreachable("array class %s with void component", arrayClass.Name())
	}

	size := uint64(int(length) * kind.ElementSize())
	atomic.AddUint64(&this.bytesAllocated[kind], size)
	atomic.AddUint64(&this.arraysMade[kind], 1)
	this.logger.Debug("array allocated", "class", arrayClass.PrettyName(), "length", length, "bytes", size)
	return Reference{obj}
}

// NewObject allocates a plain instance with all fields at their defaults.
func (this *Heap) NewObject(class *Class) ObjectRef {
	vmAssert(!class.IsArray(), "NewObject on array class %s", class.Name())
	atomic.AddUint64(&this.objectsMade, 1)
	return Reference{&Object{class: class}}
}

// AllocatedBytes reports the bytes handed out for arrays of the given
// component kind since boot.
func (this *Heap) AllocatedBytes(kind Kind) uint64 {
	return atomic.LoadUint64(&this.bytesAllocated[kind])
}

// TotalAllocated reports the total array bytes handed out since boot.
func (this *Heap) TotalAllocated() uint64 {
	var total uint64
	for k := 0; k < kindCount; k++ {
		total += atomic.LoadUint64(&this.bytesAllocated[k])
	}
	return total
}

//--------------------------------------------------------------------------------------
// Convenience constructors used by natives, tests and embedders.

func (this *CVM) NewByteArray(values ...Byte) ArrayRef {
	arr := this.Heap.NewArray(this.FindArrayClass(BYTE), Int(len(values)))
	for i, v := range values {
		arr.SetArrayElement(Int(i), v)
	}
	return arr
}

func (this *CVM) NewCharArray(values ...Char) ArrayRef {
	arr := this.Heap.NewArray(this.FindArrayClass(CHAR), Int(len(values)))
	for i, v := range values {
		arr.SetArrayElement(Int(i), v)
	}
	return arr
}

func (this *CVM) NewIntArray(values ...Int) ArrayRef {
	arr := this.Heap.NewArray(this.FindArrayClass(INT), Int(len(values)))
	for i, v := range values {
		arr.SetArrayElement(Int(i), v)
	}
	return arr
}

func (this *CVM) NewLongArray(values ...Long) ArrayRef {
	arr := this.Heap.NewArray(this.FindArrayClass(LONG), Int(len(values)))
	for i, v := range values {
		arr.SetArrayElement(Int(i), v)
	}
	return arr
}

func (this *CVM) NewObjectArray(componentClass *Class, length Int) ArrayRef {
	return this.Heap.NewArray(this.FindArrayClass(componentClass), length)
}
