package cvm

import "strings"

// Kind is the closed set of array component categories. Dispatch over Kind is
// always an exhaustive switch; KindVoid reaching a copy or allocation path
// signals a corrupted type model and is fatal.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindFloat
	KindLong
	KindDouble
	KindReference

	kindCount = int(KindReference) + 1
)

const referenceSlotSize = 8 // pointer width of the runtime

// ElementSize returns the storage size in bytes of one array element of this
// kind. Void has no storage.
func (this Kind) ElementSize() int {
	switch this {
	case KindBoolean, KindByte:
		return 1
	case KindChar, KindShort:
		return 2
	case KindInt, KindFloat:
		return 4
	case KindLong, KindDouble:
		return 8
	case KindReference:
		return referenceSlotSize
	case KindVoid:
		return 0
	}
	VM.FatalUnreachable("unknown kind: %d", this)
	return 0
}

func (this Kind) IsPrimitive() bool {
	return this != KindReference && this != KindVoid
}

func (this Kind) String() string {
	switch this {
	case KindVoid:
		return "void"
	case KindBoolean:
		return "boolean"
	case KindByte:
		return "byte"
	case KindChar:
		return "char"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindReference:
		return "reference"
	}
	return "unknown"
}

//--------------------------------------------------------------------------------------
// Primitive types are singletons; component type identity comparisons rely on it.

type ByteType struct{}
type ShortType struct{}
type CharType struct{}
type IntType struct{}
type LongType struct{}
type FloatType struct{}
type DoubleType struct{}
type BooleanType struct{}
type VoidType struct{}

var (
	BYTE    = &ByteType{}
	SHORT   = &ShortType{}
	CHAR    = &CharType{}
	INT     = &IntType{}
	LONG    = &LongType{}
	FLOAT   = &FloatType{}
	DOUBLE  = &DoubleType{}
	BOOLEAN = &BooleanType{}
	VOID    = &VoidType{}
)

func (this *ByteType) Name() string    { return "byte" }
func (this *ShortType) Name() string   { return "short" }
func (this *CharType) Name() string    { return "char" }
func (this *IntType) Name() string     { return "int" }
func (this *LongType) Name() string    { return "long" }
func (this *FloatType) Name() string   { return "float" }
func (this *DoubleType) Name() string  { return "double" }
func (this *BooleanType) Name() string { return "boolean" }
func (this *VoidType) Name() string    { return "void" }

func (this *ByteType) Descriptor() string    { return "B" }
func (this *ShortType) Descriptor() string   { return "S" }
func (this *CharType) Descriptor() string    { return "C" }
func (this *IntType) Descriptor() string     { return "I" }
func (this *LongType) Descriptor() string    { return "J" }
func (this *FloatType) Descriptor() string   { return "F" }
func (this *DoubleType) Descriptor() string  { return "D" }
func (this *BooleanType) Descriptor() string { return "Z" }
func (this *VoidType) Descriptor() string    { return "V" }

func (this *ByteType) Kind() Kind    { return KindByte }
func (this *ShortType) Kind() Kind   { return KindShort }
func (this *CharType) Kind() Kind    { return KindChar }
func (this *IntType) Kind() Kind     { return KindInt }
func (this *LongType) Kind() Kind    { return KindLong }
func (this *FloatType) Kind() Kind   { return KindFloat }
func (this *DoubleType) Kind() Kind  { return KindDouble }
func (this *BooleanType) Kind() Kind { return KindBoolean }
func (this *VoidType) Kind() Kind    { return KindVoid }

func (this *ByteType) ClassObject() JavaLangClass    { return VM.classObjectFor(this) }
func (this *ShortType) ClassObject() JavaLangClass   { return VM.classObjectFor(this) }
func (this *CharType) ClassObject() JavaLangClass    { return VM.classObjectFor(this) }
func (this *IntType) ClassObject() JavaLangClass     { return VM.classObjectFor(this) }
func (this *LongType) ClassObject() JavaLangClass    { return VM.classObjectFor(this) }
func (this *FloatType) ClassObject() JavaLangClass   { return VM.classObjectFor(this) }
func (this *DoubleType) ClassObject() JavaLangClass  { return VM.classObjectFor(this) }
func (this *BooleanType) ClassObject() JavaLangClass { return VM.classObjectFor(this) }
func (this *VoidType) ClassObject() JavaLangClass    { return VM.classObjectFor(this) }

//--------------------------------------------------------------------------------------

const (
	ACC_INTERFACE = 0x0200
)

// Class is a reference type: a plain class, an interface or an array class.
// Array classes carry their component type and share name syntax with
// descriptors ("[I", "[[Ljava/lang/String;").
type Class struct {
	name          string
	accessFlags   uint16
	superClass    *Class
	interfaces    []*Class
	componentType Type // non-nil only for array classes

	classObject JavaLangClass
}

func (this *Class) Name() string { return this.name }

func (this *Class) Descriptor() string {
	if this.IsArray() {
		return this.name
	}
	return "L" + this.name + ";"
}

func (this *Class) Kind() Kind { return KindReference }

func (this *Class) ClassObject() JavaLangClass { return VM.classObjectFor(this) }

func (this *Class) IsInterface() bool {
	return this.accessFlags&ACC_INTERFACE != 0
}

func (this *Class) IsArray() bool {
	return len(this.name) > 0 && this.name[0] == '['
}

// ComponentType returns the element type of an array class, nil otherwise.
func (this *Class) ComponentType() Type {
	return this.componentType
}

// ComponentKind returns the Kind of an array class's elements.
func (this *Class) ComponentKind() Kind {
	return this.componentType.Kind()
}

func (this *Class) SuperClass() *Class { return this.superClass }

func (this *Class) IsSubClassOf(other *Class) bool {
	for c := this.superClass; c != nil; c = c.superClass {
		if c == other {
			return true
		}
	}
	return false
}

func (this *Class) Implements(iface *Class) bool {
	for c := this; c != nil; c = c.superClass {
		for _, i := range c.interfaces {
			if i == iface || i.Implements(iface) {
				return true
			}
		}
	}
	return false
}

// IsAssignableFrom reports whether a value of class src can be stored where
// this class is expected. Reflexive, non-symmetric, transitive.
func (this *Class) IsAssignableFrom(src *Class) bool {
	if this == src {
		return true
	}
	if this.IsArray() && src.IsArray() {
		dstComp := this.componentType
		srcComp := src.componentType
		if dstComp.Kind() == KindReference && srcComp.Kind() == KindReference {
			return dstComp.(*Class).IsAssignableFrom(srcComp.(*Class))
		}
		// Primitive components are compatible only on exact identity,
		// which the this == src check above already handled.
		return false
	}
	if src.IsArray() {
		// Any array is an Object, a Cloneable and a Serializable.
		return this == javaLangObject || this == javaLangCloneable || this == javaIoSerializable
	}
	if this.IsInterface() {
		return src.Implements(this)
	}
	return src.IsSubClassOf(this)
}

// PrettyName renders a class name the way java.lang.Class#getName does for
// diagnostics: "java.lang.String", "int[]", "java.lang.Object[][]".
func (this *Class) PrettyName() string {
	return prettyDescriptor(this.Descriptor())
}

func prettyDescriptor(desc string) string {
	dims := 0
	for dims < len(desc) && desc[dims] == '[' {
		dims++
	}
	elem := desc[dims:]
	var base string
	switch {
	case len(elem) == 0:
		base = "?"
	case elem[0] == 'L':
		base = strings.Replace(elem[1:len(elem)-1], "/", ".", -1)
	default:
		switch elem[0] {
		case 'B':
			base = "byte"
		case 'S':
			base = "short"
		case 'C':
			base = "char"
		case 'I':
			base = "int"
		case 'J':
			base = "long"
		case 'F':
			base = "float"
		case 'D':
			base = "double"
		case 'Z':
			base = "boolean"
		case 'V':
			base = "void"
		default:
			base = elem
		}
	}
	return base + strings.Repeat("[]", dims)
}

// PrettyTypeOf names the concrete runtime type of a reference for error
// messages; NULL prints as "null".
func PrettyTypeOf(ref Reference) string {
	if ref.IsNull() {
		return "null"
	}
	return ref.Class().PrettyName()
}
