package cvm

/*
Type system:

<Type>
  |- PrimitiveType
        |- *ByteType
        |- *ShortType
        |- *CharType
        |- *IntType
        |- *LongType
        |- *FloatType
        |- *DoubleType
        |- *BooleanType
        |- *VoidType
  |- *Class
*/

type Type interface {
	Name() string
	Descriptor() string
	Kind() Kind
	ClassObject() JavaLangClass
}

//---------------------------------------------------------------------------------------
/*
Value system:

<Value>
	|- Byte     -> int8
	|- Short    -> int16
	|- Char     -> uint16
	|- Int      -> int32
	|- Long     -> int64
	|- Float    -> float32
	|- Double   -> float64
	|- Boolean  -> int8
	|- Reference ( -> *Object)
		|= : ObjectRef
		|= : ArrayRef
	    |= : JavaLangClass

ObjectRef and ArrayRef are only reference values holding a pointer to a real heap
object <Object>. The reference itself will be never nil, but its containing pointer
can be nil, which means the reference is `NULL` in Java.
In Java, all the values are passed by copying, so never use pointers of these values
including Reference.
*/
type Value interface {
	Type() Type
}

type Byte int8
type Short int16
type Char uint16
type Int int32
type Long int64
type Float float32
type Double float64
type Boolean int8

const (
	TRUE  = Boolean(1)
	FALSE = Boolean(0)
)

func (this Boolean) IsTrue() bool {
	return this == TRUE
}

func (this Byte) Type() Type    { return BYTE }
func (this Short) Type() Type   { return SHORT }
func (this Char) Type() Type    { return CHAR }
func (this Int) Type() Type     { return INT }
func (this Long) Type() Type    { return LONG }
func (this Float) Type() Type   { return FLOAT }
func (this Double) Type() Type  { return DOUBLE }
func (this Boolean) Type() Type { return BOOLEAN }

// Reference is a non-nil value wrapping a possibly-nil heap object pointer.
type Reference struct {
	oop *Object
}

// ObjectRef and ArrayRef only document intent at call sites; the
// representation is the same.
type ObjectRef = Reference
type ArrayRef = Reference

// JavaLangClass is a reference to a java/lang/Class instance mirroring a Type.
type JavaLangClass = Reference

var NULL = Reference{nil}

func (this Reference) IsNull() bool {
	return this.oop == nil
}

func (this Reference) Class() *Class {
	return this.oop.class
}

func (this Reference) IsArray() bool {
	return this.oop != nil && this.oop.class.IsArray()
}

func (this Reference) Type() Type {
	if this.oop == nil {
		return nil
	}
	return this.oop.class
}

// AsType returns the Type mirrored by a java/lang/Class reference.
func (this Reference) AsType() Type {
	return this.oop.mirroredType
}

// Object is a heap cell: either a plain instance (fields), a primitive array
// (raw element storage, ART-style) or a reference array (reference slots).
type Object struct {
	class        *Class
	fields       []Value
	primitives   []byte
	references   []Value
	length       Int
	mirroredType Type // set only for java/lang/Class instances
}
