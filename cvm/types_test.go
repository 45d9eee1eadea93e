package cvm

import "testing"

func TestKindElementSize(t *testing.T) {
	setupVM(t)

	cases := []struct {
		kind Kind
		size int
	}{
		{KindBoolean, 1}, {KindByte, 1},
		{KindChar, 2}, {KindShort, 2},
		{KindInt, 4}, {KindFloat, 4},
		{KindLong, 8}, {KindDouble, 8},
		{KindReference, 8}, {KindVoid, 0},
	}
	for _, c := range cases {
		if got := c.kind.ElementSize(); got != c.size {
			t.Errorf("wrong element size for %v, got %v, want %v", c.kind, got, c.size)
		}
	}
}

func TestPrimitiveSingletons(t *testing.T) {
	setupVM(t)

	if BYTE.Descriptor() != "B" || LONG.Descriptor() != "J" || BOOLEAN.Descriptor() != "Z" {
		t.Error("wrong primitive descriptors")
	}
	if !KindInt.IsPrimitive() || KindReference.IsPrimitive() || KindVoid.IsPrimitive() {
		t.Error("wrong IsPrimitive classification")
	}
}

func TestIsAssignableFromHierarchy(t *testing.T) {
	vm := setupVM(t)

	object := vm.FindClass("java/lang/Object")
	number := vm.FindClass("java/lang/Number")
	integer := vm.FindClass("java/lang/Integer")
	str := vm.FindClass("java/lang/String")
	serializable := vm.FindClass("java/io/Serializable")

	cases := []struct {
		name     string
		dst, src *Class
		want     bool
	}{
		{"reflexive", number, number, true},
		{"subclass", number, integer, true},
		{"transitive to Object", object, integer, true},
		{"not symmetric", integer, number, false},
		{"unrelated", number, str, false},
		{"interface via super", serializable, integer, true},
		{"interface direct", serializable, str, true},
		{"interface reversed", str, serializable, false},
	}
	for _, c := range cases {
		if got := c.dst.IsAssignableFrom(c.src); got != c.want {
			t.Errorf("%s: IsAssignableFrom(%s <- %s) = %v, want %v",
				c.name, c.dst.Name(), c.src.Name(), got, c.want)
		}
	}
}

func TestIsAssignableFromArrays(t *testing.T) {
	vm := setupVM(t)

	object := vm.FindClass("java/lang/Object")
	cloneable := vm.FindClass("java/lang/Cloneable")
	serializable := vm.FindClass("java/io/Serializable")
	numberArr := vm.FindArrayClass(javaLangNumber)
	integerArr := vm.FindArrayClass(javaLangInteger)
	stringArr := vm.FindArrayClass(javaLangString)
	intArr := vm.FindArrayClass(INT)
	byteArr := vm.FindArrayClass(BYTE)
	objectArrArr := vm.FindArrayClass(vm.FindArrayClass(javaLangObject))

	cases := []struct {
		name     string
		dst, src *Class
		want     bool
	}{
		{"array reflexive", intArr, intArr, true},
		{"covariant reference arrays", numberArr, integerArr, true},
		{"covariance not symmetric", integerArr, numberArr, false},
		{"unrelated reference arrays", numberArr, stringArr, false},
		{"primitive arrays identity only", intArr, byteArr, false},
		{"array to Object", object, intArr, true},
		{"array to Cloneable", cloneable, stringArr, true},
		{"array to Serializable", serializable, intArr, true},
		{"nested array covariance", objectArrArr, vm.FindArrayClass(stringArr), true},
		{"array dim mismatch", stringArr, objectArrArr, false},
	}
	for _, c := range cases {
		if got := c.dst.IsAssignableFrom(c.src); got != c.want {
			t.Errorf("%s: IsAssignableFrom(%s <- %s) = %v, want %v",
				c.name, c.dst.Name(), c.src.Name(), got, c.want)
		}
	}
}

func TestPrettyNames(t *testing.T) {
	vm := setupVM(t)

	cases := []struct {
		class *Class
		want  string
	}{
		{vm.FindClass("java/lang/String"), "java.lang.String"},
		{vm.FindArrayClass(INT), "int[]"},
		{vm.FindArrayClass(javaLangObject), "java.lang.Object[]"},
		{vm.FindArrayClass(vm.FindArrayClass(DOUBLE)), "double[][]"},
	}
	for _, c := range cases {
		if got := c.class.PrettyName(); got != c.want {
			t.Errorf("wrong pretty name for %s, got %q, want %q", c.class.Name(), got, c.want)
		}
	}
}

func TestClassObjectRoundTrip(t *testing.T) {
	setupVM(t)

	ref := javaLangNumber.ClassObject()
	if ref.IsNull() {
		t.Fatal("class object is null")
	}
	if got := ref.AsType(); got != javaLangNumber {
		t.Errorf("wrong mirrored type, got %v", got)
	}
	if again := javaLangNumber.ClassObject(); again != ref {
		t.Error("class objects are not canonical")
	}
	if INT.ClassObject().AsType() != INT {
		t.Error("primitive class object does not mirror its type")
	}
}
