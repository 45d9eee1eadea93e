package cvm

import "testing"

func TestCreateObjectArray(t *testing.T) {
	vm := setupVM(t)

	arr, err := vm.CreateObjectArray(javaLangString, 5)
	if err != nil {
		t.Fatalf("CreateObjectArray failed: %v", err)
	}
	if got := arr.ArrayLength(); got != 5 {
		t.Errorf("wrong length, got %v, want %v", got, 5)
	}
	if got := arr.Class().ComponentType(); got != javaLangString {
		t.Errorf("wrong component type, got %v, want java/lang/String", got)
	}
	if got := arr.Class().PrettyName(); got != "java.lang.String[]" {
		t.Errorf("wrong class name, got %q, want %q", got, "java.lang.String[]")
	}
	for i := Int(0); i < 5; i++ {
		if !arr.GetArrayElement(i).(Reference).IsNull() {
			t.Errorf("slot %d not at default value", i)
		}
	}
}

func TestCreateObjectArrayNegativeLength(t *testing.T) {
	vm := setupVM(t)
	before := vm.Heap.AllocatedBytes(KindReference)

	_, err := vm.CreateObjectArray(javaLangString, -1)
	thrown := expectThrown(t, err, ExNegativeArraySize)
	if thrown.Message != "-1" {
		t.Errorf("wrong message, got %q, want %q", thrown.Message, "-1")
	}
	if after := vm.Heap.AllocatedBytes(KindReference); after != before {
		t.Errorf("allocation happened despite the failure: %d -> %d bytes", before, after)
	}
}

func TestCreateObjectArrayVoidComponent(t *testing.T) {
	vm := setupVM(t)

	_, err := vm.CreateObjectArray(VOID, 1)
	expectThrown(t, err, ExIllegalArgument)
}

func TestCreateMultiArray(t *testing.T) {
	vm := setupVM(t)

	arr, err := vm.CreateMultiArray(javaLangString, []Int{2, 3})
	if err != nil {
		t.Fatalf("CreateMultiArray failed: %v", err)
	}
	if got := arr.Class().PrettyName(); got != "java.lang.String[][]" {
		t.Errorf("wrong outer class, got %q, want %q", got, "java.lang.String[][]")
	}
	if got := arr.ArrayLength(); got != 2 {
		t.Errorf("wrong outer length, got %v, want %v", got, 2)
	}
	seen := map[*Object]bool{}
	for i := Int(0); i < 2; i++ {
		sub := arr.GetArrayElement(i).(Reference)
		if sub.IsNull() {
			t.Fatalf("slot %d not populated", i)
		}
		if got := sub.Class().ComponentType(); got != javaLangString {
			t.Errorf("wrong inner component type, got %v", got)
		}
		if got := sub.ArrayLength(); got != 3 {
			t.Errorf("wrong inner length, got %v, want %v", got, 3)
		}
		if seen[sub.oop] {
			t.Error("sub-arrays are shared, want fresh allocations")
		}
		seen[sub.oop] = true
	}
}

func TestCreateMultiArrayPrimitiveElements(t *testing.T) {
	vm := setupVM(t)

	arr, err := vm.CreateMultiArray(INT, []Int{2, 2})
	if err != nil {
		t.Fatalf("CreateMultiArray failed: %v", err)
	}
	if got := arr.Class().PrettyName(); got != "int[][]" {
		t.Errorf("wrong class, got %q, want %q", got, "int[][]")
	}
	inner := arr.GetArrayElement(1).(Reference)
	if got := inner.GetArrayElement(0).(Int); got != 0 {
		t.Errorf("inner elements not zero-filled, got %v", got)
	}
}

func TestCreateMultiArraySingleDimension(t *testing.T) {
	vm := setupVM(t)

	arr, err := vm.CreateMultiArray(javaLangInteger, []Int{4})
	if err != nil {
		t.Fatalf("CreateMultiArray failed: %v", err)
	}
	if got := arr.Class().PrettyName(); got != "java.lang.Integer[]" {
		t.Errorf("wrong class, got %q, want %q", got, "java.lang.Integer[]")
	}
	if got := arr.ArrayLength(); got != 4 {
		t.Errorf("wrong length, got %v, want %v", got, 4)
	}
}

func TestCreateMultiArrayZeroDimension(t *testing.T) {
	vm := setupVM(t)

	arr, err := vm.CreateMultiArray(javaLangString, []Int{2, 0})
	if err != nil {
		t.Fatalf("CreateMultiArray failed: %v", err)
	}
	for i := Int(0); i < 2; i++ {
		if got := arr.GetArrayElement(i).(Reference).ArrayLength(); got != 0 {
			t.Errorf("wrong inner length, got %v, want %v", got, 0)
		}
	}
}

func TestCreateMultiArrayEmptyDimensions(t *testing.T) {
	vm := setupVM(t)

	_, err := vm.CreateMultiArray(javaLangString, nil)
	expectThrown(t, err, ExIllegalArgument)
}

func TestCreateMultiArrayNegativeDimension(t *testing.T) {
	vm := setupVM(t)

	_, err := vm.CreateMultiArray(javaLangString, []Int{2, -3})
	thrown := expectThrown(t, err, ExNegativeArraySize)
	if want := "Dimension 1: -3"; thrown.Message != want {
		t.Errorf("wrong message, got %q, want %q", thrown.Message, want)
	}
}

func TestCreateObjectArrayNative(t *testing.T) {
	vm := setupVM(t)

	ret, err := vm.CallNative(
		"java/lang/reflect/Array.createObjectArray(Ljava/lang/Class;I)Ljava/lang/Object;",
		javaLangNumber.ClassObject(), Int(3))
	if err != nil {
		t.Fatalf("createObjectArray through CallNative failed: %v", err)
	}
	arr := ret.(Reference)
	if got := arr.Class().PrettyName(); got != "java.lang.Number[]" {
		t.Errorf("wrong class, got %q, want %q", got, "java.lang.Number[]")
	}
}
