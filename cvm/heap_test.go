package cvm

import "testing"

func TestHeapZeroFill(t *testing.T) {
	vm := setupVM(t)

	longs := vm.Heap.NewArray(vm.FindArrayClass(LONG), 4)
	for i := Int(0); i < 4; i++ {
		if got := longs.GetArrayElement(i).(Long); got != 0 {
			t.Errorf("slot %d not zeroed, got %v", i, got)
		}
	}

	refs := vm.Heap.NewArray(vm.FindArrayClass(javaLangObject), 4)
	for i := Int(0); i < 4; i++ {
		if !refs.GetArrayElement(i).(Reference).IsNull() {
			t.Errorf("reference slot %d not NULL", i)
		}
	}
}

func TestHeapAccounting(t *testing.T) {
	vm := setupVM(t)

	before := vm.Heap.AllocatedBytes(KindLong)
	total := vm.Heap.TotalAllocated()
	vm.Heap.NewArray(vm.FindArrayClass(LONG), 10)

	if got := vm.Heap.AllocatedBytes(KindLong); got != before+80 {
		t.Errorf("wrong long accounting, got %v, want %v", got, before+80)
	}
	if got := vm.Heap.TotalAllocated(); got < total+80 {
		t.Errorf("wrong total accounting, got %v, want at least %v", got, total+80)
	}
}

func TestHeapNewObject(t *testing.T) {
	vm := setupVM(t)

	obj := vm.Heap.NewObject(javaLangInteger)
	if obj.IsNull() {
		t.Fatal("NewObject returned NULL")
	}
	if obj.IsArray() {
		t.Error("plain object claims to be an array")
	}
	if got := obj.Class(); got != javaLangInteger {
		t.Errorf("wrong class, got %v", got.Name())
	}
}
