package cvm

import (
	"strings"
	"testing"
)

func setupVM(t *testing.T) *CVM {
	t.Helper()
	CVM_init(nil)
	return VM
}

func TestThrowableError(t *testing.T) {
	vm := setupVM(t)

	err := vm.ArrayCopy(NULL, 0, NULL, 0, 0)
	if err == nil {
		t.Fatal("expected an error from a null copy")
	}
	thrown, ok := AsThrowable(err)
	if !ok {
		t.Fatalf("expected a *Throwable, got %T", err)
	}
	if !thrown.Is(ExNullPointer) {
		t.Errorf("wrong exception class, got %v, want %v", thrown.ExceptionClass, ExNullPointer)
	}
	if want := "java.lang.NullPointerException: src == null"; err.Error() != want {
		t.Errorf("wrong error string, got %q, want %q", err.Error(), want)
	}
}

func TestSystemSettings(t *testing.T) {
	vm := setupVM(t)

	if got := vm.GetSystemSetting("vm.checks"); got != "1" {
		t.Errorf("wrong vm.checks default, got %q, want %q", got, "1")
	}
	vm.SetSystemSetting("test.key", "value")
	if got := vm.GetSystemSetting("test.key"); got != "value" {
		t.Errorf("wrong setting, got %q, want %q", got, "value")
	}
}

func TestCVMInitIdempotent(t *testing.T) {
	vm := setupVM(t)
	object := vm.FindClass("java/lang/Object")

	CVM_init(nil)
	if vm.FindClass("java/lang/Object") != object {
		t.Error("re-init replaced bootstrap classes")
	}
}

func TestCallNativeUnknownQualifier(t *testing.T) {
	vm := setupVM(t)

	_, err := vm.CallNative("java/lang/System.nope()V")
	if err == nil {
		t.Fatal("expected an error for an unregistered native")
	}
	if !strings.Contains(err.Error(), "UnsatisfiedLinkError") {
		t.Errorf("wrong error, got %v", err)
	}
}

func TestCallNativeDispatch(t *testing.T) {
	vm := setupVM(t)

	arr := vm.NewByteArray(9, 8, 7)
	dst := vm.NewByteArray(0, 0, 0)
	ret, err := vm.CallNative(
		"java/lang/System.arraycopy(Ljava/lang/Object;ILjava/lang/Object;II)V",
		arr, Int(0), dst, Int(0), Int(3))
	if err != nil {
		t.Fatalf("arraycopy through CallNative failed: %v", err)
	}
	if !ret.(Reference).IsNull() {
		t.Errorf("void native should return NULL, got %v", ret)
	}
	if got := dst.GetArrayElement(2).(Byte); got != 7 {
		t.Errorf("wrong copied element, got %v, want %v", got, 7)
	}
}
