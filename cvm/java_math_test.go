package cvm

import "testing"

func TestFloatRawBitsRoundTrip(t *testing.T) {
	vm := setupVM(t)

	bits := JDK_java_lang_Float_floatToRawIntBits(Float(-1.5))
	if got := JDK_java_lang_Float_intBitsToFloat(bits); got != -1.5 {
		t.Errorf("wrong float round-trip, got %v, want %v", got, -1.5)
	}

	longBits := JDK_java_lang_Double_doubleToRawLongBits(Double(2.75))
	if got := JDK_java_lang_Double_longBitsToDouble(longBits); got != 2.75 {
		t.Errorf("wrong double round-trip, got %v, want %v", got, 2.75)
	}

	ret, err := vm.CallNative("java/lang/StrictMath.pow(DD)D", Double(2), Double(10))
	if err != nil {
		t.Fatalf("pow through CallNative failed: %v", err)
	}
	if got := ret.(Double); got != 1024 {
		t.Errorf("wrong pow result, got %v, want %v", got, 1024)
	}
}
