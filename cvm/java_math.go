package cvm

import "math"

// The raw-bits natives share the storage convention of primitive arrays:
// floats live as their IEEE-754 bit patterns in int-sized slots, doubles in
// long-sized slots.

func register_java_lang_math() {
	VM.RegisterNative("java/lang/StrictMath.pow(DD)D", JDK_java_lang_StrictMath_pow)

	VM.RegisterNative("java/lang/Double.doubleToRawLongBits(D)J", JDK_java_lang_Double_doubleToRawLongBits)
	VM.RegisterNative("java/lang/Double.longBitsToDouble(J)D", JDK_java_lang_Double_longBitsToDouble)

	VM.RegisterNative("java/lang/Float.floatToRawIntBits(F)I", JDK_java_lang_Float_floatToRawIntBits)
	VM.RegisterNative("java/lang/Float.intBitsToFloat(I)F", JDK_java_lang_Float_intBitsToFloat)
}

// public static native double pow(double base, double exponent)
func JDK_java_lang_StrictMath_pow(base Double, exponent Double) Double {
	return Double(math.Pow(float64(base), float64(exponent)))
}

// public static native long doubleToRawLongBits(double value)
func JDK_java_lang_Double_doubleToRawLongBits(value Double) Long {
	bits := math.Float64bits(float64(value))
	return Long(int64(bits))
}

// public static native double longBitsToDouble(long bits)
func JDK_java_lang_Double_longBitsToDouble(bits Long) Double {
	value := math.Float64frombits(uint64(bits))
	return Double(value)
}

// public static native int floatToRawIntBits(float value)
func JDK_java_lang_Float_floatToRawIntBits(value Float) Int {
	bits := math.Float32bits(float32(value))
	return Int(int32(bits))
}

// public static native float intBitsToFloat(int bits)
func JDK_java_lang_Float_intBitsToFloat(bits Int) Float {
	value := math.Float32frombits(uint32(bits))
	return Float(value)
}
