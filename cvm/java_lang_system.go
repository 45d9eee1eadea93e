package cvm

/*
We make guarantees about the atomicity of accesses to primitive variables.
These guarantees also apply to elements of arrays: the bulk copy paths never
tear an element, and 64-bit elements may move as two 32-bit halves.
*/

func register_java_lang_System() {
	VM.RegisterNative("java/lang/System.arraycopy(Ljava/lang/Object;ILjava/lang/Object;II)V", JDK_java_lang_System_arraycopy)

	VM.RegisterNative("java/lang/System.arraycopyBooleanUnchecked([ZI[ZII)V", JDK_java_lang_System_arraycopyBooleanUnchecked)
	VM.RegisterNative("java/lang/System.arraycopyByteUnchecked([BI[BII)V", JDK_java_lang_System_arraycopyByteUnchecked)
	VM.RegisterNative("java/lang/System.arraycopyCharUnchecked([CI[CII)V", JDK_java_lang_System_arraycopyCharUnchecked)
	VM.RegisterNative("java/lang/System.arraycopyShortUnchecked([SI[SII)V", JDK_java_lang_System_arraycopyShortUnchecked)
	VM.RegisterNative("java/lang/System.arraycopyIntUnchecked([II[III)V", JDK_java_lang_System_arraycopyIntUnchecked)
	VM.RegisterNative("java/lang/System.arraycopyLongUnchecked([JI[JII)V", JDK_java_lang_System_arraycopyLongUnchecked)
	VM.RegisterNative("java/lang/System.arraycopyFloatUnchecked([FI[FII)V", JDK_java_lang_System_arraycopyFloatUnchecked)
	VM.RegisterNative("java/lang/System.arraycopyDoubleUnchecked([DI[DII)V", JDK_java_lang_System_arraycopyDoubleUnchecked)
}

func throwArrayStoreNotAnArray(identifier string, ref Reference) {
	VM.Throw(ExArrayStore, "%s of type %s is not an array", identifier, PrettyTypeOf(ref))
}

// public static native void arraycopy(Object src, int srcPos, Object dst, int dstPos, int length)
func JDK_java_lang_System_arraycopy(src Reference, srcPos Int, dst Reference, dstPos Int, length Int) {
	// The API is defined in terms of length, but length is somewhat
	// overloaded so we use count.
	count := length

	// Null pointer checks.
	if src.IsNull() {
		VM.Throw(ExNullPointer, "src == null")
	}
	if dst.IsNull() {
		VM.Throw(ExNullPointer, "dst == null")
	}

	// Make sure source and destination are both arrays.
	if !src.IsArray() {
		throwArrayStoreNotAnArray("source", src)
	}
	if !dst.IsArray() {
		throwArrayStoreNotAnArray("destination", dst)
	}

	// Bounds checking. The pos > len - count form cannot overflow.
	if srcPos < 0 || dstPos < 0 || count < 0 ||
		srcPos > src.ArrayLength()-count ||
		dstPos > dst.ArrayLength()-count {
		VM.Throw(ExArrayIndexOOB,
			"src.length=%d srcPos=%d dst.length=%d dstPos=%d length=%d",
			src.ArrayLength(), srcPos, dst.ArrayLength(), dstPos, count)
	}

	dstComponentType := dst.Class().ComponentType()
	srcComponentType := src.Class().ComponentType()
	dstComponentKind := dstComponentType.Kind()

	if srcComponentType == dstComponentType {
		// Trivial assignability. src and dst may be the same array, so
		// every branch here must be overlap-safe.
		switch dstComponentKind {
		case KindVoid:
			VM.FatalUnreachable("cannot have arrays of type void")
		case KindBoolean, KindByte,
			KindChar, KindShort,
			KindInt, KindFloat,
			KindLong, KindDouble:
			// Boolean moves as byte, char as short, float as int and
			// double as long; only the size class matters.
			dst.Memmove(dstPos, src, srcPos, count)
		case KindReference:
			dst.AssignableMemmove(dstPos, src, srcPos, count)
		default:
			VM.FatalUnreachable("unknown array type: %s", PrettyTypeOf(src))
		}
		return
	}

	// If one of the arrays holds a primitive type the other array must hold
	// the exact same type. Note the asymmetric gate: a primitive destination
	// rejects any differing source here, reference or not.
	if dstComponentKind != KindReference || srcComponentType.Kind().IsPrimitive() {
		VM.Throw(ExArrayStore, "Incompatible types: src=%s, dst=%s",
			PrettyTypeOf(src), PrettyTypeOf(dst))
	}

	// Arrays hold distinct reference types and so can't alias - memcpy
	// instead of memmove. If we're assigning into say Object[] then we don't
	// need per element checks.
	if dstComponentType.(*Class).IsAssignableFrom(srcComponentType.(*Class)) {
		dst.AssignableMemcpy(dstPos, src, srcPos, count)
		return
	}

	// This code is never run under a recording transaction.
	vmAssert(!VM.inTransaction, "checked arraycopy inside a transaction")
	VM.copyLogger.Debug("element-wise checked copy",
		"src", PrettyTypeOf(src), "dst", PrettyTypeOf(dst), "count", count)
	dst.AssignableCheckingMemcpy(dstPos, src, srcPos, count)
}

//--------------------------------------------------------------------------------------
// Unchecked fast paths. Callers have already proven the component types are
// the registry's singleton for the kind and the range is in bounds; nothing
// is re-validated beyond debug assertions.

func arraycopyPrimitiveUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int, component Type) {
	vmAssert(!src.IsNull() && !dst.IsNull(), "arraycopy%sUnchecked on null array", component.Name())
	vmAssert(count >= 0, "negative count %d", count)
	vmAssert(src.Class() == dst.Class(), "component type mismatch: %s vs %s",
		PrettyTypeOf(src), PrettyTypeOf(dst))
	vmAssert(src.Class().ComponentType() == component, "expected %s[] source, have %s",
		component.Name(), PrettyTypeOf(src))
	vmAssert(srcPos >= 0 && srcPos <= src.ArrayLength()-count, "source range out of bounds")
	vmAssert(dstPos >= 0 && dstPos <= dst.ArrayLength()-count, "destination range out of bounds")

	dst.Memmove(dstPos, src, srcPos, count)
}

// public static native void arraycopyBooleanUnchecked(boolean[] src, int srcPos, boolean[] dst, int dstPos, int count)
func JDK_java_lang_System_arraycopyBooleanUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int) {
	arraycopyPrimitiveUnchecked(src, srcPos, dst, dstPos, count, BOOLEAN)
}

func JDK_java_lang_System_arraycopyByteUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int) {
	arraycopyPrimitiveUnchecked(src, srcPos, dst, dstPos, count, BYTE)
}

func JDK_java_lang_System_arraycopyCharUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int) {
	arraycopyPrimitiveUnchecked(src, srcPos, dst, dstPos, count, CHAR)
}

func JDK_java_lang_System_arraycopyShortUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int) {
	arraycopyPrimitiveUnchecked(src, srcPos, dst, dstPos, count, SHORT)
}

func JDK_java_lang_System_arraycopyIntUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int) {
	arraycopyPrimitiveUnchecked(src, srcPos, dst, dstPos, count, INT)
}

func JDK_java_lang_System_arraycopyLongUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int) {
	arraycopyPrimitiveUnchecked(src, srcPos, dst, dstPos, count, LONG)
}

func JDK_java_lang_System_arraycopyFloatUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int) {
	arraycopyPrimitiveUnchecked(src, srcPos, dst, dstPos, count, FLOAT)
}

func JDK_java_lang_System_arraycopyDoubleUnchecked(src ArrayRef, srcPos Int, dst ArrayRef, dstPos Int, count Int) {
	arraycopyPrimitiveUnchecked(src, srcPos, dst, dstPos, count, DOUBLE)
}

//--------------------------------------------------------------------------------------

// ArrayCopy is the library-facing wrapper around the arraycopy native:
// thrown exceptions come back as *Throwable errors.
func (this *CVM) ArrayCopy(src Reference, srcPos Int, dst Reference, dstPos Int, length Int) (err error) {
	defer this.catchThrowable(&err)
	JDK_java_lang_System_arraycopy(src, srcPos, dst, dstPos, length)
	return nil
}
