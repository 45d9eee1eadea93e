package cvm

func register_java_lang_reflect_Array() {
	VM.RegisterNative("java/lang/reflect/Array.createObjectArray(Ljava/lang/Class;I)Ljava/lang/Object;", JDK_java_lang_reflect_Array_createObjectArray)
	VM.RegisterNative("java/lang/reflect/Array.createMultiArray(Ljava/lang/Class;[I)Ljava/lang/Object;", JDK_java_lang_reflect_Array_createMultiArray)
}

// private static native Object createObjectArray(Class<?> componentType, int length)
func JDK_java_lang_reflect_Array_createObjectArray(elementClass JavaLangClass, length Int) Reference {
	vmAssert(!elementClass.IsNull(), "createObjectArray with null element class")
	if length < 0 {
		VM.Throw(ExNegativeArraySize, "%d", length)
	}
	arrayClass := VM.FindArrayClass(elementClass.AsType())
	if arrayClass == nil {
		// Resolution failure has already been signaled by the registry.
		return NULL
	}
	return VM.Heap.NewArray(arrayClass, length)
}

// private static native Object createMultiArray(Class<?> componentType, int[] dimensions)
func JDK_java_lang_reflect_Array_createMultiArray(elementClass JavaLangClass, dimArray ArrayRef) Reference {
	vmAssert(!elementClass.IsNull(), "createMultiArray with null element class")
	vmAssert(!dimArray.IsNull(), "createMultiArray with null dimension array")
	vmAssert(dimArray.Class().ComponentType() == INT, "dimension array must be int[], have %s", PrettyTypeOf(dimArray))

	numDimensions := dimArray.ArrayLength()
	if numDimensions == 0 {
		VM.Throw(ExIllegalArgument, "Invalid dimensions array: length 0")
	}
	dims := make([]Int, numDimensions)
	for i := Int(0); i < numDimensions; i++ {
		d := dimArray.GetArrayElement(i).(Int)
		if d < 0 {
			VM.Throw(ExNegativeArraySize, "Dimension %d: %d", i, d)
		}
		dims[i] = d
	}
	return VM.createMultiArray(elementClass.AsType(), dims)
}

//--------------------------------------------------------------------------------------
// Library-facing wrappers; thrown exceptions come back as *Throwable errors.

// CreateObjectArray builds a zero-filled array of the given element type.
func (this *CVM) CreateObjectArray(elementType Type, length Int) (arr ArrayRef, err error) {
	arr = NULL
	defer this.catchThrowable(&err)
	arr = JDK_java_lang_reflect_Array_createObjectArray(elementType.ClassObject(), length)
	return arr, nil
}

// CreateMultiArray builds a tree of nested arrays, one level per dimension,
// outermost dimension first.
func (this *CVM) CreateMultiArray(elementType Type, dimensions []Int) (arr ArrayRef, err error) {
	arr = NULL
	defer this.catchThrowable(&err)
	dimArray := this.NewIntArray(dimensions...)
	arr = JDK_java_lang_reflect_Array_createMultiArray(elementType.ClassObject(), dimArray)
	return arr, nil
}
