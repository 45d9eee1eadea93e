package cvm

import (
	"reflect"
)

// NativeMethodRegistry maps JNI-style qualifiers
// ("java/lang/System.arraycopy(Ljava/lang/Object;ILjava/lang/Object;II)V")
// to Go implementations.
type NativeMethodRegistry map[string]reflect.Value

func (this NativeMethodRegistry) RegisterNative(qualifier string, function interface{}) {
	this[qualifier] = reflect.ValueOf(function)
}

func (this NativeMethodRegistry) unregister(qualifier string, function interface{}) {
	delete(this, qualifier)
}

func (this NativeMethodRegistry) FindNative(qualifier string) (reflect.Value, bool) {
	fun, found := this[qualifier]
	return fun, found
}

func (this NativeMethodRegistry) RegisterNatives() {
	register_java_lang_System()
	register_java_lang_reflect_Array()
	register_java_lang_math()
}

// CallNative dispatches a registered native by qualifier. It is the thin
// stand-in for the binding layer of the full VM: arguments are already
// decoded Values, thrown exceptions come back as *Throwable errors, and a
// void native returns NULL.
func (this *CVM) CallNative(qualifier string, args ...Value) (ret Value, err error) {
	ret = NULL
	defer this.catchThrowable(&err)

	fun, found := this.FindNative(qualifier)
	if !found {
		this.Throw("java/lang/UnsatisfiedLinkError", "%s", qualifier)
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}
	out := fun.Call(in)
	if len(out) > 0 {
		ret = out[0].Interface().(Value)
	}
	return ret, nil
}
