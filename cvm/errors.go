package cvm

import "strings"

// Throwable is the Go-side carrier for a thrown Java exception. Natives raise
// it through VM.Throw (a panic); the exported wrappers and CallNative recover
// it back into an error for library callers.
type Throwable struct {
	ExceptionClass string // internal name, e.g. "java/lang/ArrayStoreException"
	Message        string
}

func (this *Throwable) Error() string {
	name := strings.Replace(this.ExceptionClass, "/", ".", -1)
	if this.Message == "" {
		return name
	}
	return name + ": " + this.Message
}

func (this *Throwable) Is(exceptionClass string) bool {
	return this.ExceptionClass == exceptionClass
}

// AsThrowable unwraps an error produced by a recovered throw.
func AsThrowable(err error) (*Throwable, bool) {
	t, ok := err.(*Throwable)
	return t, ok
}

// Exception class names raised by this core.
const (
	ExNullPointer       = "java/lang/NullPointerException"
	ExArrayStore        = "java/lang/ArrayStoreException"
	ExArrayIndexOOB     = "java/lang/ArrayIndexOutOfBoundsException"
	ExNegativeArraySize = "java/lang/NegativeArraySizeException"
	ExIllegalArgument   = "java/lang/IllegalArgumentException"
)
