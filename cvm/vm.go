package cvm

import (
	"fmt"
	"strconv"
	"sync"

	log "github.com/inconshreveable/log15"
)

type SystemSettings map[string]string

func (this SystemSettings) SetSystemSetting(key string, value string) {
	this[key] = value
}

func (this SystemSettings) GetSystemSetting(key string) string {
	return this[key]
}

// ExecutionEngine carries the native method table and the logger used by the
// array copy paths. The bytecode interpreter of the full VM is out of scope
// here; natives are invoked directly or through CallNative.
type ExecutionEngine struct {
	NativeMethodRegistry
	copyLogger log.Logger
}

type CVM struct {
	SystemSettings
	*ExecutionEngine
	*MethodArea
	*Heap
	*LoggerFactory
	log.Logger

	checks        bool // debug assertions on the unchecked fast paths
	inTransaction bool // recording transaction mode; never active in this runtime

	classObjectsMu sync.Mutex
	classObjects   map[Type]JavaLangClass

	initialized bool
}

var VM = NewVM()

func NewVM() *CVM {
	vm := &CVM{}
	vm.SystemSettings = map[string]string{
		"log.base":           "",
		"log.level.copy":     strconv.Itoa(WARN),
		"log.level.heap":     strconv.Itoa(WARN),
		"log.level.registry": strconv.Itoa(WARN),
		"log.level.misc":     strconv.Itoa(WARN),

		"vm.checks": "1",
	}
	vm.LoggerFactory = &LoggerFactory{}
	return vm
}

// Before vm initialization, a lot of system settings can be set.
func (this *CVM) InitMe() {
	this.LoggerFactory.base = this.GetSystemSetting("log.base")
	this.checks = this.GetSystemSetting("vm.checks") == "1"

	copyLogLevel, _ := strconv.Atoi(this.GetSystemSetting("log.level.copy"))
	this.ExecutionEngine = &ExecutionEngine{
		make(NativeMethodRegistry),
		this.NewLogger("copy", copyLogLevel, "copy.log"),
	}

	heapLogLevel, _ := strconv.Atoi(this.GetSystemSetting("log.level.heap"))
	this.Heap = NewHeap(this.NewLogger("heap", heapLogLevel, "heap.log"))

	registryLogLevel, _ := strconv.Atoi(this.GetSystemSetting("log.level.registry"))
	this.MethodArea = NewMethodArea(this.NewLogger("registry", registryLogLevel, "registry.log"))

	miscLogLevel, _ := strconv.Atoi(this.GetSystemSetting("log.level.misc"))
	this.Logger = this.LoggerFactory.NewLogger("misc", miscLogLevel, "misc.log")

	this.classObjects = make(map[Type]JavaLangClass)

	this.bootstrapClasses()
	this.RegisterNatives()
}

// CVM_init brings the singleton VM up once; subsequent calls are no-ops.
func CVM_init(registerNative func()) {
	if VM.initialized {
		return
	}
	VM.InitMe()
	if registerNative != nil {
		registerNative()
	}
	VM.initialized = true
}

//--------------------------------------------------------------------------------------

// Throw raises a Java exception out of a native. The panic is recovered at
// the exported API boundary (ArrayCopy, CreateObjectArray, CallNative, ...)
// and handed to the caller as a *Throwable error.
func (this *CVM) Throw(exception string, format string, args ...interface{}) {
	t := &Throwable{ExceptionClass: exception, Message: fmt.Sprintf(format, args...)}
	if this.Logger != nil {
		this.Logger.Debug("exception thrown", "class", exception, "message", t.Message)
	}
	panic(t)
}

// FatalUnreachable aborts on a broken type-system invariant (void component
// type or unknown kind in dispatch). This is not user error and is not
// recoverable through the Throwable machinery.
func (this *CVM) FatalUnreachable(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if this.Logger != nil {
		this.Logger.Crit("unreachable state", "error", msg)
	}
	panic("cvm: unreachable: " + msg)
}

// vmAssert is the DCHECK of the unchecked fast paths: enabled by the
// vm.checks setting, fatal when it fires.
func vmAssert(cond bool, format string, args ...interface{}) {
	if VM.checks && !cond {
		VM.FatalUnreachable("assertion failed: "+format, args...)
	}
}

// catchThrowable converts a panicking *Throwable into an error result;
// anything else keeps unwinding.
func (this *CVM) catchThrowable(err *error) {
	if r := recover(); r != nil {
		if t, ok := r.(*Throwable); ok {
			*err = t
			return
		}
		panic(r)
	}
}

//--------------------------------------------------------------------------------------

// classObjectFor returns the canonical java/lang/Class instance mirroring t.
func (this *CVM) classObjectFor(t Type) JavaLangClass {
	this.classObjectsMu.Lock()
	defer this.classObjectsMu.Unlock()
	if ref, ok := this.classObjects[t]; ok {
		return ref
	}
	ref := Reference{&Object{class: javaLangClass, mirroredType: t}}
	this.classObjects[t] = ref
	return ref
}
