package cvm

import (
	lru "github.com/hashicorp/golang-lru"
	log "github.com/inconshreveable/log15"
	cmap "github.com/orcaman/concurrent-map"
)

const arrayClassCacheSize = 256

// MethodArea is the runtime type registry: every loaded class, keyed by
// internal name. Classes are defined programmatically (classfile loading is a
// separate concern); array classes are derived on demand and canonicalized so
// that component-type identity comparisons in the copy engine hold.
type MethodArea struct {
	classes         cmap.ConcurrentMap // name -> *Class
	arrayClassCache *lru.Cache         // element descriptor -> *Class
	logger          log.Logger
}

func NewMethodArea(logger log.Logger) *MethodArea {
	cache, err := lru.New(arrayClassCacheSize)
	if err != nil {
		panic(err)
	}
	return &MethodArea{
		classes:         cmap.New(),
		arrayClassCache: cache,
		logger:          logger,
	}
}

// DefineClass registers a plain class. Defining an already-present name
// returns the existing class unchanged.
func (this *MethodArea) DefineClass(name string, super *Class, interfaces ...*Class) *Class {
	return this.define(&Class{
		name:       name,
		superClass: super,
		interfaces: interfaces,
	})
}

// DefineInterface registers an interface type.
func (this *MethodArea) DefineInterface(name string, interfaces ...*Class) *Class {
	return this.define(&Class{
		name:        name,
		accessFlags: ACC_INTERFACE,
		interfaces:  interfaces,
	})
}

func (this *MethodArea) define(class *Class) *Class {
	if this.classes.SetIfAbsent(class.name, class) {
		this.logger.Debug("class defined", "name", class.name)
		return class
	}
	existing, _ := this.classes.Get(class.name)
	return existing.(*Class)
}

// FindClass returns a registered class or nil.
func (this *MethodArea) FindClass(name string) *Class {
	if v, ok := this.classes.Get(name); ok {
		return v.(*Class)
	}
	return nil
}

// FindArrayClass resolves the array-of-elem class, creating and
// canonicalizing it on first use. All arrays subclass Object and implement
// Cloneable and Serializable. Void is never a legal component type.
func (this *MethodArea) FindArrayClass(elem Type) *Class {
	if elem.Kind() == KindVoid {
		VM.Throw(ExIllegalArgument, "cannot resolve an array class with component type void")
	}
	desc := elem.Descriptor()
	if v, ok := this.arrayClassCache.Get(desc); ok {
		return v.(*Class)
	}
	class := this.define(&Class{
		name:          "[" + desc,
		superClass:    javaLangObject,
		interfaces:    []*Class{javaLangCloneable, javaIoSerializable},
		componentType: elem,
	})
	this.arrayClassCache.Add(desc, class)
	return class
}

//--------------------------------------------------------------------------------------

// Canonical bootstrap classes. The copy engine's diagnostics and the array
// covariance rules only need this minimal slice of the hierarchy.
var (
	javaLangObject     *Class
	javaLangClass      *Class
	javaLangCloneable  *Class
	javaIoSerializable *Class
	javaLangString     *Class
	javaLangNumber     *Class
	javaLangInteger    *Class
	javaLangDouble     *Class
)

func (this *CVM) bootstrapClasses() {
	javaLangObject = this.DefineClass("java/lang/Object", nil)
	javaLangCloneable = this.DefineInterface("java/lang/Cloneable")
	javaIoSerializable = this.DefineInterface("java/io/Serializable")
	javaLangClass = this.DefineClass("java/lang/Class", javaLangObject)
	javaLangString = this.DefineClass("java/lang/String", javaLangObject, javaIoSerializable)
	javaLangNumber = this.DefineClass("java/lang/Number", javaLangObject, javaIoSerializable)
	javaLangInteger = this.DefineClass("java/lang/Integer", javaLangNumber)
	javaLangDouble = this.DefineClass("java/lang/Double", javaLangNumber)

	// The eight primitive array classes exist from boot, like an ART boot
	// image would have them.
	for _, t := range []Type{BOOLEAN, BYTE, CHAR, SHORT, INT, FLOAT, LONG, DOUBLE} {
		this.FindArrayClass(t)
	}
}
