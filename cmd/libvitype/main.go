// Package main builds a C-ABI shared library exposing the engine for hosts
// that don't speak D-Bus (e.g. a native editor plugin): opaque handles, a
// result struct with has_action/delete_count/text, and a matching
// free_string. Build with -buildmode=c-shared.
package main

/*
#include <stdbool.h>
#include <stdlib.h>

typedef struct {
	bool has_action;
	int delete_count;
	char *text;
} VitypeTransformResult;
*/
import "C"

import (
	"runtime/cgo"
	"unicode/utf8"
	"unsafe"

	"github.com/ttdatt/vitype-ime/internal/engine"
)

func emptyResult() C.VitypeTransformResult {
	return C.VitypeTransformResult{has_action: false, delete_count: 0, text: nil}
}

func handleToEngine(h C.uintptr_t) *engine.EngineState {
	if h == 0 {
		return nil
	}
	v := cgo.Handle(h).Value()
	eng, _ := v.(*engine.EngineState)
	return eng
}

//export vitype_engine_new
func vitype_engine_new() C.uintptr_t {
	eng := engine.NewEngineState(engine.DefaultConfig())
	return C.uintptr_t(cgo.NewHandle(eng))
}

//export vitype_engine_free
func vitype_engine_free(h C.uintptr_t) {
	if h == 0 {
		return
	}
	cgo.Handle(h).Delete()
}

//export vitype_engine_reset
func vitype_engine_reset(h C.uintptr_t) {
	if eng := handleToEngine(h); eng != nil {
		eng.Reset()
	}
}

//export vitype_engine_delete_last_character
func vitype_engine_delete_last_character(h C.uintptr_t) {
	if eng := handleToEngine(h); eng != nil {
		eng.DeleteLastCharacter()
	}
}

//export vitype_engine_set_auto_fix_tone
func vitype_engine_set_auto_fix_tone(h C.uintptr_t, enabled C.bool) {
	if eng := handleToEngine(h); eng != nil {
		eng.SetAutoFixTone(bool(enabled))
	}
}

//export vitype_engine_set_input_method
func vitype_engine_set_input_method(h C.uintptr_t, method C.int) {
	eng := handleToEngine(h)
	if eng == nil {
		return
	}
	if method == 1 {
		eng.SetInputMethod(engine.VNI)
	} else {
		eng.SetInputMethod(engine.Telex)
	}
}

//export vitype_engine_set_output_encoding
func vitype_engine_set_output_encoding(h C.uintptr_t, encoding C.int) {
	eng := handleToEngine(h)
	if eng == nil {
		return
	}
	if encoding == 1 {
		eng.SetOutputEncoding(engine.Decomposed)
	} else {
		eng.SetOutputEncoding(engine.Precomposed)
	}
}

//export vitype_engine_set_tone_placement
func vitype_engine_set_tone_placement(h C.uintptr_t, placement C.int) {
	eng := handleToEngine(h)
	if eng == nil {
		return
	}
	if placement == 1 {
		eng.SetTonePlacement(engine.NucleusOnly)
	} else {
		eng.SetTonePlacement(engine.Orthographic)
	}
}

//export vitype_engine_process
func vitype_engine_process(h C.uintptr_t, inputUTF8 *C.char) C.VitypeTransformResult {
	eng := handleToEngine(h)
	if eng == nil || inputUTF8 == nil {
		return emptyResult()
	}
	input := C.GoString(inputUTF8)
	if !utf8.ValidString(input) {
		return emptyResult()
	}
	runes := []rune(input)
	if len(runes) != 1 {
		return emptyResult()
	}

	action := eng.Process(runes[0])
	if action == nil {
		return emptyResult()
	}
	return C.VitypeTransformResult{
		has_action:   true,
		delete_count: C.int(action.DeleteCount),
		text:         C.CString(action.Text),
	}
}

//export vitype_engine_free_string
func vitype_engine_free_string(text *C.char) {
	if text == nil {
		return
	}
	C.free(unsafe.Pointer(text))
}

func main() {}
