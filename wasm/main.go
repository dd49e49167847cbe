//go:build js && wasm

package main

import (
	"syscall/js"
	"time"

	reltime "github.com/nos-digital/relative-time-str"
)

func main() {
	// Register resolve function
	js.Global().Set("resolveRelativeTime", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		obj := js.Global().Get("Object").New()
		if len(args) < 1 {
			obj.Set("isErr", true)
			obj.Set("text", "missing expression")
			return obj
		}

		t, err := reltime.Parse(args[0].String())
		if err != nil {
			obj.Set("isErr", true)
			obj.Set("text", err.Error())
			return obj
		}
		obj.Set("isErr", false)
		obj.Set("text", t.Format(time.RFC3339Nano))
		return obj
	}))

	// Signal that WASM is ready
	js.Global().Set("_wasmReady", true)
	onReady := js.Global().Get("_onWasmReady")
	if !onReady.IsUndefined() && !onReady.IsNull() {
		onReady.Invoke()
	}

	// Block forever
	select {}
}
