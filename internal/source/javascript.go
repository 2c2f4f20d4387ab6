package source

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/dop251/goja"
)

var esmDefaultExport = regexp.MustCompile(`(?m)^\s*export\s+default\s+`)

// evalModule runs a CommonJS-style sidebars module and returns the
// exported value. `export default` is rewritten to module.exports so
// ESM sidebar files work as well. require() is not available.
func evalModule(data []byte, timeout time.Duration) (any, error) {
	vm := goja.New()

	module := vm.NewObject()
	exports := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}
	if err := vm.Set("module", module); err != nil {
		return nil, err
	}
	if err := vm.Set("exports", exports); err != nil {
		return nil, err
	}
	if err := vm.Set("require", func(name string) (any, error) {
		return nil, fmt.Errorf("require(%q) is not supported in sidebar files", name)
	}); err != nil {
		return nil, err
	}

	timer := time.AfterFunc(timeout, func() {
		vm.Interrupt(ErrJSTimeout)
	})
	defer timer.Stop()

	script := esmDefaultExport.ReplaceAllString(string(data), "module.exports = ")
	if _, err := vm.RunString(script); err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return nil, fmt.Errorf("%w after %s", ErrJSTimeout, timeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	exported := module.Get("exports")
	if exported == nil || goja.IsUndefined(exported) || goja.IsNull(exported) {
		return nil, ErrNoExport
	}
	value, ok := exported.Export().(map[string]any)
	if !ok || len(value) == 0 {
		return nil, fmt.Errorf("%w, got %T", ErrNoExport, exported.Export())
	}
	return value, nil
}
