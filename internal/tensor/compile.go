package tensor

import "fmt"

// Kernel is the compiled form of a tensor-algebra assignment, produced by
// an external compiler. The storage engine treats kernels as opaque:
// Assemble builds the output tensor's index and value arrays, Compute fills
// its values buffer.
type Kernel interface {
	Assemble(dst *Storage)
	Compute(dst *Storage)
	Source() string
}

// Compiler lowers an assignment into an executable kernel. Implementations
// live outside this package; the engine only hands over the destination
// tensor's metadata and storage and never inspects the generated code.
type Compiler interface {
	Compile(assignment any, dst TensorBase) (Kernel, error)
}

// SetAssignment sets the expression evaluated by Compile, Assemble and
// Compute. The assignment is opaque to the storage engine; setting a new
// one discards any previously compiled kernel.
func (t TensorBase) SetAssignment(assignment any) {
	t.c.assignment = assignment
	t.c.kernel = nil
	t.c.source = ""
}

// Assignment returns the expression set by SetAssignment, or nil.
func (t TensorBase) Assignment() any {
	return t.c.assignment
}

// Compile lowers the tensor's assignment with the given compiler and caches
// the resulting kernel and its source text.
func (t TensorBase) Compile(comp Compiler) error {
	if t.c.assignment == nil {
		panic(fmt.Sprintf("tensor %s has no assignment to compile", t.c.name))
	}
	kernel, err := comp.Compile(t.c.assignment, t)
	if err != nil {
		return fmt.Errorf("compile %s: %w", t.c.name, err)
	}
	t.c.kernel = kernel
	t.c.source = kernel.Source()
	return nil
}

func (t TensorBase) mustKernel() {
	if t.c.kernel == nil {
		panic(fmt.Sprintf("tensor %s has not been compiled", t.c.name))
	}
}

// Assemble builds the tensor's index and value arrays from the compiled
// kernel.
func (t TensorBase) Assemble() {
	t.mustKernel()
	t.c.kernel.Assemble(t.c.storage)
	t.markPacked()
}

// Compute evaluates the compiled expression into the tensor's storage.
func (t TensorBase) Compute() {
	t.mustKernel()
	t.c.kernel.Compute(t.c.storage)
	t.markPacked()
}

// Evaluate compiles the assignment if needed, then assembles and computes.
func (t TensorBase) Evaluate(comp Compiler) error {
	if t.c.kernel == nil {
		if err := t.Compile(comp); err != nil {
			return err
		}
	}
	t.Assemble()
	t.Compute()
	return nil
}

// Source returns the cached kernel source text.
func (t TensorBase) Source() string {
	return t.c.source
}

// SetSource caches kernel source text supplied by the caller. The engine
// never interprets it.
func (t TensorBase) SetSource(source string) {
	t.c.source = source
}
