package sim

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookCtx is the context that holds all the information about the site that a
// hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// HookPosBeforeStep triggers before a batch of steps is dispatched to a core.
// The item is a DispatchInfo.
var HookPosBeforeStep = &HookPos{Name: "BeforeStep"}

// HookPosQuantumEnd triggers when a core finishes its quantum, after its load
// reservation is released and before the next core runs. The item is a
// QuantumInfo.
var HookPosQuantumEnd = &HookPos{Name: "QuantumEnd"}

// HookPosStop triggers once a stop request has been acknowledged by the HTIF.
var HookPosStop = &HookPos{Name: "Stop"}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other type that implement
// the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a HookableBase object
func NewHookableBase() *HookableBase {
	h := new(HookableBase)
	h.Hooks = make([]Hook, 0)
	return h
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.Hooks)
}

// InvokeHook triggers the register Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}

// DispatchInfo describes a batch of steps handed to one core.
type DispatchInfo struct {
	Core  int
	Steps uint64
}

// QuantumInfo describes a completed quantum.
type QuantumInfo struct {
	// Seq counts completed quanta from 0 across all cores.
	Seq   uint64
	Core  int
	Steps uint64
}
