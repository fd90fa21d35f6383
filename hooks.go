package gridmap

// Names of the hooks run by RecordTranslator. The unmodify hooks fire after
// physical→visual translation, the modify hooks after visual→physical.
const (
	HookModifyRow   = "modifyRow"
	HookModifyCol   = "modifyCol"
	HookUnmodifyRow = "unmodifyRow"
	HookUnmodifyCol = "unmodifyCol"
)

// HookRunner is the translator's only boundary with its host: run the named
// hook with an already-translated index and return the (possibly adjusted)
// index. Grid features such as merged cells or nested headers integrate by
// adjusting indexes here instead of inside the mapping engine.
type HookRunner interface {
	RunHook(name string, index int) int
}

// IndexTransform adjusts a single translated index.
type IndexTransform func(index int) int

// HookChain is a HookRunner backed by lists of transforms registered per
// hook name and run in registration order.
type HookChain struct {
	hooks map[string][]IndexTransform
}

// NewHookChain creates an empty HookChain. Running any hook on it is the
// identity until transforms are added.
func NewHookChain() *HookChain {
	return &HookChain{hooks: make(map[string][]IndexTransform)}
}

// On registers a transform for the named hook.
func (h *HookChain) On(name string, fn IndexTransform) {
	h.hooks[name] = append(h.hooks[name], fn)
}

// RunHook pipes the index through every transform registered for the name.
func (h *HookChain) RunHook(name string, index int) int {
	for _, fn := range h.hooks[name] {
		index = fn(index)
	}
	return index
}
