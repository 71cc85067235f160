package airwar

// Runnable is the interface implemented by loops and startup systems.
// The Run method contains the system's logic and is called when the system
// executes, after its fields have been injected.
type Runnable interface {
	Run()
}
