package avl

// Config configures a tree.
type Config[T any] struct {
	// Allocator produces and reclaims nodes and buffers. Defaults to
	// HeapAllocator.
	Allocator Allocator[T]
	// NoAppendFastPath disables growing the rightmost buffer in place on
	// Append. Appends then always create a new leaf.
	NoAppendFastPath bool
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = HeapAllocator[T]{}
	}
	return cfg
}
