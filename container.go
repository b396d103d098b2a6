package h5walk

// Container is the read side of a hierarchical data file. Implementations
// must be side-effect free on the underlying file: browsing and exporting
// never mutate the source.
//
// Children returns a group's child nodes in the container's native order.
// ReadArray returns a dataset's shape, element type, and row-major elements.
// Both wrap [ErrContainerRead] when the underlying read fails; Children of
// a missing or non-group path is also a read failure.
type Container interface {
	Children(path string) ([]Node, error)
	ReadArray(path string) (Array, error)
	Attributes(path string) (map[string]string, error)
	Close() error
}

// ContainerWriter is the write side used when a subtree is exported into a
// fresh container file. It is never pointed at the source container.
type ContainerWriter interface {
	CreateGroup(path string) error
	WriteDataset(path string, a Array, attrs map[string]string) error
	Close() error
}
