package types

// DeviceTree mirrors the JSON document emitted by "lsblk -J" to store the
// nested disk and partition information.
type DeviceTree struct {
	BlockDevices []DeviceNode `json:"blockdevices"`
}

// DeviceNode is one device row in the lsblk tree.
type DeviceNode struct {
	Name       string       `json:"name"`
	Path       string       `json:"path"`
	Size       string       `json:"size"`
	FSType     string       `json:"fstype"`
	MountPoint string       `json:"mountpoint"`
	Label      string       `json:"label"`
	UUID       string       `json:"uuid"`
	Children   []DeviceNode `json:"children"`
}

// DevicePath returns the node's device path, deriving it from the kernel name
// when lsblk did not emit a PATH column.
func (n *DeviceNode) DevicePath() string {
	if n.Path != "" {
		return n.Path
	}
	return "/dev/" + n.Name
}

// FindDevice locates the node for the given disk. The top level is searched
// first; stacked or virtual setups can surface a disk as a child entry, so
// nested children are checked second.
func (t *DeviceTree) FindDevice(disk string) *DeviceNode {
	for i := range t.BlockDevices {
		dev := &t.BlockDevices[i]
		if dev.DevicePath() == disk || dev.Name == disk {
			return dev
		}
	}

	for i := range t.BlockDevices {
		dev := &t.BlockDevices[i]
		for j := range dev.Children {
			child := &dev.Children[j]
			if child.DevicePath() == disk || child.Name == disk {
				return dev
			}
		}
	}

	return nil
}
