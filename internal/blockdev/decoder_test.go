package blockdev

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDeviceTree(t *testing.T) {
	const raw = `{
		"blockdevices": [
			{"name": "sda", "path": "/dev/sda", "size": "476.9G",
			 "children": [
				{"name": "sda1", "path": "/dev/sda1", "size": "512M", "fstype": "vfat", "label": "EFI"}
			 ]}
		]
	}`

	d := &JSONDecoder{}
	tree, err := d.DecodeDeviceTree(strings.NewReader(raw))

	assert.NoError(t, err)
	assert.Len(t, tree.BlockDevices, 1)
	assert.Equal(t, "/dev/sda", tree.BlockDevices[0].DevicePath())
	assert.Len(t, tree.BlockDevices[0].Children, 1)
	assert.Equal(t, "vfat", tree.BlockDevices[0].Children[0].FSType)
}

func TestDecodeDeviceTree_NullFields(t *testing.T) {
	// lsblk emits null for absent values; they decode to empty strings.
	const raw = `{"blockdevices": [{"name": "sda1", "fstype": null, "mountpoint": null, "label": null}]}`

	d := &JSONDecoder{}
	tree, err := d.DecodeDeviceTree(strings.NewReader(raw))

	assert.NoError(t, err)
	assert.Equal(t, "", tree.BlockDevices[0].FSType)
	assert.Equal(t, "", tree.BlockDevices[0].MountPoint)
}

func TestDecodeDeviceTree_InvalidJSON(t *testing.T) {
	d := &JSONDecoder{}
	tree, err := d.DecodeDeviceTree(strings.NewReader("not json"))

	assert.Error(t, err)
	assert.Nil(t, tree)
}

func TestFindDevice_ByNameOrPath(t *testing.T) {
	tree, err := (&JSONDecoder{}).DecodeDeviceTree(strings.NewReader(
		`{"blockdevices": [{"name": "nvme0n1", "path": "/dev/nvme0n1"}]}`))
	assert.NoError(t, err)

	assert.NotNil(t, tree.FindDevice("/dev/nvme0n1"))
	assert.NotNil(t, tree.FindDevice("nvme0n1"))
	assert.Nil(t, tree.FindDevice("/dev/sdz"))
}

func TestFindDevice_NestedChild(t *testing.T) {
	// Stacked setups can surface the requested disk as a child entry; the
	// lookup returns the parent so its children are still enumerable.
	tree, err := (&JSONDecoder{}).DecodeDeviceTree(strings.NewReader(`{
		"blockdevices": [
			{"name": "sda", "path": "/dev/sda",
			 "children": [{"name": "sda1", "path": "/dev/sda1"}]}
		]
	}`))
	assert.NoError(t, err)

	node := tree.FindDevice("/dev/sda1")
	assert.NotNil(t, node)
	assert.Equal(t, "/dev/sda", node.DevicePath())
}
