package blockdev

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/liveiso/rescue-utils/internal/blockdev/types"
)

// Decoder outlines the functionality necessary for decoding lsblk's
// structured output.
type Decoder interface {
	DecodeDeviceTree(reader io.Reader) (*types.DeviceTree, error)
}

// JSONDecoder is an empty struct that provides the implementation for the
// Decoder interface.
type JSONDecoder struct{}

// DecodeDeviceTree takes the raw JSON emitted by "lsblk -J" and decodes it
// into a new DeviceTree struct.
func (d *JSONDecoder) DecodeDeviceTree(reader io.Reader) (tree *types.DeviceTree, err error) {
	// Catch panics thrown by the Decode method
	defer func() {
		if panicErr := recover(); panicErr != nil {
			tree = nil
			err = fmt.Errorf("blockdev: panic occurred while decoding: %s", panicErr)
		}
	}()

	tree = &types.DeviceTree{}
	decoder := json.NewDecoder(reader)

	err = decoder.Decode(tree)
	if err != nil {
		return nil, fmt.Errorf("blockdev: failed to decode lsblk device tree output: %v", err)
	}

	return tree, nil
}
