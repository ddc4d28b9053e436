package blockdev

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mock_blockdev "github.com/liveiso/rescue-utils/internal/blockdev/mocks"
	"github.com/liveiso/rescue-utils/internal/blockdev/types"
)

const testDisk = "/dev/sda"

// treeFixture is a structured listing with an EFI partition, a root
// partition and a swap partition.
const treeFixture = `{
	"blockdevices": [
		{"name": "sda", "path": "/dev/sda", "size": "476.9G",
		 "children": [
			{"name": "sda1", "path": "/dev/sda1", "size": "512M", "fstype": "vfat", "label": "EFI", "uuid": "AAAA-BBBB"},
			{"name": "sda2", "path": "/dev/sda2", "size": "468G", "fstype": "ext4", "label": "root", "uuid": "cccc-dddd"},
			{"name": "sda3", "path": "/dev/sda3", "size": "8G", "fstype": "swap"}
		 ]}
	]
}`

func newJSONLister(util UtilImpl, prober SubvolumeProber) *lsblkJSON {
	return &lsblkJSON{lsblk: lsblk{
		util:      util,
		dec:       &JSONDecoder{},
		prober:    prober,
		mountRoot: testMountRoot,
	}}
}

func TestListPartitions_Structured(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUtil := mock_blockdev.NewMockUtilImpl(ctrl)
	mockUtil.EXPECT().ListTree(ctx, testDisk).Return(treeFixture, nil)

	l := newJSONLister(mockUtil, nil)
	partitions, err := l.ListPartitions(ctx, testDisk)

	assert.NoError(t, err)
	assert.Len(t, partitions, 2, "swap should be filtered out")

	assert.Equal(t, "/dev/sda1", partitions[0].Device)
	assert.Equal(t, "/boot/efi", partitions[0].SuggestedMount)
	assert.Equal(t, "AAAA-BBBB", partitions[0].UUID)

	assert.Equal(t, "/dev/sda2", partitions[1].Device)
	assert.Equal(t, "/", partitions[1].SuggestedMount)
	assert.False(t, partitions[1].IsBtrfs)
}

func TestListPartitions_BtrfsChildProbed(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const raw = `{
		"blockdevices": [
			{"name": "sdb", "path": "/dev/sdb",
			 "children": [
				{"name": "sdb1", "path": "/dev/sdb1", "size": "931G", "fstype": "btrfs"}
			 ]}
		]
	}`

	info := &types.BtrfsInfo{
		HasSubvolumes: true,
		Subvolumes: []types.Subvolume{
			{ID: "256", Path: "@", Name: "@", SuggestedMount: "/"},
			{ID: "257", Path: "@home", Name: "@home", SuggestedMount: "/home"},
		},
	}

	mockUtil := mock_blockdev.NewMockUtilImpl(ctrl)
	mockUtil.EXPECT().ListTree(ctx, "/dev/sdb").Return(raw, nil)

	mockProber := mock_blockdev.NewMockSubvolumeProber(ctrl)
	mockProber.EXPECT().ProbeSubvolumes(ctx, "/dev/sdb1").Return(info)

	l := newJSONLister(mockUtil, mockProber)
	partitions, err := l.ListPartitions(ctx, "/dev/sdb")

	assert.NoError(t, err)
	assert.Len(t, partitions, 1)
	assert.True(t, partitions[0].IsBtrfs)
	assert.Equal(t, "/", partitions[0].SuggestedMount)
	assert.Equal(t, info, partitions[0].Btrfs)
}

func TestListPartitions_TreeErrorFallsBack(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUtil := mock_blockdev.NewMockUtilImpl(ctrl)
	gomock.InOrder(
		mockUtil.EXPECT().ListTree(ctx, testDisk).Return("", fmt.Errorf("error")),
		mockUtil.EXPECT().ListFlat(ctx, testDisk).Return(
			"/dev/sda 476.9G\n/dev/sda2 468G ext4 / root cccc-dddd\n", nil),
	)

	l := newJSONLister(mockUtil, nil)
	partitions, err := l.ListPartitions(ctx, testDisk)

	assert.NoError(t, err)
	assert.Len(t, partitions, 1)
	assert.Equal(t, "/dev/sda2", partitions[0].Device)
	assert.Equal(t, "/", partitions[0].SuggestedMount)
}

func TestListPartitions_BadJSONFallsBack(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUtil := mock_blockdev.NewMockUtilImpl(ctrl)
	gomock.InOrder(
		mockUtil.EXPECT().ListTree(ctx, testDisk).Return("not json", nil),
		mockUtil.EXPECT().ListFlat(ctx, testDisk).Return("", nil),
	)

	l := newJSONLister(mockUtil, nil)
	partitions, err := l.ListPartitions(ctx, testDisk)

	assert.NoError(t, err)
	assert.Empty(t, partitions)
}

func TestListPartitions_DiskMissingFallsBack(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUtil := mock_blockdev.NewMockUtilImpl(ctrl)
	gomock.InOrder(
		mockUtil.EXPECT().ListTree(ctx, testDisk).Return(`{"blockdevices": []}`, nil),
		mockUtil.EXPECT().ListFlat(ctx, testDisk).Return("", nil),
	)

	l := newJSONLister(mockUtil, nil)
	_, err := l.ListPartitions(ctx, testDisk)

	assert.NoError(t, err)
}

func TestListPartitions_BothPathsFail(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUtil := mock_blockdev.NewMockUtilImpl(ctrl)
	gomock.InOrder(
		mockUtil.EXPECT().ListTree(ctx, testDisk).Return("", fmt.Errorf("error")),
		mockUtil.EXPECT().ListFlat(ctx, testDisk).Return("", fmt.Errorf("error")),
	)

	l := newJSONLister(mockUtil, nil)
	_, err := l.ListPartitions(ctx, testDisk)

	assert.Error(t, err, "shouldn't succeed when both listing forms fail")
}

func TestListPartitionsFlat_SkipsDiskRow(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUtil := mock_blockdev.NewMockUtilImpl(ctrl)
	mockUtil.EXPECT().ListFlat(ctx, testDisk).Return(
		"/dev/sda 476.9G\n/dev/sda1 512M vfat /boot/efi EFI AAAA-BBBB\n", nil)

	l := &lsblkFlat{lsblk: lsblk{util: mockUtil, mountRoot: testMountRoot}}
	partitions, err := l.ListPartitions(ctx, testDisk)

	assert.NoError(t, err)
	assert.Len(t, partitions, 1, "the whole-disk row itself should be skipped")
	assert.Equal(t, "/dev/sda1", partitions[0].Device)
	assert.Equal(t, "/boot/efi", partitions[0].SuggestedMount)
}

func TestBuildPartition_EmptyFSTypeFiltered(t *testing.T) {
	l := &lsblk{mountRoot: testMountRoot}

	_, ok := l.buildPartition(context.Background(), "/dev/sda9", "1G", "", "", "", "", map[string]bool{})
	assert.False(t, ok, "rows without a filesystem aren't mountable")
}
