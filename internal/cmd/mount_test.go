package cmd

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/liveiso/rescue-utils/internal/chroot"
)

func init() {
	logrus.SetOutput(io.Discard)
}

func TestBuildPlan_RequiresRoot(t *testing.T) {
	_, err := buildPlan(mountArgs{})

	assert.Error(t, err, "a plan without a root device is rejected before touching any device")
}

func TestBuildPlan_RejectsNonBlockDevices(t *testing.T) {
	_, err := buildPlan(mountArgs{root: filepath.Join(t.TempDir(), "not-a-device")})

	assert.Error(t, err)
}

func TestAssemblePlan_OptionalPointsOnlyWhenSet(t *testing.T) {
	plan := assemblePlan(mountArgs{root: "/dev/sda2", rootSubvol: "@", home: "/dev/sda4"})

	assert.NoError(t, plan.Validate())
	assert.Len(t, plan, 2)
	assert.Equal(t, chroot.Target{Device: "/dev/sda2", Subvolume: "@"}, plan[chroot.PointRoot])
	assert.Equal(t, chroot.Target{Device: "/dev/sda4"}, plan[chroot.PointHome])
	assert.NotContains(t, plan, chroot.PointBoot)
	assert.NotContains(t, plan, chroot.PointEFI)
}

func TestAssemblePlan_FullFlags(t *testing.T) {
	plan := assemblePlan(mountArgs{
		root: "/dev/sda2", boot: "/dev/sda3", efi: "/dev/sda1", home: "/dev/sda4",
	})

	assert.NoError(t, plan.Validate())
	assert.Len(t, plan, 4)
}

func TestMainCommand_HasRescueSubcommands(t *testing.T) {
	cmd := MainCommand()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"disks", "partitions", "mount", "chroot", "unmount"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
