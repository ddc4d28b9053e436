package system

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/liveiso/rescue-utils/internal/util"
	mock_util "github.com/liveiso/rescue-utils/internal/util/mocks"
)

func init() {
	logrus.SetOutput(io.Discard)
}

func TestParseUtilLinux(t *testing.T) {
	ul, err := parseUtilLinux("lsblk from util-linux 2.39.3\n")

	assert.NoError(t, err)
	assert.Equal(t, "2.39.3", ul.Version.String())
	assert.True(t, ul.SupportsJSON())
}

func TestParseUtilLinux_OldRelease(t *testing.T) {
	ul, err := parseUtilLinux("lsblk from util-linux 2.19")

	assert.NoError(t, err)
	assert.False(t, ul.SupportsJSON(), "lsblk before 2.27 has no JSON output")
}

func TestParseUtilLinux_BoundaryRelease(t *testing.T) {
	ul, err := parseUtilLinux("lsblk from util-linux 2.27")

	assert.NoError(t, err)
	assert.True(t, ul.SupportsJSON(), "JSON output landed in 2.27")
}

func TestParseUtilLinux_Garbage(t *testing.T) {
	_, err := parseUtilLinux("lsblk from util-linux banana")

	assert.Error(t, err, "shouldn't parse a non-semver version")
}

func TestParseUtilLinux_Empty(t *testing.T) {
	_, err := parseUtilLinux("   ")

	assert.Error(t, err, "shouldn't parse an empty banner")
}

func TestScan(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExec := mock_util.NewMockExecutor(ctrl)
	mockExec.EXPECT().Execute(ctx, []string{"lsblk", "--version"}).
		Return(util.CommandOutput{Stdout: "lsblk from util-linux 2.38.1\n"}, nil)

	sys, err := Scan(ctx, mockExec)

	assert.NoError(t, err)
	assert.NotNil(t, sys.UtilLinux())
	assert.Equal(t, "2.38.1", sys.UtilLinux().Version.String())
}

func TestScan_CommandError(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExec := mock_util.NewMockExecutor(ctrl)
	mockExec.EXPECT().Execute(ctx, []string{"lsblk", "--version"}).
		Return(util.CommandOutput{}, fmt.Errorf("error"))

	_, err := Scan(ctx, mockExec)

	assert.Error(t, err, "shouldn't scan a host without lsblk")
}
