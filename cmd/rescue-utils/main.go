package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/liveiso/rescue-utils/internal/cmd"
	"github.com/liveiso/rescue-utils/internal/contextual"
	"github.com/liveiso/rescue-utils/internal/system"
	"github.com/liveiso/rescue-utils/internal/util"
)

func main() {
	ctx := context.Background()

	sys, err := system.Scan(ctx, util.SystemExecutor{})
	if err != nil {
		// Without a version the block-device layer falls back to the flat
		// lsblk listing, so scanning failures are not fatal.
		logrus.WithError(err).Warn("Cannot identify util-linux version")
	} else {
		ctx = contextual.WithUtilLinux(ctx, sys.UtilLinux())
	}

	if err := cmd.MainCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
