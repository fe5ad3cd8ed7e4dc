package commands

import (
	"os"

	"designermonk/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("designermonk error", "err", err.Error())
	os.Exit(1)
}
