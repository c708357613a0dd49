package actions

import (
	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/logger"
)

func testLogger() logger.Logger {
	return logger.NewLogger(constants.ServiceName, "error", false)
}
