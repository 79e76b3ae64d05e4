package bip32

import (
	"github.com/viacoin/viautil/infrastructure/logger"
)

var log = logger.RegisterSubSystem("HDKY")
