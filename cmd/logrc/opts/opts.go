package opts

import (
	"github.com/walteh/logrc/pkg/config"
	"github.com/walteh/logrc/pkg/operation"
	"github.com/walteh/logrc/pkg/status"
	"github.com/walteh/logrc/pkg/userlog"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	StatusMgr  *status.Manager
	UserLogger *userlog.UserLogger
	Runner     *operation.Runner
}
