package command

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("zykov/command", "command processing")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
