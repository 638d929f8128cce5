package viewer

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("zykov/viewer", "remote graph viewer")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
