package store

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("zykov/store", "graph definition store")
