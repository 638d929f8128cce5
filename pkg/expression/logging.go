package expression

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("zykov/expression", "graph expression parser")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
