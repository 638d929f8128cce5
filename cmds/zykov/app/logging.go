package app

import (
	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
)

var REALM = logging.DefineRealm("zykov", "graph expression tool")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

func configureLogging(level string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logcfg := logrusl.Human(true)
	lctx := logging.DefaultContext()
	lctx.SetBaseLogger(logrusr.New(logcfg.NewLogrus()))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("zykov")))
	return nil
}
