// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pqtool exercises the priority queue and the packages built on it.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const spec = `name: pqtool
summary: exercise the priority queue and the packages built on it.
commands:
  - name: order
    summary: print the items in a config file in priority order.
    arguments:
      - <config.yaml>
  - name: shortest
    summary: print the shortest paths from the source node to every
      other node in the graph defined by a config file.
    arguments:
      - <config.yaml>
      - <source>
  - name: schedule
    summary: dispatch the events in a config file once they are due.
    arguments:
      - <config.yaml>
  - name: serve
    summary: serve a priority queue over HTTP.
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

type serveFlags struct {
	CommonFlags
	Address string `subcmd:"address,localhost:8080,address to listen on"`
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(spec)
	cmdSet.Set("order").MustRunnerAndFlags(orderCmd, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("shortest").MustRunnerAndFlags(shortestCmd, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("schedule").MustRunnerAndFlags(scheduleCmd, subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("serve").MustRunnerAndFlags(serveCmd, subcmd.MustRegisteredFlagSet(&serveFlags{}))
}

// withLogger returns a context carrying the logger configured by lf and
// a function to close it.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
