package main

import (
	"context"
	"os"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/sangkips/laundrypro-api/internal/bootstrap"
	"github.com/sangkips/laundrypro-api/internal/cli"
	"github.com/sangkips/laundrypro-api/internal/config"
)

func main() {
	open := func(context.Context) (*store.Store, func(), error) {
		stack, err := bootstrap.Open(config.Load())
		if err != nil {
			return nil, nil, err
		}
		return stack.Store, stack.Close, nil
	}

	if err := cli.NewRootCommand(open).Execute(); err != nil {
		os.Exit(1)
	}
}
