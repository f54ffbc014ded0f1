package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/deploycheck/deploycheck/internal/adapters/inbound/cli"
	"github.com/deploycheck/deploycheck/internal/domain"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "deploycheck:", err)

	var usageErr *domain.UsageError
	var defErr *domain.RuleDefinitionError
	if errors.As(err, &usageErr) || errors.As(err, &defErr) {
		os.Exit(2)
	}
	os.Exit(1)
}
