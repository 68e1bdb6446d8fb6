package main

// Verification tool for the auxiliary read path: lists the most recent
// analysis records for a branch.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"vision-backend/internal/bootstrap"
	"vision-backend/internal/shared/config"
)

func main() {
	var (
		branch = flag.String("branch", "", "branch to query (default from BRANCH env)")
		limit  = flag.Int("limit", 10, "maximum number of records to return")
	)
	flag.Parse()

	cfg := config.Load()
	if *branch == "" {
		*branch = cfg.Branch
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	records, err := app.Service.QueryByBranch(context.Background(), *branch, int32(*limit))
	if err != nil {
		log.Fatalf("query branch %s: %v", *branch, err)
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Fatalf("render records: %v", err)
	}
	fmt.Println(string(out))
}
