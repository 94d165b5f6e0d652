// Where: internal/app/check.go
// What: Check command.
// Why: A fast end-to-end probe: do these credentials actually open the bucket?
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/trendradar/radarctl/internal/storage"
	"github.com/trendradar/radarctl/internal/ui"
)

func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	record, source, err := resolveCredentials(cli.Check.Creds, ctxInfo, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	timeout := time.Duration(cli.Check.Timeout) * time.Second
	if timeout <= 0 && ctxInfo.Project.Check.TimeoutSeconds > 0 {
		timeout = time.Duration(ctxInfo.Project.Check.TimeoutSeconds) * time.Second
	}

	console.Header("🪣", "Bucket check")
	console.Item("Source", source.Path)
	console.Item("Endpoint", record.EndpointURL())
	console.Item("Bucket", record.BucketName)

	ctx := context.Background()
	api, err := deps.BucketClient(ctx, record)
	if err != nil {
		return exitWithError(out, err)
	}
	if err := storage.CheckBucket(ctx, api, record.BucketName, timeout); err != nil {
		console.Error(err.Error())
		return 1
	}

	console.Success(fmt.Sprintf("bucket %s is reachable", record.BucketName))
	return 0
}
