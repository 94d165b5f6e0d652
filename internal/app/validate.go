// Where: internal/app/validate.go
// What: Validate command.
// Why: Let operators verify a credentials file without touching the
//      environment or starting anything.
package app

import (
	"io"

	"github.com/trendradar/radarctl/internal/ui"
)

func runValidate(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	record, source, err := resolveCredentials(cli.Validate.Creds, ctxInfo, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🔑", "Credentials")
	console.Item("Source", source.Path)
	console.Item("Account ID", record.AccountID)
	console.Item("Bucket", record.BucketName)
	console.Item("Access Key", maskSecret(record.AccessKeyID))
	console.Item("Secret Key", maskSecret(record.SecretAccessKey))
	console.Item("Endpoint", record.EndpointURL())
	console.Item("Region", record.Region())

	console.Success("credentials are valid (nothing was exported)")
	return 0
}
