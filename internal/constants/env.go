// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Storage variables consumed by the trendradar module. These five names are
// the contract with the external collaborator; nothing else is exported.
const (
	EnvStorageEndpointURL     = "STORAGE_ENDPOINT_URL"
	EnvStorageBucketName      = "STORAGE_BUCKET_NAME"
	EnvStorageAccessKeyID     = "STORAGE_ACCESS_KEY_ID"
	EnvStorageSecretAccessKey = "STORAGE_SECRET_ACCESS_KEY"
	EnvStorageRegion          = "STORAGE_REGION"
)

// StorageRegion is the fixed region value for R2-compatible endpoints.
const StorageRegion = "auto"

// Host-level variable suffixes, combined with the brand prefix by envutil.
// Example: HostSuffixProjectDir becomes RADAR_PROJECT_DIR.
const (
	HostSuffixProjectDir = "PROJECT_DIR"
	HostSuffixCredsFile  = "CREDS_FILE"
	HostSuffixPython     = "PYTHON"
	HostSuffixHome       = "HOME"
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"
)
