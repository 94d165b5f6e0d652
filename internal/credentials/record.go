// Where: internal/credentials/record.go
// What: Credential record type and derived storage settings.
// Why: Carry validated R2/S3 settings as a plain value up to the launch boundary.
package credentials

import (
	"fmt"

	"github.com/trendradar/radarctl/internal/constants"
)

// Record holds the four required fields extracted from a credentials file.
// A Record is passed by value; nothing here touches the process environment.
type Record struct {
	AccountID       string
	BucketName      string
	AccessKeyID     string
	SecretAccessKey string
}

// requiredFields lists the keys a credentials file must provide, in the order
// validation reports them.
var requiredFields = []string{
	"account_id",
	"bucket_name",
	"access_key_id",
	"secret_access_key",
}

// MissingFieldError reports a required field that was absent or empty in the
// credentials file.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("credentials file is missing %q (expected a \"%s\": \"value\" line)", e.Field, e.Field)
}

// field maps a credentials-file key to its Record value.
func (r Record) field(key string) string {
	switch key {
	case "account_id":
		return r.AccountID
	case "bucket_name":
		return r.BucketName
	case "access_key_id":
		return r.AccessKeyID
	case "secret_access_key":
		return r.SecretAccessKey
	}
	return ""
}

// Validate checks that all four required fields are non-empty. The first empty
// field encountered fails the whole record.
func (r Record) Validate() error {
	for _, key := range requiredFields {
		if r.field(key) == "" {
			return &MissingFieldError{Field: key}
		}
	}
	return nil
}

// EndpointURL derives the Cloudflare R2 endpoint from the account ID.
func (r Record) EndpointURL() string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.AccountID)
}

// Region returns the fixed region for R2-compatible endpoints.
func (r Record) Region() string {
	return constants.StorageRegion
}

// Markdown renders the record as a credentials document in the quoted
// key-value form Extract parses and Discover recognizes.
func (r Record) Markdown() string {
	return fmt.Sprintf("# R2 credentials\n\n"+
		"\"account_id\": \"%s\",\n"+
		"\"bucket_name\": \"%s\",\n"+
		"\"access_key_id\": \"%s\",\n"+
		"\"secret_access_key\": \"%s\"\n",
		r.AccountID, r.BucketName, r.AccessKeyID, r.SecretAccessKey)
}

// Env materializes the five-variable contract consumed by the trendradar
// module. The map is a fresh value each call; applying it to the process
// environment is the launcher's job, at the boundary only.
func (r Record) Env() map[string]string {
	return map[string]string{
		constants.EnvStorageEndpointURL:     r.EndpointURL(),
		constants.EnvStorageBucketName:      r.BucketName,
		constants.EnvStorageAccessKeyID:     r.AccessKeyID,
		constants.EnvStorageSecretAccessKey: r.SecretAccessKey,
		constants.EnvStorageRegion:          r.Region(),
	}
}
