package gcloud

import (
	"fmt"

	"cloud.google.com/go/auth/credentials"
	"google.golang.org/api/option"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// ClientOptions returns auth options shared by the Speech and Storage
// clients. Application default credentials are used when credentialsJSON is
// empty.
func ClientOptions(credentialsJSON string) ([]option.ClientOption, error) {
	detect := &credentials.DetectOptions{Scopes: []string{cloudPlatformScope}}
	if credentialsJSON != "" {
		detect.CredentialsJSON = []byte(credentialsJSON)
	}
	creds, err := credentials.DetectDefault(detect)
	if err != nil {
		return nil, fmt.Errorf("detect credentials: %w", err)
	}
	return []option.ClientOption{option.WithAuthCredentials(creds)}, nil
}
