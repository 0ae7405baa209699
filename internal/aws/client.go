// Package aws provides AWS SDK client management and block table operations.
package aws

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// maxAttempts bounds SDK retries for throttled table reads and writes.
const maxAttempts = 5

// dynamoAPI is the subset of the DynamoDB client used here.
type dynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Client talks to DynamoDB block tables for one profile and region.
type Client struct {
	profile  string
	region   string
	dynamodb dynamoAPI
}

// NewClient creates a client for profile, or the default credential chain
// when profile is empty. An empty region falls back to the profile's.
func NewClient(ctx context.Context, profile, region string) (*Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRetryMaxAttempts(maxAttempts),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return nil, errors.New("no AWS region configured (set source.region or AWS_REGION)")
	}

	return &Client{
		profile:  profile,
		region:   cfg.Region,
		dynamodb: dynamodb.NewFromConfig(cfg),
	}, nil
}

// newClientWithAPI builds a Client around an existing DynamoDB API (tests).
func newClientWithAPI(api dynamoAPI) *Client {
	return &Client{dynamodb: api}
}

// Profile returns the configured profile name, empty for the default chain.
func (c *Client) Profile() string {
	return c.profile
}

// Region returns the resolved region.
func (c *Client) Region() string {
	return c.region
}

// ListProfiles returns the profiles named in the shared config and
// credentials files, sorted, with "default" first.
func ListProfiles() ([]string, error) {
	configPath := config.DefaultSharedConfigFilename()
	if env := os.Getenv("AWS_CONFIG_FILE"); env != "" {
		configPath = env
	}
	credsPath := config.DefaultSharedCredentialsFilename()
	if env := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); env != "" {
		credsPath = env
	}
	return listProfilesFrom(configPath, credsPath)
}

func listProfilesFrom(configPath, credentialsPath string) ([]string, error) {
	seen := map[string]bool{}
	// The config file prefixes named profiles; the credentials file does not.
	if err := readProfiles(configPath, "profile ", seen); err != nil {
		return nil, err
	}
	if err := readProfiles(credentialsPath, "", seen); err != nil {
		return nil, err
	}
	delete(seen, "default")

	profiles := make([]string, 0, len(seen)+1)
	for name := range seen {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return append([]string{"default"}, profiles...), nil
}

// readProfiles adds the section names of an INI style AWS file to seen.
// Sections other than [default] must carry prefix. A missing file is empty.
func readProfiles(path, prefix string, seen map[string]bool) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read AWS config: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}
		section := strings.TrimSpace(line[1 : len(line)-1])
		switch {
		case section == "default":
			seen["default"] = true
		case prefix == "" && !strings.Contains(section, " "):
			seen[section] = true
		case prefix != "" && strings.HasPrefix(section, prefix):
			seen[strings.TrimSpace(strings.TrimPrefix(section, prefix))] = true
		}
	}
	return sc.Err()
}
