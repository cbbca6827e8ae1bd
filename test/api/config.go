/*
Copyright 2026 the ReqRes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public ReqRes API.
	DefaultBaseURL = "https://reqres.in/api"

	// DefaultResourcesDir is relative to the test/api/suites directory.
	DefaultResourcesDir = "../../resources"

	// UserSchema and ListUsersSchema are the schema files under SchemaDir.
	UserSchema      = "userSchema.json"
	ListUsersSchema = "listUsersSchema.json"
)

var ErrInvalidConfig = errors.New("invalid test configuration")

// TestConfig is built once per suite run and shared read-only by every spec.
type TestConfig struct {
	BaseURL         string
	APIKey          string
	RequestTimeout  time.Duration
	ResourcesDir    string
	FixturePath     string
	SchemaDir       string
	OpenAPIPath     string
	UseStub         bool
	SkipIntegration bool
	LogOnFailure    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a configured value cannot be used.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	resourcesDir := getStringWithDefault("TEST_RESOURCES_DIR", DefaultResourcesDir)

	config := &TestConfig{
		BaseURL:         strings.TrimSuffix(getStringWithDefault("API_BASE_URL", DefaultBaseURL), "/"),
		APIKey:          os.Getenv("API_KEY"),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		ResourcesDir:    resourcesDir,
		FixturePath:     getStringWithDefault("LOGIN_FIXTURES", filepath.Join(resourcesDir, "files", "testData.xlsx")),
		SchemaDir:       getStringWithDefault("SCHEMA_DIR", filepath.Join(resourcesDir, "schemas")),
		OpenAPIPath:     getStringWithDefault("OPENAPI_SPEC", filepath.Join(resourcesDir, "openapi", "reqres.yaml")),
		UseStub:         getBoolWithDefault("USE_STUB", false),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		LogOnFailure:    getBoolWithDefault("LOG_ON_FAILURE", true),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// SchemaPath returns the location of a named schema file.
func (c *TestConfig) SchemaPath(name string) string {
	return filepath.Join(c.SchemaDir, name)
}

// WithBaseURL returns a copy of the configuration pointing at another
// service, used to redirect a run at the in-process stub before any spec
// starts.
func (c *TestConfig) WithBaseURL(baseURL string) *TestConfig {
	copied := *c
	copied.BaseURL = strings.TrimSuffix(baseURL, "/")

	return &copied
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
		"../.env",
		".env",
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Variables already in the environment take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validateConfig(config *TestConfig) error {
	var invalid []string

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil || (baseURL.Scheme != "http" && baseURL.Scheme != "https") || baseURL.Host == "" {
		invalid = append(invalid, fmt.Sprintf("API_BASE_URL=%q must be an absolute http(s) URL", config.BaseURL))
	}

	if config.FixturePath == "" {
		invalid = append(invalid, "LOGIN_FIXTURES must not be empty")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(invalid, "; "))
	}

	return nil
}
