package hoa_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/hoaboard/pkg/hoasdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared helpers for the hoaboard end-to-end tests.
 */

const (
	testImageName = "hoaboard-test:latest"

	testPassword = "Sup3rSecret"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building hoaboard Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up hoaboard Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/hoaboard/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // the image may already be gone
}

func baseEnv() map[string]string {
	return map[string]string{
		"HOA_ISSUER":     "hoaboard-e2e",
		"HOA_NUM_KEYS":   "1",
		"HOA_PUBLIC_URL": "http://localhost:8080",
		"ENV":            "test",
		"LOG_LEVEL":      "info",
		"LOG_FORMAT":     "json",
	}
}

// setupContainer starts hoaboard with relaxed rate limits and returns its
// base URL.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := baseEnv()
	// Scenarios register several users from one address.
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupContainerWithDefaultRateLimits keeps production limits, for the rate
// limit tests only.
func setupContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/readyz").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
	return baseURL, cleanup
}

func register(t *testing.T, client *hoasdk.SDKClient, name string) *hoasdk.Session {
	t.Helper()

	s, err := client.Register(t.Context(), hoasdk.RegisterRequest{
		Email:    name + "@example.com",
		Password: testPassword,
		Name:     name,
	})
	require.NoError(t, err, "register %s", name)
	return s
}

// createCommunity registers an admin and creates their community.
func createCommunity(t *testing.T, client *hoasdk.SDKClient) (*hoasdk.Session, *hoasdk.Community) {
	t.Helper()

	admin := register(t, client, "admin")
	c, err := admin.CreateCommunity(t.Context(), hoasdk.CommunityRequest{
		Name:    "Oak Street HOA",
		Address: "1 Oak Street",
	})
	require.NoError(t, err)
	return admin, c
}

// addMember registers name, joins c and has admin accept and promote them.
func addMember(t *testing.T, client *hoasdk.SDKClient, admin *hoasdk.Session, c *hoasdk.Community, name, role string) *hoasdk.Session {
	t.Helper()
	ctx := t.Context()

	s := register(t, client, name)
	_, err := s.JoinCommunity(ctx, c.InviteCode)
	require.NoError(t, err)

	_, err = admin.AcceptMember(ctx, c.ID, s.User().ID)
	require.NoError(t, err)

	if role != "resident" {
		_, err = admin.ChangeRole(ctx, c.ID, s.User().ID, role)
		require.NoError(t, err)
	}
	return s
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, hoasdk.StatusCode(err), "unexpected status: %v", err)
	require.True(t, hoasdk.IsCode(err, code), "unexpected error: %v", err)
}
