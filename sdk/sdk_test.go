package sdk_test

import (
	"io"
	"testing"
	"time"

	"github.com/edumfa/edumfa-go/sdk"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := sdk.New("https://mfa.example.org/", "plugin/1.0")
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, "https", c.Endpoint.Scheme)
	require.Equal(t, "mfa.example.org", c.Endpoint.Host)
	require.Equal(t, "", c.Endpoint.Path)
	require.Equal(t, "plugin/1.0", c.UserAgent)
	require.Equal(t, sdk.DefaultTimeout, c.Timeout)
	require.Equal(t, []string{sdk.EndpointAuth, sdk.EndpointPollTransaction}, c.LogExcluded)
}

func TestNewInvalidEndpoint(t *testing.T) {
	_, err := sdk.New("not a url", "plugin/1.0")
	require.Error(t, err)

	_, err = sdk.New("/path/only", "plugin/1.0")
	require.Error(t, err)
}

func TestNewOptions(t *testing.T) {
	c, err := sdk.New("https://mfa.example.org/pi", "plugin/1.0",
		sdk.WithRealm("defrealm"),
		sdk.WithServiceAccount("service", "secret"),
		sdk.WithServiceRealm("special"),
		sdk.WithTimeout(5*time.Second),
		sdk.WithInsecureSkipVerify(),
		sdk.WithLogExcludedEndpoints(sdk.EndpointAuth),
		sdk.WithLogOutput(io.Discard),
	)
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, "/pi", c.Endpoint.Path)
	require.Equal(t, "defrealm", c.Realm)
	require.Equal(t, "service", c.Service.Name)
	require.Equal(t, "secret", c.Service.Password)
	require.Equal(t, "special", c.Service.Realm)
	require.Equal(t, 5*time.Second, c.Timeout)
	require.True(t, c.Insecure)
	require.Equal(t, []string{sdk.EndpointAuth}, c.LogExcluded)
}

func TestServiceAccountAvailable(t *testing.T) {
	c, err := sdk.New("https://mfa.example.org", "plugin/1.0")
	require.NoError(t, err)
	defer c.Close()
	require.False(t, c.ServiceAccountAvailable())

	c2, err := sdk.New("https://mfa.example.org", "plugin/1.0", sdk.WithServiceAccount("service", "secret"))
	require.NoError(t, err)
	defer c2.Close()
	require.True(t, c2.ServiceAccountAvailable())
}
