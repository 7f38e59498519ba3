package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		ServerURL:      "http://127.0.0.1:8080",
		StatePath:      "client.db",
		RequestTimeout: 5 * time.Second,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "no flags keeps values",
			args: nil,
			want: Config{ServerURL: "http://127.0.0.1:8080", StatePath: "client.db", RequestTimeout: 5 * time.Second},
		},
		{
			name: "all flags",
			args: []string{"-a", "http://posts.example", "-f", "/tmp/state.db", "-i", "12"},
			want: Config{ServerURL: "http://posts.example", StatePath: "/tmp/state.db", RequestTimeout: 12 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			require.NoError(t, applyFlags(&c, tt.args))
			if diff := cmp.Diff(tt.want, c); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyFlags_Invalid(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Error(t, applyFlags(&c, []string{"-i", "soon"}))
}

func TestLoadConfig_JsonThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("CONFIG", "")

	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "http://from-json:8080",
		"state_path": "json.db",
		"request_timeout": "9s"
	}`), 0o600))

	os.Args = []string{"client", "-c", path, "-a", "http://from-flag:8080"}

	cfg := LoadConfig()
	assert.Equal(t, "http://from-flag:8080", cfg.ServerURL)
	assert.Equal(t, "json.db", cfg.StatePath)
	assert.Equal(t, 9*time.Second, cfg.RequestTimeout)
}

func TestParseJson_PanicsOnMissingFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("CONFIG", "")

	os.Args = []string{"client", "-config", filepath.Join(t.TempDir(), "nope.json")}

	assert.Panics(t, func() { parseJson(&Config{}) })
}

func TestApplyJson_IgnoresEmptyValues(t *testing.T) {
	var c Config
	c.LoadDefaults()

	applyJson(&c, &JsonConfig{StatePath: "other.db"})

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, "other.db", c.StatePath)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}
