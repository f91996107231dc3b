package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
source:
  endpoint: https://westus2.api.cognitive.example.com
  api_key: src-key
target:
  endpoint: https://eastus.api.cognitive.example.com
  api_key: dst-key
  resource_id: /subscriptions/s/resourceGroups/g/providers/p/accounts/target
  resource_region: eastus
poll_interval: 2s
`

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://westus2.api.cognitive.example.com", cfg.Source.Endpoint)
	assert.Equal(t, "src-key", cfg.Source.APIKey)
	assert.Equal(t, "eastus", cfg.Target.ResourceRegion)
	assert.Equal(t, 2*time.Second, cfg.PollInterval.Duration())
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
source:
  endpoint: https://src.example.com
target:
  endpoint: https://dst.example.com
  resource_id: rid
  resource_region: eastus
`))
	require.NoError(t, err)
	assert.Equal(t, defaultPollInterval, cfg.PollInterval.Duration())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing source endpoint",
			yaml:    "target:\n  endpoint: https://dst\n  resource_id: rid\n  resource_region: r\n",
			wantErr: "source.endpoint is required",
		},
		{
			name:    "missing target resource id",
			yaml:    "source:\n  endpoint: https://src\ntarget:\n  endpoint: https://dst\n  resource_region: r\n",
			wantErr: "target.resource_id is required",
		},
		{
			name:    "bad duration",
			yaml:    "source:\n  endpoint: https://src\ntarget:\n  endpoint: https://dst\n  resource_id: rid\n  resource_region: r\npoll_interval: soon\n",
			wantErr: "invalid duration",
		},
		{
			name:    "not yaml",
			yaml:    "{{{",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
