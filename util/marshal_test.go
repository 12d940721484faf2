package util_test

import (
	"encoding/json"
	"testing"

	"github.com/downfa11-org/diskcompact/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLogLevel_Unmarshal(t *testing.T) {
	tests := []struct {
		yaml string
		json string
		want util.LogLevel
	}{
		{"debug", `"debug"`, util.LogLevelDebug},
		{"WARNING", `"WARNING"`, util.LogLevelWarn},
		{"error", `"error"`, util.LogLevelError},
		{"chatty", `"chatty"`, util.LogLevelInfo},
		{"2", "2", util.LogLevelWarn},
	}

	for _, tt := range tests {
		var fromYAML, fromJSON util.LogLevel
		require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &fromYAML), tt.yaml)
		require.NoError(t, json.Unmarshal([]byte(tt.json), &fromJSON), tt.json)
		assert.Equal(t, tt.want, fromYAML, tt.yaml)
		assert.Equal(t, tt.want, fromJSON, tt.json)
	}

	var l util.LogLevel
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &l))
}

func TestLogLevel_Marshal(t *testing.T) {
	data, err := json.Marshal(util.LogLevelDebug)
	require.NoError(t, err)
	assert.Equal(t, `"debug"`, string(data))

	out, err := yaml.Marshal(map[string]util.LogLevel{"log_level": util.LogLevelError})
	require.NoError(t, err)
	assert.Equal(t, "log_level: error\n", string(out))
}
