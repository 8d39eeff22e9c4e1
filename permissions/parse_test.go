package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected string
	}{
		{name: "malformed", data: `{"endpoints": [`, expected: "failed to decode"},
		{
			name:     "unknown role",
			data:     `{"endpoints": [{"path": "/v1/rooms", "method": "GET", "permissions": ["warden"]}]}`,
			expected: `unknown role "warden" on GET /v1/rooms`,
		},
		{
			name:     "duplicate route",
			data:     `{"endpoints": [{"path": "/v1/rooms", "method": "GET"}, {"path": "/v1/rooms/", "method": "GET"}]}`,
			expected: "duplicate permission for GET /v1/rooms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.data))

			assert.ErrorContains(t, err, tt.expected)
		})
	}
}

func TestPermission_Allows(t *testing.T) {
	perms, err := parse(permissionsData)
	require.NoError(t, err)

	staffOnly := perms.FindPermissions("/v1/occupancy/repair", "POST")
	assert.True(t, staffOnly.Allows("staff"))
	assert.False(t, staffOnly.Allows("student"))
	assert.False(t, staffOnly.Allows(""))

	assert.True(t, Permission{}.Allows("student"))
	assert.True(t, Permission{Skip: true, Permissions: []string{"staff"}}.Allows(""))
}
