// Package permissions maps route patterns to the roles allowed on them.
// The table is embedded from permissions.json and must name every role
// it uses from the known set.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"hostel/shared/constant"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleStaff, constant.RoleStudent}

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the endpoint. An endpoint without
// roles is open to any authenticated caller.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(method, path string) string {
	return method + " " + strings.TrimSuffix(path, "/")
}

// FindPermissions looks up a route pattern as chi reports it. Group roots
// come back with a trailing slash, so both sides are compared without it.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx, ok := r.index[routeKey(method, path)]
	if !ok {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	permissions.index = make(map[string]int, len(permissions.Endpoints))

	for idx, endpoint := range permissions.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, exists := permissions.index[key]; exists {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return nil, fmt.Errorf("unknown role %q on %s", role, key)
			}
		}

		permissions.index[key] = idx
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := parse(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
