package main

import (
	"bytes"
	"errors"
	"hostel/di"
	occupancyMocks "hostel/internal/domains/occupancy/mocks"
	"hostel/internal/domains/room/model"
	"hostel/internal/domains/user/mocks"
	"hostel/internal/domains/user/model/dto"
	"hostel/shared/actor"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func passwords(values ...string) func() ([]byte, error) {
	return func() ([]byte, error) {
		if len(values) == 0 {
			return nil, errors.New("no input")
		}

		next := values[0]
		values = values[1:]

		return []byte(next), nil
	}
}

func run(t *testing.T, c *commandLine, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	app := c.app()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"hostel-admin"}, args...))

	return out.String(), err
}

func TestAddUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserService(ctrl)

	users.EXPECT().
		Create(gomock.Any(), actor.System(), dto.CreateUserRequest{
			Username: "warden",
			Email:    "warden@hostel.test",
			Password: "s3cret-pass",
			FullName: "Head Warden",
			Level:    "staff",
		}).
		Return(dto.UserResponse{ID: "user-1", Username: "warden", Level: "staff"}, nil)

	c := &commandLine{
		admin:        func() *di.Admin { return &di.Admin{Users: users} },
		readPassword: passwords("s3cret-pass", "s3cret-pass"),
	}

	out, err := run(t, c, "adduser", "--username", "warden", "--email", "warden@hostel.test", "--full-name", "Head Warden")

	require.NoError(t, err)
	assert.Contains(t, out, "created staff user warden (user-1)")
}

func TestAddUser_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		passwords []string
		email     string
		expected  string
	}{
		{name: "mismatch", passwords: []string{"s3cret-pass", "other-pass"}, email: "warden@hostel.test", expected: errPasswordMismatch.Error()},
		{name: "short password", passwords: []string{"short", "short"}, email: "warden@hostel.test"},
		{name: "bad email", passwords: []string{"s3cret-pass", "s3cret-pass"}, email: "warden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &commandLine{
				admin:        func() *di.Admin { t.Fatal("service must not be built"); return nil },
				readPassword: passwords(tt.passwords...),
			}

			_, err := run(t, c, "adduser", "--username", "warden", "--email", tt.email, "--full-name", "Head Warden")

			require.Error(t, err)

			if tt.expected != "" {
				assert.EqualError(t, err, tt.expected)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	drifted := []model.Drift{{ID: "room-1", Number: "A-101", Occupied: 2, Assigned: 1}}

	tests := []struct {
		name     string
		args     []string
		drifts   []model.Drift
		repair   bool
		expected string
	}{
		{name: "consistent", args: []string{"reconcile"}, expected: "occupancy counters are consistent"},
		{name: "report only", args: []string{"reconcile"}, drifts: drifted, expected: "run again with --fix"},
		{name: "fix", args: []string{"reconcile", "--fix"}, drifts: drifted, repair: true, expected: "repaired 1 rooms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tracker := occupancyMocks.NewMockTracker(ctrl)

			tracker.EXPECT().Audit(gomock.Any()).Return(tt.drifts, nil)

			if tt.repair {
				tracker.EXPECT().Repair(gomock.Any(), actor.System()).Return(int64(1), nil)
			}

			c := &commandLine{admin: func() *di.Admin { return &di.Admin{Tracker: tracker} }}

			out, err := run(t, c, tt.args...)

			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}
