package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintKey(t *testing.T) {
	tests := []struct {
		constraint string
		expected   string
	}{
		{constraint: "ux_students_roll_no", expected: "roll no"},
		{constraint: "students_roll_no_key", expected: "roll no"},
		{constraint: "ck_students_age_range", expected: "age range"},
		{constraint: "students_key", expected: "value"},
		{constraint: "ux_students", expected: "value"},
		{constraint: "students_user_id_key", expected: "user id"},
		{constraint: "", expected: "value"},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.expected, constraintKey("students", tt.constraint))
		})
	}
}
