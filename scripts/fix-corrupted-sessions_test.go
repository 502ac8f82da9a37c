package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblem(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		data string
		want string
	}{
		{
			name: "healthy",
			key:  "session:ses_1",
			data: `{"id":"ses_1","character_uids":["A"],"entity_turn":[{"entity_uid":"A","entity_type":"character"}]}`,
		},
		{name: "bad json", key: "session:ses_1", data: `{`, want: "corrupted JSON"},
		{
			name: "id mismatch",
			key:  "session:ses_1",
			data: `{"id":"ses_2"}`,
			want: `id "ses_2" does not match key`,
		},
		{
			name: "queued twice",
			key:  "session:ses_1",
			data: `{"id":"ses_1","character_uids":["A"],"entity_turn":[{"entity_uid":"A"},{"entity_uid":"A"}]}`,
			want: "A is queued twice",
		},
		{
			name: "queued stranger",
			key:  "session:ses_1",
			data: `{"id":"ses_1","character_uids":["A"],"entity_turn":[{"entity_uid":"B"}]}`,
			want: "queued B is not in the roster",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, problem(tc.key, tc.data))
		})
	}
}
