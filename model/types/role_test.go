package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect Role
		hasErr bool
	}{
		{name: "melody", input: "melody", expect: RoleMelody},
		{name: "upper case", input: "HARMONY", expect: RoleHarmony},
		{name: "padded", input: " rhythm ", expect: RoleRhythm},
		{name: "bass", input: "bass", expect: RoleBass},
		{name: "unknown", input: "percussion", hasErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ParseRole(tc.input)
			if tc.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestRole_Cue(t *testing.T) {
	assert.Equal(t, "[violin plays melody]", RoleMelody.Cue("violin"))
	assert.Equal(t, "[cello adds harmony]", RoleHarmony.Cue("cello"))
	assert.Equal(t, "[drums keeps rhythm]", RoleRhythm.Cue("drums"))
	assert.Equal(t, "[tuba provides foundation]", RoleBass.Cue("tuba"))
}

func TestRole_Order(t *testing.T) {
	assert.Equal(t, []Role{RoleMelody, RoleHarmony, RoleRhythm, RoleBass}, Roles)
	var zero Role
	assert.Equal(t, RoleMelody, zero)
}

func TestRole_YAML(t *testing.T) {
	type holder struct {
		Role Role `yaml:"role"`
	}
	data, err := yaml.Marshal(holder{Role: RoleRhythm})
	require.NoError(t, err)
	assert.Equal(t, "role: rhythm\n", string(data))

	data, err = yaml.Marshal(holder{Role: Role(9)})
	require.NoError(t, err)
	assert.Equal(t, "role: role(9)\n", string(data))

	var decoded holder
	require.NoError(t, yaml.Unmarshal([]byte("role: bass"), &decoded))
	assert.Equal(t, RoleBass, decoded.Role)
	assert.Error(t, yaml.Unmarshal([]byte("role: kazoo"), &decoded))
}
