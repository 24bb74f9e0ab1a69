package models

import (
	"testing"

	e "github.com/gartstein/staff/internal/staff/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, street, city string, state USState, zip string) *Address {
	t.Helper()
	addr, err := NewAddress(street, city, state, zip)
	require.NoError(t, err, "NewAddress should succeed")
	return addr
}

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name        string
		street      string
		city        string
		state       USState
		zip         string
		expectError bool
		errContains string
	}{
		{
			name:   "all fields set",
			street: "1234 Sample Street",
			city:   "Arlington",
			state:  Texas,
			zip:    "75104",
		},
		{
			name:   "zip with extension",
			street: "1 Main St",
			city:   "Beverly Hills",
			state:  California,
			zip:    "90210-1234",
		},
		{
			name:   "unset state",
			street: "1 Main St",
			city:   "Springfield",
			zip:    "00000",
		},
		{
			name:        "empty street address",
			city:        "Arlington",
			state:       Texas,
			zip:         "75104",
			expectError: true,
			errContains: "street address",
		},
		{
			name:        "empty city",
			street:      "1234 Sample Street",
			state:       Texas,
			zip:         "75104",
			expectError: true,
			errContains: "city",
		},
		{
			name:        "empty zip code",
			street:      "1234 Sample Street",
			city:        "Arlington",
			state:       Texas,
			expectError: true,
			errContains: "zip code",
		},
		{
			name:        "unknown state",
			street:      "1234 Sample Street",
			city:        "Arlington",
			state:       USState("ATLANTIS"),
			zip:         "75104",
			expectError: true,
			errContains: "state",
		},
		{
			name:        "first missing field is reported",
			expectError: true,
			errContains: "street address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := NewAddress(tt.street, tt.city, tt.state, tt.zip)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, e.ErrInvalidArgument)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, addr, "no partially constructed address")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.street, addr.StreetAddress())
			assert.Equal(t, tt.city, addr.City())
			assert.Equal(t, tt.state, addr.State())
			assert.Equal(t, tt.zip, addr.ZipCode())
		})
	}
}

func TestAddress_String(t *testing.T) {
	addr := mustAddress(t, "1234 Sample Street", "Arlington", Texas, "75104")
	assert.Equal(t, "1234 Sample Street\nArlington, TX 75104", addr.String())

	unset := mustAddress(t, "1 Main St", "Springfield", "", "00000")
	assert.Equal(t, "1 Main St\nSpringfield, N/A 00000", unset.String())
}

func TestAddress_EqualAndHash(t *testing.T) {
	base := mustAddress(t, "1234 Sample Street", "Arlington", Texas, "75104")
	same := mustAddress(t, "1234 Sample Street", "Arlington", Texas, "75104")

	assert.NotSame(t, base, same)
	assert.True(t, base.Equal(same))
	assert.True(t, same.Equal(base))
	assert.Equal(t, base.Hash(), same.Hash())

	variants := map[string]*Address{
		"street": mustAddress(t, "1235 Sample Street", "Arlington", Texas, "75104"),
		"city":   mustAddress(t, "1234 Sample Street", "Austin", Texas, "75104"),
		"state":  mustAddress(t, "1234 Sample Street", "Arlington", Virginia, "75104"),
		"unset":  mustAddress(t, "1234 Sample Street", "Arlington", "", "75104"),
		"zip":    mustAddress(t, "1234 Sample Street", "Arlington", Texas, "75105"),
	}
	for field, other := range variants {
		t.Run(field, func(t *testing.T) {
			assert.False(t, base.Equal(other))
			assert.NotEqual(t, base.Hash(), other.Hash())
		})
	}

	assert.False(t, base.Equal(nil))
	assert.True(t, (*Address)(nil).Equal(nil))
}

func TestAddress_HashFieldBoundaries(t *testing.T) {
	a := mustAddress(t, "ab", "c", Texas, "1")
	b := mustAddress(t, "a", "bc", Texas, "1")
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestAddress_MapKey(t *testing.T) {
	seen := map[Address]int{}
	seen[*mustAddress(t, "1234 Sample Street", "Arlington", Texas, "75104")]++
	seen[*mustAddress(t, "1234 Sample Street", "Arlington", Texas, "75104")]++
	seen[*mustAddress(t, "1 Main St", "Arlington", Texas, "75104")]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[*mustAddress(t, "1234 Sample Street", "Arlington", Texas, "75104")])
}
