package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptFieldTriState(t *testing.T) {
	type payload struct {
		Name  OptField[string] `json:"name"`
		Count OptField[int64]  `json:"count"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Name.Set)
	assert.Nil(t, absent.Name.Ptr())

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &null))
	assert.True(t, null.Name.Set)
	assert.False(t, null.Name.Valid)
	assert.Nil(t, null.Name.Ptr())

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Ana", "count": 3}`), &set))
	assert.True(t, set.Name.Set)
	require.NotNil(t, set.Name.Ptr())
	assert.Equal(t, "Ana", *set.Name.Ptr())
	assert.Equal(t, int64(3), *set.Count.Ptr())
}

func TestOptFieldRejectsWrongType(t *testing.T) {
	type payload struct {
		Count OptField[int64] `json:"count"`
	}
	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"count": "three"}`), &p))
}
