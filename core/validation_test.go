package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidate(t *testing.T) {
	valid := Candidate{ID: "1", Label: "MacBook Pro", Popularity: 90}

	t.Run("valid candidate", func(t *testing.T) {
		require.NoError(t, ValidateCandidate(valid))
	})

	t.Run("empty id", func(t *testing.T) {
		c := valid
		c.ID = ""
		err := ValidateCandidate(c)
		assert.ErrorIs(t, err, ErrInvalidCandidate)
		assert.ErrorIs(t, err, ErrEmptyID)
	})

	t.Run("empty label", func(t *testing.T) {
		c := valid
		c.Label = ""
		err := ValidateCandidate(c)
		assert.ErrorIs(t, err, ErrInvalidCandidate)
		assert.ErrorIs(t, err, ErrEmptyLabel)
	})

	t.Run("negative popularity", func(t *testing.T) {
		c := valid
		c.Popularity = -1
		err := ValidateCandidate(c)
		assert.ErrorIs(t, err, ErrNegativePopularity)
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		assert.NoError(t, ValidateCandidate(Candidate{ID: "2", Label: "Plain"}))
	})
}
