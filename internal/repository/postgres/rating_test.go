package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRatingRepository(t *testing.T) {
	db := &Connection{}
	repo := NewRatingRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewSessionRepository(t *testing.T) {
	db := &Connection{}
	repo := NewSessionRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
