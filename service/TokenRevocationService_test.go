package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssuedBeforeRevocation(t *testing.T) {
	revokedAt := int64(1700000000)
	assert.True(t, issuedBeforeRevocation(revokedAt-1, revokedAt))
	assert.True(t, issuedBeforeRevocation(revokedAt, revokedAt))
	assert.False(t, issuedBeforeRevocation(revokedAt+1, revokedAt))
}
