package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	snapshot := CheckHealth(context.Background(), map[string]Pinger{
		"redis": PingFunc(func(context.Context) error { return nil }),
		"mongo": PingFunc(func(context.Context) error { return errors.New("down") }),
	})

	assert.True(t, snapshot.Services["redis"])
	assert.False(t, snapshot.Services["mongo"])
	assert.False(t, snapshot.CheckedAt.IsZero())

	stored := GetHealthStatus()
	assert.Equal(t, snapshot.Services, stored.Services)

	// The returned snapshot is a copy.
	stored.Services["redis"] = false
	assert.True(t, GetHealthStatus().Services["redis"])
}
