package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("VINOM_MAZE_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnvWithDefault("VINOM_MAZE_TEST_VALUE", "default"))
	assert.Equal(t, "default", getEnvWithDefault("VINOM_MAZE_TEST_MISSING", "default"))
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Setenv("VINOM_MAZE_TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsIntWithDefault("VINOM_MAZE_TEST_INT", 7))
	assert.Equal(t, 7, getEnvAsIntWithDefault("VINOM_MAZE_TEST_INT_MISSING", 7))
}

func TestMongoURI(t *testing.T) {
	c := Config{DBHost: "db", DBPort: 27017}
	assert.Equal(t, "mongodb://db:27017", c.MongoURI())

	c.DBUser, c.DBPassword = "maze", "secret"
	assert.Equal(t, "mongodb://maze:secret@db:27017", c.MongoURI())
}
