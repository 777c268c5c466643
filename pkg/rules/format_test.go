package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valdi/pkg/rules"
)

func TestEmail(t *testing.T) {
	c := rules.Email("email", self[string])

	valid := []string{
		"ada@example.com",
		"first.last+tag@sub.example.org",
		"user_1@example.co.uk",
	}
	for _, v := range valid {
		assert.True(t, passes(t, c, v, "email"), v)
	}

	invalid := []string{
		"",
		"   ",
		"ada",
		"ada@",
		"@example.com",
		"ada@localhost",
		"ada@example..com",
		"ada@.example.com",
		"ada@example.com.",
		"Ada <ada@example.com>",
		"ada@exa mple.com",
	}
	for _, v := range invalid {
		assert.False(t, passes(t, c, v, "email"), v)
	}
}

func TestURL(t *testing.T) {
	t.Run("any scheme", func(t *testing.T) {
		c := rules.URL("website", self[string])
		assert.True(t, passes(t, c, "https://example.com", "website"))
		assert.True(t, passes(t, c, "ftp://files.example.com/a.txt", "website"))
		assert.False(t, passes(t, c, "", "website"))
		assert.False(t, passes(t, c, "example.com", "website"))
		assert.False(t, passes(t, c, "/relative/path", "website"))
		assert.False(t, passes(t, c, "mailto:ada@example.com", "website"))

		err, _ := c.Check("nope")
		assert.Equal(t, "must be a valid URL", err.Message)
		assert.Nil(t, err.Params)
	})

	t.Run("restricted schemes", func(t *testing.T) {
		c := rules.URL("website", self[string], "http", "https")
		assert.True(t, passes(t, c, "http://example.com", "website"))
		assert.True(t, passes(t, c, "https://example.com/path?q=1", "website"))
		assert.False(t, passes(t, c, "ftp://example.com", "website"))

		err, failed := c.Check("ftp://example.com")
		require.True(t, failed)
		assert.Equal(t, "must be a valid URL with scheme: http, https", err.Message)
		assert.Equal(t, map[string]any{"schemes": []string{"http", "https"}}, err.Params)
	})
}

func TestUUID(t *testing.T) {
	c := rules.UUID("id", self[string])

	assert.True(t, passes(t, c, "550e8400-e29b-41d4-a716-446655440000", "id"))
	assert.True(t, passes(t, c, "00000000-0000-0000-0000-000000000000", "id"))
	assert.False(t, passes(t, c, "", "id"))
	assert.False(t, passes(t, c, "550e8400e29b41d4a716446655440000", "id"))
	assert.False(t, passes(t, c, "{550e8400-e29b-41d4-a716-446655440000}", "id"))
	assert.False(t, passes(t, c, "urn:uuid:550e8400-e29b-41d4-a716-446655440000", "id"))
	assert.False(t, passes(t, c, "550e8400-e29b-41d4-a716-44665544000g", "id"))
}

func TestMatches(t *testing.T) {
	c := rules.Matches("slug", `^[a-z0-9]+(-[a-z0-9]+)*$`, self[string])

	assert.True(t, passes(t, c, "hello-world", "slug"))
	assert.False(t, passes(t, c, "Hello World", "slug"))
	assert.False(t, passes(t, c, "trailing-", "slug"))

	err, _ := c.Check("x y")
	assert.Equal(t, "pattern", err.Code)
	assert.Equal(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, err.Params["pattern"])

	assert.Panics(t, func() {
		rules.Matches("slug", `(`, self[string])
	})
}
