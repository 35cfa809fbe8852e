package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLines_NoColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	Success(&buf, "Created collection: %s", "users")
	Skipped(&buf, "Collection already exists: %s", "orders")
	Blank(&buf)
	Info(&buf, "Creating indexes...")
	Failure(&buf, "boom")
	Done(&buf, "MongoDB schema setup complete!")

	assert.Equal(t,
		"✅ Created collection: users\n"+
			"⚙️ Collection already exists: orders\n"+
			"\n"+
			"⚙️ Creating indexes...\n"+
			"❌ boom\n"+
			"🎉 MongoDB schema setup complete!\n",
		buf.String())
}
