package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlogStatusToggle(t *testing.T) {
	next, ok := BlogPublished.Toggle()
	assert.True(t, ok)
	assert.Equal(t, BlogUnpublished, next)

	next, ok = BlogUnpublished.Toggle()
	assert.True(t, ok)
	assert.Equal(t, BlogPublished, next)

	next, ok = BlogDraft.Toggle()
	assert.False(t, ok)
	assert.Equal(t, BlogDraft, next)
}

func TestBlogStatusValid(t *testing.T) {
	assert.True(t, BlogDraft.Valid())
	assert.True(t, BlogPublished.Valid())
	assert.True(t, BlogUnpublished.Valid())
	assert.False(t, BlogStatus("archived").Valid())
}
