package storage

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialKey(t *testing.T) {
	key := MaterialKey("task-1", "diagram.png")
	assert.Equal(t, "textloom/task-1/materials/diagram.png", key)
}

func TestKeyframeKey(t *testing.T) {
	key := KeyframeKey("task-1", "media-9", 2)
	assert.Equal(t, "textloom/task-1/keyframes/media-9_2.jpg", key)
}

func TestUploadKey(t *testing.T) {
	key := UploadKey("clip.mp4")
	assert.Regexp(t, regexp.MustCompile(`^uploads/\d{4}/\d{2}/\d{2}/[0-9a-f-]{36}_clip\.mp4$`), key)
}

func TestPublicURLAndNamespace(t *testing.T) {
	s := &Store{publicBaseURL: "https://cdn.example.com/media"}

	url := s.PublicURL("textloom/task-1/materials/a.png")
	assert.Equal(t, "https://cdn.example.com/media/textloom/task-1/materials/a.png", url)

	assert.True(t, s.InNamespace(url))
	assert.False(t, s.InNamespace("https://elsewhere.example.com/a.png"))
	// Prefix match must be on a path boundary.
	assert.False(t, s.InNamespace("https://cdn.example.com/media-evil/a.png"))

	empty := &Store{}
	assert.False(t, empty.InNamespace(url))
}
