package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingContentService,
		ErrMissingChangelogService,
		ErrMissingThemeService,
		ErrNilPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrors_Messages(t *testing.T) {
	assert.Contains(t, ErrMissingContentService.Error(), "content service")
	assert.Contains(t, ErrMissingChangelogService.Error(), "changelog service")
	assert.Contains(t, ErrMissingThemeService.Error(), "theme service")
}
