package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpStatus_Terminal(t *testing.T) {
	assert.False(t, HelpStatusInProgress.Terminal())
	assert.False(t, HelpStatusPendingConfirmation.Terminal())
	assert.True(t, HelpStatusCompleted.Terminal())
	assert.True(t, HelpStatusCancelled.Terminal())
}
