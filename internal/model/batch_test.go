package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchMode_String(t *testing.T) {
	assert.Equal(t, "add", BatchAdd.String())
	assert.Equal(t, "load", BatchLoad.String())
}

func TestBatchSummary_Failed(t *testing.T) {
	summary := BatchSummary{Failures: []BatchFailure{
		{Reference: "a", Err: errors.New("missing")},
		{Reference: "b", Err: errors.New("missing")},
	}}

	assert.Equal(t, 2, summary.Failed())
	assert.Zero(t, BatchSummary{}.Failed())
}

func TestPanelID_Label(t *testing.T) {
	assert.Equal(t, "project", ProjectPanel.Label())
	assert.Equal(t, "additional", AdditionalPanel.Label())
	assert.Equal(t, "other", PanelID("other").Label())
}
