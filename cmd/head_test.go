package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptgen.dev/pkg/promptgen/internal/domain"
)

func TestHeadCmd_SetsHead(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newHeadCmd())

	mockWorkflow.EXPECT().SetHead(
		mock.Anything,
		domain.HeadArgs{Head: "Explain this code"},
	).Return(nil)

	cmd.SetArgs([]string{"head", "Explain this code"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestHeadCmd_HeadersOnly(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newHeadCmd())

	mockWorkflow.EXPECT().SetHead(
		mock.Anything,
		domain.HeadArgs{ProjectHeader: "MY CODE:", AdditionalHeader: "LIBRARIES:"},
	).Return(nil)

	cmd.SetArgs([]string{"head", "--project-header", "MY CODE:", "--additional-header", "LIBRARIES:"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestHeadCmd_NothingToUpdate(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newHeadCmd())

	cmd.SetArgs([]string{"head"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoPromptText)
}
