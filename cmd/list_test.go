package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCmd_CallsWorkflow(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything).Return(nil).Once()

	cmd.SetArgs([]string{"list"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestListCmd_PositionalArgsAreRejected(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newListCmd())

	cmd.SetArgs([]string{"list", "extra"})
	err := cmd.Execute()
	require.Error(t, err)
}
