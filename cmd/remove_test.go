package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptgen.dev/pkg/promptgen/internal/domain"
	m "promptgen.dev/pkg/promptgen/internal/model"
)

func TestRemoveCmd_PassesKeys(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newRemoveCmd())

	mockWorkflow.On("Remove", mock.Anything, mock.MatchedBy(func(args domain.RemoveArgs) bool {
		return args.Panel == m.ProjectPanel &&
			len(args.Keys) == 2 &&
			args.Keys[0] == "/p/src/A.java" &&
			args.Keys[1] == "classpath:a.B"
	})).Return(nil)

	cmd.SetArgs([]string{"remove", "/p/src/A.java", "classpath:a.B"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRemoveCmd_AdditionalAlias(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newRemoveCmd())

	mockWorkflow.On("Remove", mock.Anything, mock.MatchedBy(func(args domain.RemoveArgs) bool {
		return args.Panel == m.AdditionalPanel && len(args.Keys) == 1
	})).Return(nil)

	cmd.SetArgs([]string{"rm", "-a", "/p/lib/x.jar!/a/B.java"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRemoveCmd_RequiresKey(t *testing.T) {
	cmd, _, _ := newTestRoot(t, newRemoveCmd())

	cmd.SetArgs([]string{"remove"})
	err := cmd.Execute()
	require.Error(t, err)
}
