package cmd

import (
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promptgen.dev/pkg/promptgen/internal/domain"
)

func TestGenerateCmd_CopiesByDefault(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newGenerateCmd())

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Output == nil && args.Head == ""
	})).Return(nil)

	cmd.SetArgs([]string{"generate"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestGenerateCmd_PrintWritesToCommandOutput(t *testing.T) {
	cmd, mockWorkflow, out := newTestRoot(t, newGenerateCmd())

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.GenerateArgs) bool {
		return args.Output == io.Writer(out) && args.Head == "Review this"
	})).Return(nil)

	cmd.SetArgs([]string{"generate", "--print", "--head", "Review this"})
	err := cmd.Execute()
	require.NoError(t, err)
}
