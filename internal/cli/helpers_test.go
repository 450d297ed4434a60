package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/cloudbill/internal/dataset"
	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

func mockDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := dataset.Load(context.Background(), dataset.NewMockSource())
	if err != nil {
		t.Fatalf("failed to load mock dataset: %v", err)
	}
	return ds
}

// filterCmd returns a throwaway command with the filter flags parsed from args.
func filterCmd(t *testing.T, args ...string) (*cobra.Command, *filterFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	f := &filterFlags{}
	f.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd, f
}
