package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/callsheet/callsheet/pkg/client"
)

// Export downloads the backend's CSV rendering of a project.
type Export struct {
	ID     string
	Output string
	Client *client.Client
}

func (n *Export) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not export, no backend client")
	}
	if n.ID == "" {
		return errors.New("can not export, no project id")
	}

	csv, err := n.Client.ExportCSV(ctx, n.ID)
	if err != nil {
		return err
	}

	if n.Output == "" || n.Output == "-" {
		_, err = os.Stdout.Write(csv)
		return err
	}

	if err := os.WriteFile(n.Output, csv, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("wrote %s\n", n.Output)
	return nil
}
