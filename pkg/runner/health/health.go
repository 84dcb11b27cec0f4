package health

import (
	"context"
	"errors"

	"github.com/callsheet/callsheet/pkg/client"
	"github.com/callsheet/callsheet/pkg/printers"
)

type Health struct {
	Client *client.Client
}

func (n *Health) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not check, no backend client")
	}

	h, err := n.Client.Health(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Health(h)
	return nil
}
