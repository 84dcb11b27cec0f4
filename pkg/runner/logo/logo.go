// Package logo provides the runner logic for attaching a logo image to the
// working draft.
package logo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/callsheet/callsheet/pkg/client"
	"github.com/callsheet/callsheet/pkg/session"
)

// Logo uploads an image file and records the returned URL on the draft.
// The client rejects anything but JPEG or PNG under the size cap before a
// byte goes over the wire.
type Logo struct {
	Path    string
	Client  *client.Client
	Session *session.Session
}

func (n *Logo) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not upload, no backend client")
	}
	if n.Path == "" {
		return errors.New("can not upload, no image path")
	}

	content, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("read logo: %w", err)
	}

	url, err := n.Client.UploadLogo(ctx, filepath.Base(n.Path), content)
	if err != nil {
		return err
	}

	if n.Session != nil {
		n.Session.SetLogoURL(url)
	}
	fmt.Printf("logo at %s\n", url)
	return nil
}
