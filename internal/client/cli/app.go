package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/ndmitriev/gatekeeper/internal/client/client"
	"github.com/ndmitriev/gatekeeper/internal/client/config"
)

// App is the interactive Gatekeeper CLI. It keeps the current account between
// commands; the session id itself lives inside the gRPC client, which attaches
// it to every outgoing call.
type App struct {
	config  *config.Config
	service client.Service
	account *client.Account
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGatekeeperClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		service: apiClient,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.service.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.service.IsLoggedIn()
}
