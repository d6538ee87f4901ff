package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/in/cli"
	"orderdesk/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChat(t *testing.T) *cli.Chat {
	t.Helper()

	cfg, err := cmd.LoadConfig(func(string) string { return "" })
	require.NoError(t, err)
	storage, err := cmd.OpenStorage(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	root, err := cmd.NewCompositionRoot(cfg, storage.UoWFactory, nil)
	require.NoError(t, err)
	turn, err := root.CreateProcessTurnCommandHandler()
	require.NoError(t, err)

	return cli.NewChat(root.CreateStartSessionCommandHandler(), turn, root.CreateSetAddressCommandHandler())
}

func TestChat_OrderToReceipt(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"2 fried chicken and a coffee",
		"",
		"/address 12 Main Street",
		"confirm",
		"/quit",
		"this line is never read",
	}, "\n"))
	var out bytes.Buffer

	require.NoError(t, newChat(t).Run(context.Background(), in, &out))

	text := out.String()
	assert.Contains(t, text, "Added to cart: 2x fried chicken, 1x coffee. ")
	assert.Contains(t, text, "Delivery address set to: 12 Main Street")
	assert.Contains(t, text, "ORDER CONFIRMED!")
	assert.Contains(t, text, "- 2x fried chicken ($30.00)")
	assert.Contains(t, text, "Total: $33.00")
	assert.Contains(t, text, "Driver: Gustavo")
	assert.Contains(t, text, "Say anything to start a new order.")
	assert.True(t, strings.HasSuffix(text, "Bye!\n"))
}

func TestChat_BlankAddressIsReported(t *testing.T) {
	var out bytes.Buffer

	err := newChat(t).Run(context.Background(), strings.NewReader("/address    \n"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Please give a street address after /address.")
}

func TestChat_EndOfInput(t *testing.T) {
	var out bytes.Buffer

	err := newChat(t).Run(context.Background(), strings.NewReader("place order"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Your cart is empty!")
}

func TestChat_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	chat := newChat(t)

	done := make(chan error, 1)
	go func() {
		done <- chat.Run(ctx, pr, io.Discard)
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("chat kept waiting for input after cancellation")
	}
}

type failingStart struct{}

func (failingStart) Handle(context.Context, commands.StartSessionCommand) error {
	return errors.New("storage unavailable")
}

func TestChat_StartFailure(t *testing.T) {
	chat := cli.NewChat(failingStart{}, nil, nil)

	err := chat.Run(context.Background(), strings.NewReader(""), &bytes.Buffer{})

	require.ErrorContains(t, err, "start session")
}
