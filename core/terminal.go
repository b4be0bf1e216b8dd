package core

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hamidzr/movebox/model"
	"github.com/hamidzr/movebox/render"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const (
	terminalFrameInterval = time.Second / 30
	clearScreen           = "\033[H\033[2J"
	hideCursor            = "\033[?25l"
	showCursor            = "\033[?25h"
	keyCtrlC              = 3
)

// RunTerminal runs the demo in the terminal attached to in until the user
// quits with q or ctrl-c, or ctx is done.
func RunTerminal(ctx context.Context, cfg *model.Config, in *os.File, out io.Writer) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return model.NewExitError(model.NoTerminal, errors.New("terminal mode needs an interactive tty"))
	}
	columns, _, err := term.GetSize(fd)
	if err != nil {
		return errors.Wrap(err, "failed to read terminal size")
	}
	curve, err := render.CurveByName(cfg.Easing)
	if err != nil {
		return err
	}

	scene := newTerminalScene(columns, cfg)
	toggle, err := NewPositionToggle(cfg, NewTickerAnimator(scene, curve, 0), scene)
	if err != nil {
		return err
	}
	defer toggle.Close()
	// the terminal layout is known before the first frame
	toggle.Initialize(scene)

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "failed to set raw terminal mode")
	}
	defer func() {
		if err := term.Restore(fd, oldState); err != nil {
			logrus.WithError(err).Error("failed to restore terminal")
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	drawDone := make(chan struct{})
	go func() {
		defer close(drawDone)
		drawLoop(ctx, out, scene)
	}()
	defer func() {
		cancel()
		<-drawDone
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	keys := make(chan byte)
	readErr := make(chan error, 1)
	go readKeys(ctx, in, keys, readErr)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			return nil
		case err := <-readErr:
			return errors.Wrap(err, "failed to read keys")
		case key := <-keys:
			switch key {
			case ' ', '\r', '\n':
				if _, err := toggle.Trigger(); err != nil {
					logrus.WithError(err).Warn("move not started")
				}
			case 'q', 'Q', keyCtrlC:
				return nil
			}
		}
	}
}

// readKeys forwards raw bytes until the reader fails or ctx is done.
func readKeys(ctx context.Context, in io.Reader, keys chan<- byte, readErr chan<- error) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err != nil {
			select {
			case readErr <- err:
			case <-ctx.Done():
			}
			return
		}
		if n == 1 {
			select {
			case keys <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}
}

func drawLoop(ctx context.Context, out io.Writer, scene *terminalScene) {
	_, _ = io.WriteString(out, hideCursor)
	defer func() {
		// leave the last frame on screen below the prompt
		_, _ = io.WriteString(out, "\r\n"+showCursor)
	}()
	ticker := time.NewTicker(terminalFrameInterval)
	defer ticker.Stop()
	for {
		if _, err := io.WriteString(out, clearScreen+strings.Join(scene.Frame(), "\r\n")); err != nil {
			logrus.WithError(err).Error("failed to draw frame")
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
