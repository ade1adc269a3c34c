package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/tui"
)

// runViewer runs the interactive viewer until the user quits or ctx is
// cancelled.
func runViewer(ctx context.Context, e *env) error {
	model, err := tui.New(e.cfg, e.log)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	e.log.Info("viewer started", zap.String("scene", e.cfg.Scene.Name))
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		e.log.Warn("viewer closed with an error", zap.Error(m.Err()))
	}
	return nil
}

// signalContext returns a context that is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
