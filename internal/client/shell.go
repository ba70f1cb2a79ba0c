package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

const shellPrompt = "vault> "

// autoLockWorker runs the auto-lock job as a [workers.Worker].
type autoLockWorker struct {
	job  service.AutoLockJob
	idle time.Duration
}

func (w autoLockWorker) Start(ctx context.Context) { w.job.Start(ctx, w.idle) }

func (w autoLockWorker) Stop() { w.job.Stop() }

func (a *App) shellCommand(unlock unlockFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively, staying unlocked between them",
		Long: `Run commands interactively. The vaults stay unlocked between commands
and are locked again after the configured period without input.
Type "exit" or press Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if err := unlock(ctx, ""); err != nil {
				return err
			}

			bg := workers.NewWorkers(autoLockWorker{job: a.rt.autoLock, idle: a.rt.autoLockAfter})
			bg.Start(ctx)
			defer bg.Stop()

			return a.shell(ctx)
		},
	}
}

// shell reads command lines until exit or end of input.
func (a *App) shell(ctx context.Context) error {
	for {
		line, err := a.prompter.Line(shellPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.errOut)
			return nil
		}
		if err != nil {
			return err
		}
		a.rt.autoLock.Touch()

		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintln(a.errOut, "Error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			return nil
		case "shell":
			fmt.Fprintln(a.errOut, "Error: already in the shell")
			continue
		}

		root := a.newRootCommand()
		root.SetArgs(args)
		if err = root.ExecuteContext(ctx); err != nil {
			fmt.Fprintln(a.errOut, "Error:", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// splitArgs splits a command line on blanks. Single and double quotes group
// words; there are no escapes.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}
