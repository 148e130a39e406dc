/*
Package cli provides command-line interface utilities for the pathwarden
command.

Output Formatting:

The cli package supports text and JSON output for displaying command
results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	data := MyCommandResult{...}
	if err := formatter.FormatTo(os.Stdout, data); err != nil {
		return err
	}

Exit Codes:

Commands that evaluate operations distinguish usage errors from policy
violations through ExitError:

	if err := s.ValidateDeletion(); err != nil {
		return cli.NewExitError(cli.ExitViolation, err)
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
