package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medicheck/medicheck/internal/application/handlers"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Long:  "Chats with the model in the terminal. Type 'exit' or 'quit' to leave.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				return chatLoop(cmd.Context(), deps.ChatHandler, os.Stdin, os.Stdout)
			})
		},
	}
}

// chatLoop reads messages line by line until EOF, an exit word or context
// cancellation. Failed turns are reported and the loop continues.
func chatLoop(ctx context.Context, handler *handlers.ChatHandler, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "MediCheck chat. Type 'exit' or 'quit' to leave.")

	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if slices.Contains(exitWords, strings.ToLower(message)) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		result, err := handler.Handle(ctx, cliSession, message)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Bot: %s\n", result.Response)
	}
}
