package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devkan/FirstAidVox/internal/bootstrap"
	"github.com/devkan/FirstAidVox/internal/triage"
)

var (
	chatOffline  bool
	chatDetailed bool
	chatVerbose  bool
	chatLat      float64
	chatLng      float64
)

func getChatCommand() *cobra.Command {
	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive triage conversation",
		Long: `Reads one message per line and prints the assistant's reply.
Type "exit" or "quit" (or send EOF) to leave.

Example:
  firstaidvox chat --offline
  firstaidvox chat --lat 37.7749 --lng -122.4194`,
		RunE: runChat,
	}

	chatCmd.Flags().BoolVar(&chatOffline, "offline", false, "Use the scripted mock provider, without retrieval or Places")
	chatCmd.Flags().BoolVar(&chatDetailed, "detailed", false, "Print the detailed reply instead of the brief one")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Enable debug logging")
	chatCmd.Flags().Float64Var(&chatLat, "lat", 0, "Latitude used for hospital lookup")
	chatCmd.Flags().Float64Var(&chatLng, "lng", 0, "Longitude used for hospital lookup")

	return chatCmd
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(chatOffline)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(chatVerbose)

	generator, _, err := bootstrap.Generator(ctx, cfg.LLM, logger)
	if err != nil {
		return err
	}
	knowledge, _ := bootstrap.Knowledge(ctx, cfg, logger)

	s := &session{
		uc:         bootstrap.Triage(cfg, generator, knowledge, logger),
		facilities: bootstrap.Facilities(cfg.Places, logger),
	}
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
		s.location = &triage.Location{Latitude: chatLat, Longitude: chatLng}
	}

	return chatLoop(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout())
}

func chatLoop(ctx context.Context, s *session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Describe what happened. This is not a substitute for emergency services.")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(text) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		res, err := s.send(ctx, text)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		renderReply(out, res.output, chatDetailed)
		if len(res.output.FunctionCalls) > 0 {
			if res.lookupErr != nil {
				fmt.Fprintf(out, "hospital lookup failed: %v\n", res.lookupErr)
			}
			if s.facilities != nil {
				renderFacilities(out, res.facilities)
			}
		}
	}
}
