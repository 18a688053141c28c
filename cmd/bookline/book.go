package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/entrhq/bookline/pkg/booking"
	"github.com/entrhq/bookline/pkg/config"
	"github.com/entrhq/bookline/pkg/logging"
	"github.com/entrhq/bookline/pkg/remote"
	"github.com/entrhq/bookline/pkg/search"
)

func newBookCmd() *cobra.Command {
	var (
		venue      string
		date       string
		timeSlot   string
		partySize  int
		contact    string
		configPath string
		screenshot string
		asTable    bool
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Attempt a reservation at a venue",
		Long: `Searches for the venue's booking page, opens it in a remote browser
session, probes for reservation controls, and reports the outcome with a
session replay link for review.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			req := booking.BookingRequest{
				VenueName: venue,
				Date:      date,
				Time:      timeSlot,
				PartySize: partySize,
			}
			if contact != "" {
				req.ContactInfo = booking.ExtractContactInfo(contact).String()
				if req.ContactInfo == "" {
					req.ContactInfo = contact
				}
			}
			if err := req.Validate(); err != nil {
				return err
			}

			log, err := logging.NewLogger("cli")
			if err != nil {
				// A failed logger should not block the booking attempt.
				log = nil
			}
			defer log.Close()

			searcher := search.NewClient(cfg.ExaAPIKey)
			manager := remote.NewManager(remote.Config{
				APIKey:    cfg.BrowserbaseAPIKey,
				ProjectID: cfg.BrowserbaseProjectID,
			}, log)
			defer manager.Shutdown()

			engine := booking.NewEngine(searcher, manager, booking.EngineOptions{
				AttemptTimeout: cfg.AttemptTimeout,
				ScreenshotPath: screenshot,
				Logger:         log,
			})

			outcome := engine.Book(context.Background(), req)
			reporter := booking.NewReporter(cfg.ReplayBaseURL)

			if asTable {
				renderOutcomeTable(outcome, reporter)
			} else {
				fmt.Println(reporter.Render(outcome))
			}

			if outcome.Status != booking.StatusSuccess {
				return fmt.Errorf("booking attempt ended with status %s", outcome.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&venue, "venue", "", "venue name to book (required)")
	cmd.Flags().StringVar(&date, "date", "", "reservation date, e.g. 2026-09-12 (required)")
	cmd.Flags().StringVar(&timeSlot, "time", "", "reservation time, e.g. 7:30 PM (required)")
	cmd.Flags().IntVar(&partySize, "party-size", 2, "number of guests")
	cmd.Flags().StringVar(&contact, "contact", "", "contact details, free text or an email/phone")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&screenshot, "screenshot", "", "write a page screenshot to this path")
	cmd.Flags().BoolVar(&asTable, "table", false, "print the outcome as a table instead of a report")
	_ = cmd.MarkFlagRequired("venue")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.FromEnv(), nil
}

func renderOutcomeTable(out booking.BookingOutcome, reporter *booking.Reporter) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Field", "Value"})
	tw.AppendRow(table.Row{"Status", string(out.Status)})
	tw.AppendRow(table.Row{"Venue", out.Request.VenueName})
	tw.AppendRow(table.Row{"Date", out.Request.Date})
	tw.AppendRow(table.Row{"Time", out.Request.Time})
	tw.AppendRow(table.Row{"Party Size", out.Request.PartySize})
	if out.Platform != "" && out.Platform != booking.PlatformUnknown {
		tw.AppendRow(table.Row{"Platform", string(out.Platform)})
	}
	if out.BookingURL != "" {
		tw.AppendRow(table.Row{"Booking URL", out.BookingURL})
	}
	if out.ConfirmationToken != "" {
		tw.AppendRow(table.Row{"Confirmation", out.ConfirmationToken})
	}
	if out.PageTitle != "" {
		tw.AppendRow(table.Row{"Page Title", out.PageTitle})
	}
	if out.AffordanceInfo != "" {
		tw.AppendRow(table.Row{"Affordance", out.AffordanceInfo})
	}
	if replay := reporter.ReplayURL(out); replay != "" {
		tw.AppendRow(table.Row{"Replay", replay})
	}
	if out.ErrorDetail != "" {
		tw.AppendRow(table.Row{"Detail", out.ErrorDetail})
	}
	tw.Render()
}
