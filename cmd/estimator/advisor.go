package main

import (
	"strings"

	"github.com/spf13/cobra"

	advisorsvc "estimator_backend/internal/advisor/service"
	"estimator_backend/internal/advisor/transport"
	"estimator_backend/platform/validator"
)

type detailFlags struct {
	location   string
	budget     string
	experience string
	timeline   string
}

func (f *detailFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.location, "location", "", "project location")
	cmd.Flags().StringVar(&f.budget, "budget", "", "budget tier hint")
	cmd.Flags().StringVar(&f.experience, "experience", "", "experience level hint")
	cmd.Flags().StringVar(&f.timeline, "timeline", "", "timeline hint (short, long)")
}

func (f *detailFlags) request() *transport.DetailsRequest {
	if f.location == "" && f.budget == "" && f.experience == "" && f.timeline == "" {
		return nil
	}
	return &transport.DetailsRequest{
		Location:   f.location,
		Budget:     f.budget,
		Experience: f.experience,
		Timeline:   f.timeline,
	}
}

// offlineAdvisor answers from the embedded tool knowledge with indicative prices.
func offlineAdvisor(cmd *cobra.Command) (*advisorsvc.Service, error) {
	kb, err := advisorsvc.DefaultKnowledge()
	if err != nil {
		return nil, err
	}
	return advisorsvc.New(kb, nil, cliLogger(cmd)), nil
}

func classifyCmd() *cobra.Command {
	var details detailFlags

	cmd := &cobra.Command{
		Use:   "classify <description>",
		Short: "Classify a project description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := transport.ClassifyRequest{
				Query:   strings.Join(args, " "),
				Details: details.request(),
			}
			if err := validator.New().Struct(req); err != nil {
				return err
			}

			svc, err := offlineAdvisor(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), transport.ToClassificationResponse(svc.Classify(req)))
		},
	}
	details.register(cmd)
	return cmd
}

func adviseCmd() *cobra.Command {
	var (
		details detailFlags
		season  string
	)

	cmd := &cobra.Command{
		Use:   "advise <description>",
		Short: "Recommend hire equipment for a project description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := transport.AdviceRequest{
				Query:   strings.Join(args, " "),
				Details: details.request(),
				Season:  season,
			}
			if err := validator.New().Struct(req); err != nil {
				return err
			}

			svc, err := offlineAdvisor(cmd)
			if err != nil {
				return err
			}
			advice, err := svc.Advise(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), transport.ToAdviceResponse(advice))
		},
	}
	details.register(cmd)
	cmd.Flags().StringVar(&season, "season", "", "season for hire pricing (spring, summer, autumn, winter)")
	return cmd
}
