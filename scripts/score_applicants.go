package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"alfredoptarigan/loan-approval/internal/config"
	"alfredoptarigan/loan-approval/internal/models"
	"alfredoptarigan/loan-approval/internal/repositories"
	"alfredoptarigan/loan-approval/internal/services"
)

var loanID string

var rootCmd = &cobra.Command{
	Use:   "score-applicants",
	Short: "Score stored loan applications with the configured model",
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

func init() {
	rootCmd.Flags().StringVar(&loanID, "id", "", "Score a single application by Loan_ID")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func runScore(cmd *cobra.Command, args []string) error {
	log.Println("🚀 Starting applicant scoring...")

	cfg := config.Load()

	artifacts, err := services.NewArtifactLoader().Load(cfg.Model.ModelPath, cfg.Model.ScalerPath)
	if err != nil {
		return fmt.Errorf("failed to load artifacts: %w", err)
	}

	schema := models.DefaultSchema()
	predictor, err := services.NewPredictor(
		schema,
		services.NewEncoder(services.LoanEncodingTable()),
		services.NewReconciler(schema, cfg.Model.StrictSchema),
		artifacts,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize predictor: %w", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	repo := repositories.NewApplicantRepository(db)

	scorer := services.NewBatchScorer(repo, predictor, cfg.Worker.Concurrency, cfg.Worker.BatchSize)

	if loanID != "" {
		outcome, err := scorer.ScoreOne(loanID)
		if err != nil {
			return err
		}
		if outcome.Err != nil {
			return fmt.Errorf("failed to score %s: %w", outcome.LoanID, outcome.Err)
		}
		printOutcome(outcome)
		return nil
	}

	total, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count applicants: %w", err)
	}
	log.Printf("📋 Scoring %d applicants\n", total)

	summary, err := scorer.ScoreAll(cmd.Context(), func(o services.ScoreOutcome) {
		if o.Err == nil {
			printOutcome(o)
		}
	})
	if err != nil {
		log.Printf("❌ %v\n", err)
	}

	log.Printf("✅ Scoring completed: %d approved, %d not approved, %d failed\n",
		summary.Approved, summary.Rejected, summary.Failed)
	return err
}

func printOutcome(o services.ScoreOutcome) {
	fmt.Printf("%s,%d,%.4f\n", o.LoanID, o.Result.Label, o.Result.Probability)
}
