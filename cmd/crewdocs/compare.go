package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gabriel/crewdocs/internal/config"
	"github.com/gabriel/crewdocs/internal/export"
	"github.com/gabriel/crewdocs/internal/hierarchy"
	"github.com/gabriel/crewdocs/internal/llm"
	"github.com/gabriel/crewdocs/internal/observability"
	"github.com/gabriel/crewdocs/internal/reconcile"
	"github.com/gabriel/crewdocs/internal/schemas"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a candidate's documents against a requirement matrix",
	Long: `Runs the reconciliation engine offline: reads a requirement matrix and a
candidate document file (both JSON), validates them against the bundled
schemas, and prints one verdict per requirement plus an adherence summary.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runCompare,
}

var (
	compareConfigPath string
	compareMatrix     string
	compareDocuments  string
	compareHierarchy  string
	compareOutput     string
	compareAPIKey     string
	compareVerbose    bool
)

func init() {
	// Config file flag (processed first)
	compareCmd.Flags().StringVar(&compareConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	compareCmd.Flags().StringVarP(&compareMatrix, "matrix", "m", "", "Path to requirement matrix JSON file")
	compareCmd.Flags().StringVarP(&compareDocuments, "documents", "d", "", "Path to candidate documents JSON file")
	compareCmd.Flags().StringVar(&compareHierarchy, "hierarchy", "", "Path to a custom code hierarchy JSON file (optional)")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "Write the comparison as a spreadsheet to this path (optional)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	compareCmd.Flags().StringVar(&compareAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(compareCmd)
}

// matrixEntry mirrors the matrix file schema
type matrixEntry struct {
	ID            string  `json:"id,omitempty"`
	CatalogID     *string `json:"catalog_id,omitempty"`
	Name          string  `json:"name"`
	Code          *string `json:"code,omitempty"`
	Abbreviation  *string `json:"abbreviation,omitempty"`
	Obligation    string  `json:"obligation,omitempty"`
	Modality      *string `json:"modality,omitempty"`
	RequiredHours *int    `json:"required_hours,omitempty"`
	ValidityRule  *string `json:"validity_rule,omitempty"`
}

func runCompare(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if compareConfigPath != "" {
		loadedCfg, err := config.LoadConfig(compareConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Flags override config file values
	flags := config.Config{
		Matrix:    compareMatrix,
		Documents: compareDocuments,
		Hierarchy: compareHierarchy,
		Output:    compareOutput,
		APIKey:    compareAPIKey,
		Verbose:   compareVerbose,
	}
	cfg = flags.MergeWithDefaults(cfg)

	if cfg.Matrix == "" {
		return fmt.Errorf("a requirement matrix is required (--matrix or config)")
	}
	if cfg.Documents == "" {
		return fmt.Errorf("a documents file is required (--documents or config)")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	// Step 3: Validate inputs against the bundled schemas
	if schemaPath := schemas.ResolveSchemaPath(schemas.MatrixSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, cfg.Matrix); err != nil {
			return fmt.Errorf("matrix file rejected: %w", err)
		}
	} else if cfg.Verbose {
		fmt.Println("Warning: matrix schema not found, skipping validation")
	}
	if schemaPath := schemas.ResolveSchemaPath(schemas.DocumentsSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, cfg.Documents); err != nil {
			return fmt.Errorf("documents file rejected: %w", err)
		}
	} else if cfg.Verbose {
		fmt.Println("Warning: documents schema not found, skipping validation")
	}

	// Step 4: Load inputs
	reqs, err := loadMatrix(cfg.Matrix)
	if err != nil {
		return err
	}
	docs, err := loadDocuments(cfg.Documents)
	if err != nil {
		return err
	}

	table := hierarchy.Default()
	if cfg.Hierarchy != "" {
		table, err = hierarchy.LoadFile(cfg.Hierarchy)
		if err != nil {
			return fmt.Errorf("failed to load hierarchy table: %w", err)
		}
	}

	// Step 5: Build the engine, with the AI comparer when a key is available
	var opts []reconcile.Option
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
		opts = append(opts, reconcile.WithNameComparer(llm.NewComparer(client)))
	} else if cfg.Verbose {
		fmt.Println("No API key; running deterministic strategies only")
	}
	engine := reconcile.NewEngine(reconcile.DefaultConfig(), table, opts...)

	// Step 6: Resolve and report
	verdicts := engine.ResolveAll(ctx, reqs.engine, docs)
	summary := reconcile.Aggregate(verdicts)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for i, v := range verdicts {
			printer.PrintVerdict(reqs.names[i], v)
		}
		printer.PrintPendingRequirements(reqs.names, verdicts)
		printer.PrintSummary(summary)
	} else {
		for i, v := range verdicts {
			fmt.Printf("%-40s %-10s %s\n", reqs.names[i], v.Status, v.Observations)
		}
		fmt.Printf("\nAdherence: %d%% (%d satisfied, %d partial, %d pending of %d)\n",
			summary.AdherencePercent, summary.Satisfied, summary.Partial, summary.Pending, summary.Total)
	}

	if cfg.Output != "" {
		if err := writeReport(cfg.Output, reqs, verdicts, summary); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", cfg.Output)
	}

	return nil
}

// loadedMatrix keeps requirement display data alongside the engine inputs
type loadedMatrix struct {
	engine      []reconcile.Requirement
	names       []string
	obligations []string
}

func loadMatrix(path string) (*loadedMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file: %w", err)
	}

	var entries []matrixEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse matrix JSON: %w", err)
	}

	m := &loadedMatrix{}
	for i, e := range entries {
		req := reconcile.Requirement{
			Name:          e.Name,
			Code:          e.Code,
			Abbreviation:  e.Abbreviation,
			Obligation:    reconcile.ObligationLevel(e.Obligation),
			Modality:      e.Modality,
			RequiredHours: e.RequiredHours,
			ValidityRule:  e.ValidityRule,
		}

		// Documents link to catalog identities; an explicit catalog_id makes
		// this row matchable by identity.
		idStr := e.ID
		if e.CatalogID != nil {
			idStr = *e.CatalogID
		}
		if idStr == "" {
			req.ID = uuid.New()
		} else {
			id, err := uuid.Parse(idStr)
			if err != nil {
				return nil, fmt.Errorf("matrix entry %d: invalid id %q: %w", i, idStr, err)
			}
			req.ID = id
		}

		obligation := e.Obligation
		if obligation == "" {
			obligation = "mandatory"
		}

		m.engine = append(m.engine, req)
		m.names = append(m.names, e.Name)
		m.obligations = append(m.obligations, obligation)
	}
	return m, nil
}

func loadDocuments(path string) ([]reconcile.CandidateDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents file: %w", err)
	}

	var records []reconcile.DocumentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse documents JSON: %w", err)
	}

	docs, err := reconcile.CanonicalDocuments(records)
	if err != nil {
		return nil, fmt.Errorf("documents file rejected: %w", err)
	}
	return docs, nil
}

func writeReport(path string, m *loadedMatrix, verdicts []reconcile.Verdict, summary reconcile.Summary) error {
	cmp := export.Comparison{
		VacancyTitle:  "Requirement matrix",
		CandidateName: "Candidate",
		Summary:       summary,
	}
	for i, v := range verdicts {
		cmp.Rows = append(cmp.Rows, export.ComparisonRow{
			RequirementName: m.names[i],
			Obligation:      m.obligations[i],
			Verdict:         v,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := export.WriteExcel(f, cmp); err != nil {
		return err
	}
	return nil
}
