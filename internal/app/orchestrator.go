package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quantmind-br/autotag-go/internal/config"
	"github.com/quantmind-br/autotag-go/internal/domain"
	"github.com/quantmind-br/autotag-go/internal/manifest"
	"github.com/quantmind-br/autotag-go/internal/utils"
	"github.com/quantmind-br/autotag-go/internal/walker"
)

// outcome is the terminal state of one manifest
type outcome int

const (
	outcomeOptedOut outcome = iota
	outcomeTagExists
	outcomeDryRun
	outcomeTagged
)

// Summary aggregates the terminal states of one run
type Summary struct {
	Discovered    int
	OptedOut      int
	AlreadyTagged int
	DryRun        int
	Tagged        int
	Failed        int
}

// Orchestrator coordinates the manifest scan and tag creation. Manifests
// are processed strictly one at a time; each failure is scoped to its
// manifest and never aborts the run.
type Orchestrator struct {
	cfg       config.RunConfig
	store     domain.TagStore
	extractor *manifest.Extractor
	walker    *walker.Walker
	tagger    domain.Identity
	logger    *utils.Logger
	out       io.Writer
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	RunConfig config.RunConfig
	Store     domain.TagStore
	Logger    *utils.Logger
	// Out receives the per-manifest action lines; defaults to stdout
	Out io.Writer
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("tag store is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return &Orchestrator{
		cfg:       opts.RunConfig,
		store:     opts.Store,
		extractor: manifest.NewExtractor(),
		walker:    walker.NewWalker(logger),
		tagger: domain.Identity{
			Name:  opts.RunConfig.GitUserName,
			Email: opts.RunConfig.GitUserEmail,
		},
		logger: logger,
		out:    out,
	}, nil
}

// Run scans the configured paths and applies the tagging policy to every
// discovered manifest, in discovery order
func (o *Orchestrator) Run() Summary {
	startTime := time.Now()

	o.logger.Info().
		Strs("paths", o.cfg.Paths).
		Bool("dry_run", o.cfg.DryRun).
		Msg("Starting manifest scan")

	var summary Summary

	o.walker.Walk(o.cfg.Paths, func(path string, spec manifest.EcosystemSpec) {
		summary.Discovered++

		result, err := o.processManifest(path, spec)
		if err != nil {
			summary.Failed++
			merr := domain.NewManifestError(path, err)
			fmt.Fprintln(o.out, merr.Error())
			o.logger.Error().
				Err(err).
				Str("path", path).
				Str("ecosystem", string(spec.Ecosystem)).
				Msg("Manifest processing failed")
			return
		}

		switch result {
		case outcomeOptedOut:
			summary.OptedOut++
		case outcomeTagExists:
			summary.AlreadyTagged++
		case outcomeDryRun:
			summary.DryRun++
		case outcomeTagged:
			summary.Tagged++
		}
	})

	o.logger.Info().
		Dur("duration", time.Since(startTime)).
		Int("discovered", summary.Discovered).
		Int("tagged", summary.Tagged).
		Int("already_tagged", summary.AlreadyTagged).
		Int("opted_out", summary.OptedOut).
		Int("dry_run", summary.DryRun).
		Int("failed", summary.Failed).
		Msg("Manifest scan completed")

	if summary.Failed > 0 {
		o.logger.Warn().
			Int("failed", summary.Failed).
			Msg("Some manifests failed to process")
	}

	return summary
}

func (o *Orchestrator) processManifest(path string, spec manifest.EcosystemSpec) (outcome, error) {
	desc, err := o.extractor.Extract(path, spec)
	if err != nil {
		return 0, err
	}

	if !desc.AutoTagEnabled {
		o.logger.Debug().
			Str("path", path).
			Msg("Auto-tag not enabled, skipping")
		return outcomeOptedOut, nil
	}

	return o.applyTag(desc)
}

func (o *Orchestrator) applyTag(desc *domain.PackageDescriptor) (outcome, error) {
	req := domain.NewTagRequest(desc)

	exists, err := o.store.TagExists(req.Name)
	if err != nil {
		return 0, err
	}
	if exists {
		fmt.Fprintf(o.out, "tag %q already exists, skipping...\n", req.Name)
		return outcomeTagExists, nil
	}

	commit, err := o.store.ResolveCommit(o.cfg.Commit)
	if err != nil {
		return 0, err
	}

	if o.cfg.DryRun {
		fmt.Fprintf(o.out, "would create tag %q for %q with message %q as %s (%s)\n",
			req.Name, commit, req.Message, o.tagger.Name, o.tagger.Email)
		return outcomeDryRun, nil
	}

	if err := o.store.CreateTag(req.Name, commit, req.Message, o.tagger); err != nil {
		return 0, err
	}

	fmt.Fprintf(o.out, "created tag %q\n", req.Name)
	return outcomeTagged, nil
}
