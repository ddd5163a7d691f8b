package src

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codeloom-ai/codeloom/src/extract"
	"github.com/codeloom-ai/codeloom/src/provider"
)

// FileAction is one user-visible outcome of a generation turn.
type FileAction struct {
	Path, Action, Message string
	Err                   error
	Diff                  string
}

// GenerateOptions controls where a one-shot generation lands.
type GenerateOptions struct {
	ProjectDir string
	Overwrite  bool
	Zip        bool
	ZipPath    string
}

// GenerateResult carries the raw model response plus everything written.
type GenerateResult struct {
	Response   string
	ProjectDir string
	Extraction *extract.Result
	Actions    []FileAction
}

// RunGenerate asks the model for files and materializes the response. The
// prompt is always enriched with the file-output contract so fences come back
// extractable.
func RunGenerate(ctx context.Context, client provider.Client, model, userPrompt string, engine *extract.Engine, tracker *ChangeTracker, opts GenerateOptions) (*GenerateResult, error) {
	if client == nil {
		return nil, errors.New("no provider client configured")
	}
	if strings.TrimSpace(userPrompt) == "" {
		return nil, errors.New("prompt cannot be empty")
	}
	if opts.ProjectDir == "" {
		return nil, errors.New("project directory not set")
	}
	if engine == nil {
		engine = extract.NewEngine()
	}

	response, err := client.Complete(ctx, model, provider.EnrichForFiles(userPrompt))
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	// The engine overwrites in place, so capture the previous content of every
	// target before it writes. Snapshot caches on first sight; the post-run
	// diff below reads from that cache, not the rewritten file.
	if tracker != nil {
		pre, _, _ := engine.Extract(response)
		for _, p := range pre.Paths() {
			tracker.Snapshot(opts.ProjectDir, p)
		}
	}

	res, err := engine.Run(response, opts.ProjectDir, extract.Options{
		Overwrite:   opts.Overwrite,
		Archive:     opts.Zip,
		ArchivePath: opts.ZipPath,
	})
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Response:   response,
		ProjectDir: res.Materialization.Root,
		Extraction: res,
		Actions:    extractionActions(res, tracker),
	}, nil
}

// extractionActions flattens an extraction result into display actions, with
// diffs for files that replaced earlier content.
func extractionActions(res *extract.Result, tracker *ChangeTracker) []FileAction {
	var actions []FileAction
	for _, w := range res.Warnings {
		actions = append(actions, FileAction{Action: "info", Message: w.Message})
	}
	root := ""
	if res.Materialization != nil {
		root = res.Materialization.Root
	}
	for _, e := range entries(res) {
		switch e.Status {
		case extract.StatusWritten:
			act := FileAction{Path: e.Path, Action: "saved"}
			if tracker != nil {
				spec, _ := res.Tree.Get(e.Path)
				before := tracker.Snapshot(root, e.Path)
				act.Diff = tracker.Diff(e.Path, before, []byte(spec.Content))
				tracker.Record(e.Path, []byte(spec.Content))
			}
			actions = append(actions, act)
		case extract.StatusSkipped:
			actions = append(actions, FileAction{Path: e.Path, Action: "skipped", Message: "already exists"})
		case extract.StatusFailed:
			actions = append(actions, FileAction{Path: e.Path, Action: "error", Message: e.Reason, Err: e.Err})
		}
	}
	for _, d := range res.Duplicates {
		actions = append(actions, FileAction{Path: d.Path, Action: "info", Message: "identical duplicate block dropped"})
	}
	if res.Archive != nil {
		actions = append(actions, FileAction{Path: res.Archive.Path, Action: "archived", Message: fmt.Sprintf("%d files", len(res.Archive.Entries))})
	}
	if res.ArchiveErr != nil {
		actions = append(actions, FileAction{Action: "error", Message: "archive failed", Err: res.ArchiveErr})
	}
	return actions
}

func entries(res *extract.Result) []extract.EntryResult {
	if res.Materialization == nil {
		return nil
	}
	return res.Materialization.Entries
}
