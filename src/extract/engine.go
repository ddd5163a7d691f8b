package extract

import (
	"strings"

	"go.uber.org/zap"
)

// Options controls a single Run.
type Options struct {
	Overwrite bool
	// Archive zips the materialized tree. ArchivePath defaults to the
	// project root plus ".zip".
	Archive     bool
	ArchivePath string
}

// Result bundles the outcome of every pipeline stage. Materialization and
// Archive are nil for stages that did not run; ArchiveErr carries an archive
// failure without undoing the files already on disk.
type Result struct {
	Tree            *ProjectTree
	Duplicates      []Duplicate
	Warnings        []Warning
	Materialization *MaterializationResult
	Archive         *ArchiveResult
	ArchiveErr      error
}

// Engine wires the pipeline stages together behind one entry point.
type Engine struct {
	inf *Inferencer
	log *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

func WithLogger(log *zap.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

func WithInferencer(inf *Inferencer) EngineOption {
	return func(e *Engine) { e.inf = inf }
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{inf: NewInferencer(), log: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extract runs scan, inference and tree assembly without touching the
// filesystem. Empty code blocks are dropped; a path hint only applies to a
// fence whose immediately preceding segment is prose.
func (e *Engine) Extract(raw string) (*ProjectTree, []Duplicate, []Warning) {
	segs, warns := Scan(raw)
	var specs []FileSpec
	preceding := ""
	for _, seg := range segs {
		if seg.Kind == KindProse {
			preceding = seg.Text
			continue
		}
		if strings.TrimSpace(seg.Text) == "" {
			preceding = ""
			continue
		}
		fs := e.inf.Infer(seg, preceding)
		preceding = ""
		e.log.Debug("resolved code block",
			zap.Int("order", seg.Order),
			zap.String("path", fs.Path),
			zap.String("lang", fs.Lang))
		specs = append(specs, fs)
	}
	tree, dups := BuildTree(specs)
	return tree, dups, warns
}

// Run is the single entry point: extract the tree from raw text, write it
// under root, and optionally zip it. The returned error is non-nil only when
// the root itself is unusable; per-file failures live in the result, and an
// archive failure is reported via Result.ArchiveErr.
func (e *Engine) Run(raw, root string, opts Options) (*Result, error) {
	tree, dups, warns := e.Extract(raw)
	res := &Result{Tree: tree, Duplicates: dups, Warnings: warns}
	for _, w := range warns {
		e.log.Warn("scan warning", zap.String("code", string(w.Code)), zap.String("msg", w.Message))
	}

	mat, err := Materialize(tree, root, opts.Overwrite)
	if err != nil {
		return nil, err
	}
	res.Materialization = mat
	e.log.Info("materialized project",
		zap.String("root", mat.Root),
		zap.Int("written", mat.Written()),
		zap.Int("skipped", mat.Skipped()),
		zap.Int("failed", mat.Failed()))

	if opts.Archive {
		dest := opts.ArchivePath
		if dest == "" {
			dest = strings.TrimRight(mat.Root, "/\\") + ".zip"
		}
		arc, aerr := Archive(tree, mat.Root, dest)
		if aerr != nil {
			e.log.Error("archive failed", zap.String("path", dest), zap.Error(aerr))
			res.ArchiveErr = aerr
		} else {
			res.Archive = arc
			e.log.Info("archived project", zap.String("path", arc.Path), zap.Int("entries", len(arc.Entries)))
		}
	}
	return res, nil
}
