package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/jeyms233/jsontree"
	"github.com/jeyms233/jsontree/encode"
	"github.com/jeyms233/jsontree/ir"
	"github.com/jeyms233/jsontree/parse"
	"github.com/jeyms233/jsontree/schema"
)

type MergeConfig struct {
	*MainConfig
	NoDelete bool `cli:"name=no-delete desc='keep entries a later file sets to null'"`

	Merge *cli.Command
}

func runMerge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := []jsontree.MergeOption{jsontree.CopyMeta()}
	if cfg.NoDelete {
		opts = append(opts, jsontree.IgnoreOverride())
	}
	res := ir.Null()
	for _, name := range args {
		frag, err := loadDoc(cc, name)
		if err != nil {
			return err
		}
		frag.SetMeta(name, true)
		jsontree.Merge(res, frag, opts...)
	}
	return emit(cfg.MainConfig, cc, res)
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=text desc='line-oriented textual diff instead of a patch'"`
	RFC  bool `cli:"name=rfc desc='emit an RFC 7386 merge patch'"`

	Diff *cli.Command
}

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly 2 files", cli.ErrUsage)
	}
	node, err := loadDoc(cc, args[0])
	if err != nil {
		return err
	}
	base, err := loadDoc(cc, args[1])
	if err != nil {
		return err
	}
	switch {
	case cfg.Text:
		fmt.Fprint(cc.Out, jsontree.DiffText(base, node))
		return nil
	case cfg.RFC:
		patch, err := jsontree.CreateMergePatch(base, node)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", patch)
		return nil
	default:
		return emit(cfg.MainConfig, cc, jsontree.Difference(node, base))
	}
}

type IntersectConfig struct {
	*MainConfig
	KeepEmpty bool `cli:"name=keep-empty desc='store empty intersections as null instead of pruning'"`

	Intersect *cli.Command
}

func runIntersect(cfg *IntersectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Intersect.Parse(cc, args)
	if err != nil {
		return err
	}
	nodes := make([]*ir.Node, 0, len(args))
	for _, name := range args {
		node, err := loadDoc(cc, name)
		if err != nil {
			return err
		}
		nodes = append(nodes, node)
	}
	return emit(cfg.MainConfig, cc, jsontree.IntersectAll(nodes, !cfg.KeepEmpty))
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

func runGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a pointer and at most one file", cli.ErrUsage)
	}
	name := "-"
	if len(args) == 2 {
		name = args[1]
	}
	doc, err := loadDoc(cc, name)
	if err != nil {
		return err
	}
	node, err := doc.ResolvePointer(args[0])
	if err != nil {
		return err
	}
	return emit(cfg.MainConfig, cc, node)
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a document and a patch file", cli.ErrUsage)
	}
	doc, err := loadDoc(cc, args[0])
	if err != nil {
		return err
	}
	patch, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	res, err := jsontree.ApplyMergePatch(doc, patch)
	if err != nil {
		return err
	}
	return emit(cfg.MainConfig, cc, res)
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

func runView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := []encode.EncodeOption{encode.Compact(false)}
	if isTTY(cc.Out) {
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	}
	for _, name := range args {
		doc, err := loadDoc(cc, name)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}

type SchemaConfig struct {
	*MainConfig
	SchemaFile string `cli:"name=s aliases=schema desc='schema file to check against'"`

	Schema   *cli.Command
	Check    *cli.Command
	Minimize *cli.Command
	Maximize *cli.Command
}

// cliScheme is the URI scheme under which the CLI registers the schema
// given with -s; the document is addressable as "jt:main".
const cliScheme = "jt"

func (cfg *SchemaConfig) registry() (*schema.Registry, error) {
	if cfg.SchemaFile == "" {
		return nil, fmt.Errorf("%w: schema commands require -s <schema-file>", cli.ErrUsage)
	}
	data, err := os.ReadFile(cfg.SchemaFile)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Auto(cfg.SchemaFile, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.SchemaFile, err)
	}
	reg := schema.NewRegistry(cliScheme)
	if err := reg.Register("main", doc); err != nil {
		return nil, err
	}
	return reg, nil
}

func runSchema(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Schema.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub.Run(cc, args[1:])
}

func runSchemaCheck(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, name := range args {
		doc, err := loadDoc(cc, name)
		if err != nil {
			return err
		}
		violations, err := schema.Validate(reg, doc, cliScheme+":main", name)
		if err != nil {
			return err
		}
		for _, v := range violations {
			fmt.Fprintf(cc.Out, "%s\n", v)
		}
		if len(violations) > 0 {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d documents failed validation", bad, len(args))
	}
	return nil
}

func runSchemaNormalize(cfg *SchemaConfig, cc *cli.Context, args []string, maximize bool) error {
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one document", cli.ErrUsage)
	}
	doc, err := loadDoc(cc, args[0])
	if err != nil {
		return err
	}
	if maximize {
		err = schema.Maximize(reg, doc, cliScheme+":main")
	} else {
		err = schema.Minimize(reg, doc, cliScheme+":main")
	}
	if err != nil {
		return err
	}
	return emit(cfg.MainConfig, cc, doc)
}
