package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jt").
		WithSynopsis("jt [opts] command [opts]").
		WithDescription("jt is a tool for working with layered JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jtMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			DiffCommand(cfg),
			IntersectCommand(cfg),
			GetCommand(cfg),
			PatchCommand(cfg),
			SchemaCommand(cfg),
			ViewCommand(cfg))
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [files...]").
		WithDescription("merge documents in order, later files overriding earlier ones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runMerge(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <node-file> <base-file>").
		WithDescription("compute the minimal patch that rebuilds node from base").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
}

func IntersectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IntersectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Intersect, "intersect").
		WithAliases("i").
		WithSynopsis("intersect [files...]").
		WithDescription("compute the structure shared by all documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runIntersect(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <pointer> [file]").
		WithDescription("resolve a /path/to/node pointer in a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return runGet(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch <doc-file> <mergepatch-file>").
		WithDescription("apply an RFC 7386 merge patch to a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("pretty-print documents with color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return runView(cfg, cc, args)
		})
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithSynopsis("schema -s <schema-file> <check|minimize|maximize> [docs...]").
		WithDescription("validate or normalize documents against a schema").
		WithOpts(opts...).
		WithSubs(
			SchemaCheckCommand(cfg),
			SchemaMinimizeCommand(cfg),
			SchemaMaximizeCommand(cfg)).
		WithRun(func(cc *cli.Context, args []string) error {
			return runSchema(cfg, cc, args)
		})
}

func SchemaCheckCommand(cfg *SchemaConfig) *cli.Command {
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [docs...]").
		WithDescription("report every schema violation in the documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return runSchemaCheck(cfg, cc, args)
		})
}

func SchemaMinimizeCommand(cfg *SchemaConfig) *cli.Command {
	return cli.NewCommandAt(&cfg.Minimize, "minimize").
		WithSynopsis("minimize <doc>").
		WithDescription("strip values equal to their schema default").
		WithRun(func(cc *cli.Context, args []string) error {
			return runSchemaNormalize(cfg, cc, args, false)
		})
}

func SchemaMaximizeCommand(cfg *SchemaConfig) *cli.Command {
	return cli.NewCommandAt(&cfg.Maximize, "maximize").
		WithSynopsis("maximize <doc>").
		WithDescription("inject missing schema defaults").
		WithRun(func(cc *cli.Context, args []string) error {
			return runSchemaNormalize(cfg, cc, args, true)
		})
}
