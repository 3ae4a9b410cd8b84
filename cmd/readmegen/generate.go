package main

import (
	"fmt"

	"github.com/fwojciec/readmegen"
	"github.com/fwojciec/readmegen/xxhash"
)

// Run executes the generate command. Nothing is written unless every
// earlier step succeeds.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.LoadDocuments(deps.Ctx)
	if err != nil {
		return err
	}

	template, err := deps.Templates.LoadTemplate(deps.Ctx)
	if err != nil {
		return err
	}

	fragments, err := readmegen.CollectFragments(docs)
	if err != nil {
		return err
	}
	deps.Logger.Debug("collected fragments",
		"title", fragments.Title,
		"overview_bytes", len(fragments.Overview),
		"features_bytes", len(fragments.Features),
	)

	output := readmegen.Substitute(template, fragments.Placeholders())

	if deps.Anchors != nil {
		if _, err := deps.Anchors.DanglingAnchors(output); err != nil {
			return err
		}
	}

	if c.Check {
		return c.runCheck(deps, output)
	}

	changed, err := deps.Output.Write(deps.Ctx, output)
	if err != nil {
		return err
	}

	if changed {
		fmt.Fprintf(deps.Stdout, "Wrote %s from %d sources\n", c.Output, len(docs))
	} else {
		fmt.Fprintf(deps.Stdout, "%s is up to date\n", c.Output)
	}
	return nil
}

// runCheck compares the stored output with the generated one. Mismatches
// are reported by digest so CI logs stay short.
func (c *GenerateCmd) runCheck(deps *Dependencies, output string) error {
	stored, err := deps.Output.Read(deps.Ctx)
	if readmegen.ErrorCode(err) == readmegen.ENOTFOUND {
		return readmegen.Errorf(readmegen.ECONFLICT, "%s is missing (expected hash %s)",
			c.Output, xxhash.Sum(output))
	} else if err != nil {
		return err
	}
	if stored != output {
		return readmegen.Errorf(readmegen.ECONFLICT, "%s is out of date (expected hash %s, found %s)",
			c.Output, xxhash.Sum(output), xxhash.Sum(stored))
	}

	fmt.Fprintf(deps.Stdout, "%s is up to date\n", c.Output)
	return nil
}
