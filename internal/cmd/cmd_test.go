package cmd_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/tsu/internal/cmd"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"tsu": func() {
			hue.Enabled(false)

			cli, err := cmd.Build()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}

			if err := cli.Execute(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
	})
}

func TestSmoke(t *testing.T) {
	_, err := cmd.Build()
	test.Ok(t, err)
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "script"),
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
	})
}
