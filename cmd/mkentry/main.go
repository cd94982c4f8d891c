// Completion: 100% - CLI interface complete, all flags working
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/xyproto/env/v2"
	"github.com/xyproto/nocrt"
)

// mkentry emits the GNU-as text of a freestanding ELF entry stub for a
// chosen architecture, ready to be assembled into a binary that runs
// without crt1 or a dynamic loader.

const versionString = "mkentry 1.0.0"

func main() {
	archFlag := flag.String("arch", env.Str("MKENTRY_ARCH", runtime.GOARCH), "target architecture (arm, arm64, riscv64, 386, amd64)")
	sectionFlag := flag.String("section", env.Str("MKENTRY_SECTION", ".text.start"), "section the stub is placed in")
	symbolFlag := flag.String("symbol", env.Str("MKENTRY_SYMBOL", "_start"), "global entry symbol name")
	loaderFlag := flag.String("loader", env.Str("MKENTRY_LOADER", "loader"), "loader function symbol the stub calls")
	outputFlag := flag.String("o", "", "output file (default: stdout)")
	verboseFlag := flag.Bool("verbose", env.Bool("MKENTRY_VERBOSE"), "verbose output on stderr")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(versionString)
		return
	}

	arch, err := nocrt.ParseArch(*archFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkentry: %v\n", err)
		os.Exit(1)
	}

	stub := arch.EntryStub(nocrt.EntryPoint{
		Section: *sectionFlag,
		Symbol:  *symbolFlag,
		Loader:  *loaderFlag,
	})

	if *verboseFlag {
		fmt.Fprintf(os.Stderr, "-> %s entry stub, symbol %s, loader %s, align %d\n",
			arch, *symbolFlag, *loaderFlag, arch.EntryAlign())
	}

	if *outputFlag == "" {
		fmt.Print(stub)
		return
	}
	if err := os.WriteFile(*outputFlag, []byte(stub), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "mkentry: failed to write %s: %v\n", *outputFlag, err)
		os.Exit(1)
	}
	if *verboseFlag {
		fmt.Fprintf(os.Stderr, "-> Wrote %s (%d bytes)\n", *outputFlag, len(stub))
	}
}
