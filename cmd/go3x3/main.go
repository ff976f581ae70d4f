package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"

	"github.com/gridlock-systems/go3x3/go3x3"
	"github.com/gridlock-systems/go3x3/lib3x3"
	"github.com/gridlock-systems/go3x3/lib3x3/catalog"
)

// The full census lands here, one digit-string line per pattern,
// rewritten on every run.
const outputPathname = "allPatterns.txt"

func main() {

	flag.Set("logtostderr", "true")
	flag.Set("v", "2")

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()

	// The topology tables are hand-maintained; refuse to enumerate from
	// tables that fail their battery.
	if err := lib3x3.SelfCheck(); err != nil {
		klog.Fatalf("self-check failed: %v", err)
	}

	ctx := go3x3.NewCatalogContext()

	// The census catalog double-checks structural uniqueness and keeps the
	// per-length counters.
	cat, err := catalog.OpenCatalog(ctx, go3x3.CatalogOpts{})
	if err != nil {
		klog.Fatalf("failed to open census catalog: %v", err)
	}

	out, err := os.Create(outputPathname)
	if err != nil {
		klog.Fatalf("failed to create %s: %v", outputPathname, err)
	}

	total := int64(0)
	for L := go3x3.MinPatternLen; L <= go3x3.MaxPatternLen; L++ {
		n := lib3x3.EnumPatterns(lib3x3.EnumOpts{MinLen: L, MaxLen: L}).
			AddTo(cat).
			Print(out, go3x3.DefaultPrintOpts).
			PullAll()

		if int64(n) != cat.NumPatterns(byte(L)) {
			klog.Fatalf("census mismatch for length %d: emitted %d, cataloged %d",
				L, n, cat.NumPatterns(byte(L)))
		}
		klog.Infof("Length = %d: %d patterns", L, n)
		total += int64(n)
	}
	klog.Infof("Total number: %d", total)

	if err := out.Close(); err != nil {
		klog.Fatalf("failed to close %s: %v", outputPathname, err)
	}

	ctx.Close()
	<-ctx.Done()

	klog.Flush()
}
