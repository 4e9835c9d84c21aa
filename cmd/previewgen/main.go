// Command previewgen renders a displacement map against a reference sprite
// without opening the editor. It mirrors the editor's live preview, so the
// output matches what the map produces in game.
package main

import (
	"flag"
	"log"

	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/displace"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/raster"
	"github.com/slycoolgamer/SS14-Displacer-Studio/internal/session"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	dispPath := flag.String("disp", "", "displacement map PNG (required)")
	refPath := flag.String("ref", "", "reference sprite to displace")
	bgPath := flag.String("bg", "", "background image composited under the result")
	outPath := flag.String("o", "preview.png", "output PNG path")
	bilinear := flag.Bool("bilinear", false, "use bilinear sampling instead of nearest")
	flag.Parse()

	if *dispPath == "" {
		log.Fatal("missing -disp: a displacement map is required")
	}
	if *refPath == "" && *bgPath == "" {
		log.Fatal("nothing to render: provide -ref, -bg, or both")
	}

	sess := session.New()

	disp, err := raster.LoadFile(*dispPath)
	if err != nil {
		log.Fatalf("load displacement: %v", err)
	}
	sess.LoadDisplacement(disp)

	if *refPath != "" {
		ref, err := raster.LoadFile(*refPath)
		if err != nil {
			log.Fatalf("load reference: %v", err)
		}
		sess.LoadReference(ref)
	}
	if *bgPath != "" {
		bg, err := raster.LoadFile(*bgPath)
		if err != nil {
			log.Fatalf("load background: %v", err)
		}
		sess.LoadBackground(bg)
	}

	if *bilinear {
		sess.SetSampling(displace.SamplingBilinear)
	}

	out := sess.RenderPreview()
	if out == nil {
		log.Fatal("nothing to render")
	}

	if err := raster.SaveFile(*outPath, out); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
	log.Printf("Wrote %s (%dx%d)", *outPath, out.Width(), out.Height())
}
