// Command vgdemo renders a sample scene with the svg backend.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/svg"
)

func main() {
	var (
		width  = flag.Float64("width", 800, "image width")
		height = flag.Float64("height", 600, "image height")
		output = flag.String("output", "demo.svg", "output file")
	)
	flag.Parse()

	rc := svg.NewRenderContext(*width, *height)

	drawBackground(rc, *width, *height)
	drawShapes(rc)
	drawTransforms(rc)
	drawStrokes(rc)

	if err := rc.Finish(); err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()

	if err := rc.Write(f); err != nil {
		log.Fatalf("Failed to write: %v", err)
	}

	log.Printf("Demo saved to %s (%gx%g)\n", *output, *width, *height)
}

func drawBackground(rc *svg.RenderContext, w, h float64) {
	grad, err := rc.Gradient(vg.NewLinearGradient(0, 0, 0, h).
		AddStop(0, vg.RGB(0.1, 0.2, 0.4)).
		AddStop(1, vg.RGB(0.5, 0.5, 0.6)))
	if err != nil {
		log.Fatalf("Gradient failed: %v", err)
	}
	rc.Fill(vg.NewRect(0, 0, w, h), grad)
}

func drawShapes(rc *svg.RenderContext) {
	// Overlapping translucent circles
	rc.Fill(vg.NewCircle(150, 150, 60), rc.SolidBrush(vg.RGBA2(1, 0.3, 0.3, 0.8)))
	rc.Fill(vg.NewCircle(200, 150, 60), rc.SolidBrush(vg.RGBA2(0.3, 1, 0.3, 0.8)))
	rc.Fill(vg.NewCircle(175, 190, 60), rc.SolidBrush(vg.RGBA2(0.3, 0.3, 1, 0.8)))

	// Soft drop shadow under a card
	rc.BlurredRect(vg.NewRect(305, 105, 455, 205), 8, rc.SolidBrush(vg.RGBA2(0, 0, 0, 0.4)))
	rc.Fill(vg.NewRect(300, 100, 450, 200), rc.SolidBrush(vg.White))
}

func drawTransforms(rc *svg.RenderContext) {
	for i := 0; i < 6; i++ {
		if err := rc.Save(); err != nil {
			log.Fatalf("Save failed: %v", err)
		}
		rc.Transform(vg.Translate(550, 400))
		rc.Transform(vg.Rotate(float64(i) * math.Pi / 6))
		rc.Fill(vg.NewRect(0, -4, 120, 4), rc.SolidBrush(vg.HSL(float64(i)*60, 0.7, 0.5)))
		if err := rc.Restore(); err != nil {
			log.Fatalf("Restore failed: %v", err)
		}
	}
}

func drawStrokes(rc *svg.RenderContext) {
	wave := vg.NewPath()
	wave.MoveTo(50, 450)
	wave.CubicTo(150, 350, 250, 550, 350, 450)

	rc.Stroke(wave, rc.SolidBrush(vg.Black), 3)

	dashed := vg.DefaultStroke().
		WithCap(vg.LineCapRound).
		WithDashPattern(12, 6)
	rc.StrokeStyled(vg.NewLine(50, 500, 350, 500), rc.SolidBrush(vg.Red), 2, dashed)
}
