package dot

import (
	"context"
	"fmt"
	"os/exec"
)

// rendererBinary is the Graphviz layout engine used for PNG rendering.
const rendererBinary = "sfdp"

// Render converts a DOT file to a PNG image via the external Graphviz
// sfdp tool. Returns ErrRendererNotFound when the binary is not on PATH,
// or a wrapped execution error when the renderer fails.
//
// Rendering is a peripheral concern: callers should log a failed render
// and move on, the core results are already on disk.
func Render(ctx context.Context, dotPath, pngPath string) error {
	bin, err := exec.LookPath(rendererBinary)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRendererNotFound, err)
	}

	cmd := exec.CommandContext(ctx, bin, "-Tpng", dotPath, "-o", pngPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("dot: render %s: %w: %s", dotPath, err, out)
	}

	return nil
}
