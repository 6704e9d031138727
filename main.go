package main

import (
	"fmt"
	"os"

	"github.com/ultracanvas/ultratexter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	fmt.Printf("UltraTexter v%s starting...\n", version)

	if err := ui.RunApp(ui.RunOptions{
		WindowTitle: fmt.Sprintf("UltraTexter v%s", version),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "ultratexter: %v\n", err)
		os.Exit(1)
	}
}
