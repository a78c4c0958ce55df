package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/ai"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <image-path>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment variables:\n")
		fmt.Fprintf(os.Stderr, "  GEMINI_API_KEY - Required\n")
		os.Exit(1)
	}

	imagePath := os.Args[1]
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	gateway, err := ai.NewGeminiGateway(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create gateway: %v\n", err)
		os.Exit(1)
	}

	draft, err := gateway.ExtractListing(ctx, imageData, getMimeType(imagePath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Title:       %s\n", draft.Title)
	fmt.Printf("Category:    %s\n", draft.Category)
	fmt.Printf("Condition:   %s\n", draft.Condition)
	fmt.Printf("Price:       %.2f\n", draft.Price)
	fmt.Printf("Description: %s\n", draft.Description)
	for _, attr := range draft.Attributes {
		fmt.Printf("  %s: %s\n", attr.Key, attr.Value)
	}
}

func getMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
