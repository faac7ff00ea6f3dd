package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a generated image",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Dimensions: %d x %d\n", b.Dx(), b.Dy())
	fmt.Printf("Pixels:     %d\n", b.Dx()*b.Dy())
	fmt.Printf("Capacity:   %d bytes of input\n", b.Dx()*b.Dy()*3)
	fmt.Printf("File size:  %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)
	return nil
}
