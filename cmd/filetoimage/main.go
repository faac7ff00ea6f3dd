package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RichieStacker/FileToImage/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "filetoimage [file]",
	Short: "Render a file's raw bytes as a near-square PNG image",
	Long: `Reads a file and converts its byte data into colour data, using it to
produce a square (or near-square) PNG image. Every three bytes become the
red, green and blue channels of one pixel; the trailing pixel is zero-padded
and unused canvas positions are filled with black.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRender,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringP("output", "o", "saved.png", "Output PNG file (overwritten if present)")
	rootCmd.Flags().Int("scale", 1, "Whole-number magnification of the output image")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	scale, _ := cmd.Flags().GetInt("scale")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		fmt.Print("Enter a file name: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading file name: %w", err)
		}
		path = strings.TrimSpace(line)
	}

	fmt.Println("Getting bytes from file...")
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Error("reading input file")
		fmt.Println("Unable to create image!")
		return fmt.Errorf("reading %s: %w", path, err)
	}
	logrus.Debugf("read %d bytes from %s", len(data), path)

	result, err := pipeline.Run(data, pipeline.Options{
		Scale:    scale,
		Status:   os.Stdout,
		Progress: os.Stdout,
	})
	if err != nil {
		logrus.WithError(err).Error("conversion failed")
		fmt.Println("Unable to create image!")
		return err
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		logrus.WithError(err).Error("writing output image")
		fmt.Println("Unable to create image!")
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Println("All done!")
	logrus.Debugf("rendered %d pixels (%dx%d) to %s (%d bytes)",
		result.Pixels, result.Width, result.Height, outputPath, len(result.Data))
	return nil
}
